/*
Package flags contains parsers for command arguments that are not plain
strings.
*/
package flags

import (
	"errors"
	"strconv"

	"github.com/etrid/etrcli/pkg/etrpc"
)

// ParseAmount parses a non-negative base-10 integer amount of tokens, what
// names the value in error messages.
func ParseAmount(what, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, etrpc.NewInputError("%s %q is too big", what, s)
		}
		return 0, etrpc.NewInputError("invalid %s %q: not a non-negative integer", what, s)
	}
	return v, nil
}
