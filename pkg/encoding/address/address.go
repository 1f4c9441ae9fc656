/*
Package address implements ËTRID account address checks. Two address forms
are accepted: Ethereum-compatible hex addresses ("0x" followed by 40 hex
digits) and native addresses with the "etr" prefix.
*/
package address

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// HexPrefix is the prefix of Ethereum-compatible addresses.
	HexPrefix = "0x"
	// NativePrefix is the prefix of native ËTRID addresses.
	NativePrefix = "etr"

	// HexLength is the exact length of a valid hex address (prefix included).
	HexLength = 42
	// NativeMinLength is the minimum length of a native address (prefix included).
	NativeMinLength = 10
)

var hexAddress = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

var (
	// ErrEmpty is returned for empty addresses.
	ErrEmpty = errors.New("empty address")
	// ErrUnknownPrefix is returned for addresses that are neither hex nor native.
	ErrUnknownPrefix = errors.New("unknown address prefix")
	// ErrMalformedHex is returned for "0x" addresses of wrong length or with
	// non-hex characters.
	ErrMalformedHex = errors.New("hex address must be 0x followed by 40 hex digits")
	// ErrShortNative is returned for "etr" addresses that are too short.
	ErrShortNative = fmt.Errorf("native address must be at least %d characters long", NativeMinLength)
)

// Validate checks the given address and returns nil for valid ones.
func Validate(s string) error {
	switch {
	case s == "":
		return ErrEmpty
	case strings.HasPrefix(s, HexPrefix):
		if len(s) != HexLength || !hexAddress.MatchString(s) {
			return ErrMalformedHex
		}
	case strings.HasPrefix(s, NativePrefix):
		if len(s) < NativeMinLength {
			return ErrShortNative
		}
	default:
		return ErrUnknownPrefix
	}
	return nil
}

// IsValid is a shortcut for Validate(s) == nil.
func IsValid(s string) bool {
	return Validate(s) == nil
}
