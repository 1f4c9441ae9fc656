/*
Package etrpc contains a set of types used for JSON-RPC communication with
ËTRID nodes. It defines basic request/response types as well as the error type
and the error taxonomy shared by the client and the command-line tools.
*/
package etrpc

import (
	"encoding/json"
)

const (
	// JSONRPCVersion is the only JSON-RPC protocol version supported.
	JSONRPCVersion = "2.0"
)

type (
	// Request represents JSON-RPC request. ËTRID methods take named
	// parameters, so Params is always marshaled as a JSON object.
	Request struct {
		// JSONRPC is the protocol version, only valid when it contains JSONRPCVersion.
		JSONRPC string `json:"jsonrpc"`
		// ID is an identifier associated with this request. The client uses
		// sequential numeric identifiers starting from 1.
		ID uint64 `json:"id"`
		// Method is the method being called.
		Method string `json:"method"`
		// Params is a set of method-specific parameters. It can be anything
		// that marshals into a JSON object.
		Params any `json:"params"`
	}

	// Header is a generic JSON-RPC 2.0 response header (ID and JSON-RPC version).
	// Nodes are not required to send it back, the client doesn't check it.
	Header struct {
		ID      json.RawMessage `json:"id,omitempty"`
		JSONRPC string          `json:"jsonrpc,omitempty"`
	}

	// HeaderAndError adds an Error (that can be empty) to the Header.
	HeaderAndError struct {
		Header
		Error *Error `json:"error,omitempty"`
	}

	// Response represents a standard raw JSON-RPC 2.0
	// response: http://www.jsonrpc.org/specification#response_object.
	// Result is empty when the field is missing and contains "null" when the
	// node returned an explicit null.
	Response struct {
		HeaderAndError
		Result json.RawMessage `json:"result,omitempty"`
	}
)

// EmptyParams is sent for methods that take no parameters.
var EmptyParams = struct{}{}

// NewRequest creates a request for the given method, id and params. Nil
// params are replaced with an empty object.
func NewRequest(id uint64, method string, params any) *Request {
	if params == nil {
		params = EmptyParams
	}
	return &Request{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}
