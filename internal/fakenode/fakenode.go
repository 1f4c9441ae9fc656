/*
Package fakenode provides an in-process HTTP JSON-RPC server imitating an
ËTRID node for tests. It records every request and answers with canned
replies configured per method.
*/
package fakenode

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/etrid/etrcli/pkg/etrpc"
)

// Request is a JSON-RPC request as received by the node along with the
// relevant HTTP details.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`

	HTTPMethod  string `json:"-"`
	ContentType string `json:"-"`
	Auth        bool   `json:"-"`
	User        string `json:"-"`
	Password    string `json:"-"`
}

// Reply describes the node answer to some method. Zero Reply is a successful
// response with null result.
type Reply struct {
	// Status is an HTTP status code, 200 is used if it's zero.
	Status int
	// Body replaces the whole response body if not empty.
	Body string
	// Result is marshaled into the "result" field.
	Result any
	// Error is sent instead of the result if not nil.
	Error *etrpc.Error
	// Delay is applied before answering.
	Delay time.Duration
}

// Node is a fake ËTRID node.
type Node struct {
	*httptest.Server

	t        testing.TB
	lock     sync.Mutex
	requests []Request
	replies  map[string]Reply
}

// New creates and starts a Node, it's closed automatically when the test ends.
func New(t testing.TB) *Node {
	n := &Node{
		t:       t,
		replies: make(map[string]Reply),
	}
	n.Server = httptest.NewServer(http.HandlerFunc(n.serveHTTP))
	t.Cleanup(n.Server.Close)
	return n
}

// Handle sets the reply for the given method.
func (n *Node) Handle(method string, r Reply) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.replies[method] = r
}

// HandleResult sets a successful reply with the given result for the method.
func (n *Node) HandleResult(method string, result any) {
	n.Handle(method, Reply{Result: result})
}

// Requests returns a copy of all requests received so far.
func (n *Node) Requests() []Request {
	n.lock.Lock()
	defer n.lock.Unlock()
	return append([]Request(nil), n.requests...)
}

// LastRequest returns the latest request received, it fails the test if
// there were none.
func (n *Node) LastRequest(t testing.TB) Request {
	reqs := n.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests received")
	}
	return reqs[len(reqs)-1]
}

// HostPort returns the host and the port the node is listening on.
func (n *Node) HostPort() (string, string) {
	host, port, err := net.SplitHostPort(n.Listener.Addr().String())
	if err != nil {
		n.t.Fatalf("bad listener address: %s", err)
	}
	return host, port
}

func (n *Node) serveHTTP(w http.ResponseWriter, req *http.Request) {
	var r Request

	err := json.NewDecoder(req.Body).Decode(&r)
	if err != nil {
		n.t.Errorf("cannot decode request body: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.HTTPMethod = req.Method
	r.ContentType = req.Header.Get("Content-Type")
	r.User, r.Password, r.Auth = req.BasicAuth()

	n.lock.Lock()
	n.requests = append(n.requests, r)
	reply, ok := n.replies[r.Method]
	n.lock.Unlock()

	if !ok {
		reply = Reply{Error: etrpc.NewError(-32601, "Method not found")}
	}
	if reply.Delay > 0 {
		select {
		case <-time.After(reply.Delay):
		case <-req.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if reply.Status != 0 {
		w.WriteHeader(reply.Status)
	}
	if reply.Body != "" {
		_, _ = w.Write([]byte(reply.Body))
		return
	}

	resp := map[string]any{
		"jsonrpc": etrpc.JSONRPCVersion,
		"id":      r.ID,
	}
	if reply.Error != nil {
		resp["error"] = reply.Error
	} else {
		resp["result"] = reply.Result
	}
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		n.t.Errorf("cannot encode response: %s", err)
	}
}
