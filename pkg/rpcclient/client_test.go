package rpcclient

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/etrid/etrcli/internal/fakenode"
	"github.com/etrid/etrcli/pkg/etrpc"
	"github.com/etrid/etrcli/pkg/etrpc/result"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, endpoint string, opts Options) *Client {
	if opts.Logger == nil {
		opts.Logger = zaptest.NewLogger(t)
	}
	c, err := New(context.Background(), endpoint, opts)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestGetEndpoint(t *testing.T) {
	host := "http://localhost:1234"
	u, err := url.Parse(host)
	require.NoError(t, err)
	client := Client{
		endpoint: u,
	}
	require.Equal(t, host, client.Endpoint())
}

func TestNew(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:9944", Options{})
	require.Equal(t, DefaultTimeout, c.Timeout())

	_, err := New(context.Background(), "127.0.0.1:9944", Options{})
	require.Error(t, err)
	_, err = New(context.Background(), "http://[::1", Options{})
	require.Error(t, err)
}

func TestCallEnvelope(t *testing.T) {
	node := fakenode.New(t)
	node.HandleResult(MethodAccountList, []string{"etr1234567"})
	c := newTestClient(t, node.URL, Options{})

	for i := 0; i < 3; i++ {
		res, err := c.Call(MethodAccountList, nil)
		require.NoError(t, err)
		require.JSONEq(t, `["etr1234567"]`, string(res))
	}

	reqs := node.Requests()
	require.Len(t, reqs, 3)
	for i, r := range reqs {
		require.Equal(t, uint64(i+1), r.ID)
		require.Equal(t, etrpc.JSONRPCVersion, r.JSONRPC)
		require.Equal(t, MethodAccountList, r.Method)
		require.Equal(t, "POST", r.HTTPMethod)
		require.Equal(t, "application/json", r.ContentType)
		require.JSONEq(t, `{}`, string(r.Params))
		require.False(t, r.Auth)
	}
}

func TestCallCredentials(t *testing.T) {
	node := fakenode.New(t)
	node.HandleResult(MethodAccountList, []string{})
	c := newTestClient(t, node.URL, Options{User: "alice", Password: "secret"})

	_, err := c.Call(MethodAccountList, nil)
	require.NoError(t, err)
	r := node.LastRequest(t)
	require.True(t, r.Auth)
	require.Equal(t, "alice", r.User)
	require.Equal(t, "secret", r.Password)

	c.SetCredentials("", "ignored")
	_, err = c.Call(MethodAccountList, nil)
	require.NoError(t, err)
	require.False(t, node.LastRequest(t).Auth)

	c.SetCredentials("bob", "")
	_, err = c.Call(MethodAccountList, nil)
	require.NoError(t, err)
	r = node.LastRequest(t)
	require.True(t, r.Auth)
	require.Equal(t, "bob", r.User)
	require.Equal(t, "", r.Password)
}

func TestCallFailures(t *testing.T) {
	testCases := map[string]struct {
		reply     fakenode.Reply
		transport bool
		code      int64
		message   string
	}{
		"application error": {
			reply:   fakenode.Reply{Error: etrpc.NewError(-32000, "insufficient balance")},
			code:    -32000,
			message: "insufficient balance",
		},
		"HTTP 500": {
			reply: fakenode.Reply{
				Status: 500,
				Body:   `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"insufficient balance"}}`,
			},
			transport: true,
			code:      etrpc.TransportErrorCode,
			message:   "HTTP 500/Internal Server Error",
		},
		"HTTP 401": {
			reply:     fakenode.Reply{Status: 401, Body: "unauthorized"},
			transport: true,
			code:      etrpc.TransportErrorCode,
			message:   "HTTP 401/Unauthorized",
		},
		"no result and no error": {
			reply:     fakenode.Reply{Body: `{"jsonrpc":"2.0","id":1}`},
			transport: true,
			code:      etrpc.TransportErrorCode,
			message:   "invalid response shape",
		},
		"null error without result": {
			reply:     fakenode.Reply{Body: `{"jsonrpc":"2.0","id":1,"error":null}`},
			transport: true,
			code:      etrpc.TransportErrorCode,
			message:   "invalid response shape",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			node := fakenode.New(t)
			node.Handle(MethodBlockchainInfo, tc.reply)
			c := newTestClient(t, node.URL, Options{})

			res, err := c.GetBlockchainInfo()
			require.Error(t, err)
			require.Nil(t, res)

			e := etrpc.AsError(err)
			require.Equal(t, tc.code, e.Code)
			require.Equal(t, tc.message, e.Message)
			if tc.transport {
				require.ErrorIs(t, err, etrpc.ErrTransport)
				require.False(t, etrpc.IsApplication(err))
			} else {
				require.NotErrorIs(t, err, etrpc.ErrTransport)
				require.True(t, etrpc.IsApplication(err))
			}
		})
	}
}

func TestCallBadJSON(t *testing.T) {
	node := fakenode.New(t)
	node.Handle(MethodNetworkInfo, fakenode.Reply{Body: `{"result": `})
	c := newTestClient(t, node.URL, Options{})

	_, err := c.GetNetworkInfo()
	require.ErrorIs(t, err, etrpc.ErrTransport)
	require.Contains(t, etrpc.AsError(err).Message, "JSON decoding")
}

func TestCallNullResult(t *testing.T) {
	node := fakenode.New(t)
	node.Handle(MethodGetTransaction, fakenode.Reply{})
	c := newTestClient(t, node.URL, Options{})

	res, err := c.QueryTransaction("0xdead")
	require.NoError(t, err)
	require.Equal(t, "null", string(res))
}

func TestCallTimeout(t *testing.T) {
	node := fakenode.New(t)
	node.Handle(MethodBlockchainInfo, fakenode.Reply{Delay: 5 * time.Second})
	c := newTestClient(t, node.URL, Options{Timeout: 100 * time.Millisecond})

	start := time.Now()
	_, err := c.GetBlockchainInfo()
	require.ErrorIs(t, err, etrpc.ErrTransport)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestCallConnectionRefused(t *testing.T) {
	node := fakenode.New(t)
	endpoint := node.URL
	node.Close()

	c := newTestClient(t, endpoint, Options{Timeout: time.Second})
	_, err := c.AccountList()
	require.ErrorIs(t, err, etrpc.ErrTransport)
	require.EqualValues(t, etrpc.TransportErrorCode, etrpc.AsError(err).Code)
}

func TestTestConnection(t *testing.T) {
	node := fakenode.New(t)
	c := newTestClient(t, node.URL, Options{})
	require.False(t, c.TestConnection())

	node.HandleResult(MethodBlockchainInfo, result.BlockchainInfo{Chain: "etrid"})
	require.True(t, c.TestConnection())
	require.Equal(t, MethodBlockchainInfo, node.LastRequest(t).Method)

	node.Close()
	require.False(t, c.TestConnection())
}

func TestConfigure(t *testing.T) {
	first := fakenode.New(t)
	second := fakenode.New(t)
	first.HandleResult(MethodNetworkInfo, "first")
	second.HandleResult(MethodNetworkInfo, "second")

	c := newTestClient(t, first.URL, Options{})
	require.Error(t, c.Configure(second.URL, 0))
	require.Error(t, c.Configure("", time.Second))
	require.Equal(t, first.URL, c.Endpoint())

	require.NoError(t, c.Configure(second.URL, 3*time.Second))
	require.Equal(t, second.URL, c.Endpoint())
	require.Equal(t, 3*time.Second, c.Timeout())

	res, err := c.GetNetworkInfo()
	require.NoError(t, err)
	require.Equal(t, `"second"`, string(res))
	require.Len(t, first.Requests(), 0)
	// The counter belongs to the client, not to the endpoint.
	_, err = c.GetNetworkInfo()
	require.NoError(t, err)
	require.Equal(t, uint64(2), second.LastRequest(t).ID)
}

func TestDecode(t *testing.T) {
	node := fakenode.New(t)
	node.Handle(MethodConsensusDay, fakenode.Reply{
		Body: `{"jsonrpc":"2.0","id":1,"result":{"day_number":4,"phase":"Registration","phase_start_block":10,"event_start_block":10,"year":1}}`,
	})
	c := newTestClient(t, node.URL, Options{})

	res, err := c.ConsensusDay()
	require.NoError(t, err)
	day, err := Decode[result.ConsensusDay](res)
	require.NoError(t, err)
	require.Equal(t, uint64(4), day.DayNumber)
	require.Equal(t, "Registration", day.Phase)

	_, err = Decode[result.ConsensusDay](nil)
	require.Error(t, err)
	_, err = Decode[result.ConsensusDay]([]byte(`[1, 2]`))
	require.Error(t, err)
}
