package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/etrid/etrcli/pkg/etrpc"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout is used when Options.Timeout is not specified.
	DefaultTimeout = 30 * time.Second

	// probeMethod is a harmless read-only method used by TestConnection.
	probeMethod = MethodBlockchainInfo
)

// Client represents the middleman for executing JSON RPC calls to a remote
// ËTRID node. Every Call is a single synchronous HTTP POST, there are no
// retries and no caching. Client is not meant to be reconfigured concurrently
// with calls being made.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	ctx      context.Context
	opts     Options
	log      *zap.Logger
	requestF func(*etrpc.Request) (*etrpc.Response, error)

	latestReqID *atomic.Uint64
	// getNextRequestID returns an ID to be used for the subsequent request creation.
	getNextRequestID func() uint64
}

// Options defines options for the RPC client. All values are optional.
type Options struct {
	// Timeout limits the whole request (connection, sending, reading the
	// answer), DefaultTimeout is used if it's not positive.
	Timeout time.Duration
	// User and Password are used for HTTP basic authentication if User is
	// not empty.
	User     string
	Password string
	// Logger is used for debug messages, nothing is logged if it's nil.
	Logger *zap.Logger
}

// New returns a new Client ready to use. Close should be called when the
// Client is no longer needed.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	cl := &Client{
		cli: &http.Client{
			Timeout: opts.Timeout,
		},
		endpoint:    u,
		ctx:         ctx,
		opts:        opts,
		log:         opts.Logger,
		latestReqID: atomic.NewUint64(0),
	}
	cl.getNextRequestID = cl.getRequestID
	cl.requestF = cl.makeHTTPRequest
	return cl, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: no host", endpoint)
	}
	return u, nil
}

func (c *Client) getRequestID() uint64 {
	return c.latestReqID.Inc()
}

// Configure replaces the node endpoint and the request timeout.
func (c *Client) Configure(endpoint string, timeout time.Duration) error {
	if timeout <= 0 {
		return fmt.Errorf("invalid timeout %s: must be positive", timeout)
	}
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return err
	}
	c.endpoint = u
	c.opts.Timeout = timeout
	c.cli.Timeout = timeout
	return nil
}

// SetCredentials sets HTTP basic authentication credentials for subsequent
// requests. Empty user disables authentication.
func (c *Client) SetCredentials(user, password string) {
	c.opts.User = user
	c.opts.Password = password
}

// Endpoint returns the client's endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Timeout returns the request timeout.
func (c *Client) Timeout() time.Duration {
	return c.opts.Timeout
}

// Close closes unused underlying network connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

// Call performs a single JSON-RPC call of the given method with the given
// parameters (nil means no parameters, an empty object is sent then). It
// returns the raw "result" value of the response on success. Any failure is
// returned as *etrpc.Error: node-supplied errors are returned verbatim,
// while network and protocol problems match etrpc.ErrTransport.
func (c *Client) Call(method string, params any) (json.RawMessage, error) {
	var r = etrpc.NewRequest(c.getNextRequestID(), method, params)

	c.log.Debug("sending request",
		zap.String("method", method),
		zap.Uint64("id", r.ID),
		zap.Stringer("endpoint", c.endpoint))

	raw, err := c.requestF(r)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", method),
			zap.Uint64("id", r.ID),
			zap.Error(err))
		return nil, err
	}
	if raw.Error != nil {
		c.log.Debug("node returned error",
			zap.String("method", method),
			zap.Uint64("id", r.ID),
			zap.Int64("code", raw.Error.Code),
			zap.String("message", raw.Error.Message))
		return nil, raw.Error
	}
	if len(raw.Result) == 0 {
		return nil, etrpc.ErrInvalidResponse
	}
	c.log.Debug("got result",
		zap.String("method", method),
		zap.Uint64("id", r.ID),
		zap.Int("size", len(raw.Result)))
	return raw.Result, nil
}

func (c *Client) makeHTTPRequest(r *etrpc.Request) (*etrpc.Response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(etrpc.Response)
	)

	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, etrpc.NewInputError("can't encode %s parameters: %s", r.Method, err)
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.endpoint.String(), buf)
	if err != nil {
		return nil, etrpc.NewTransportError("%s", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.opts.User != "" {
		req.SetBasicAuth(c.opts.User, c.opts.Password)
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, etrpc.NewTransportError("%s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, etrpc.NewTransportError("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		return nil, etrpc.NewTransportError("JSON decoding: %s", err)
	}
	return raw, nil
}

// TestConnection checks whether the node answers a simple read-only request
// successfully. Any failure is reported as false.
func (c *Client) TestConnection() bool {
	_, err := c.Call(probeMethod, nil)
	if err != nil {
		c.log.Debug("connection test failed", zap.Error(err))
	}
	return err == nil
}

// Decode unmarshals a raw call result into a new value of type T, which is
// usually one of the pkg/etrpc/result types.
func Decode[T any](raw json.RawMessage) (*T, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty result")
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("failed to decode %T: %w", v, err)
	}
	return v, nil
}
