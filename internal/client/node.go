// Package client talks to a node's REST API. Responses are returned as plain
// JSON mappings; the typed object model on top of them lives elsewhere.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Resp is a raw JSON response body.
type Resp = map[string]any

// NodeAPI is a client for one node's REST API.
type NodeAPI struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter ratelimit.Limiter
	log     *zap.Logger
}

// Option customizes a NodeAPI.
type Option func(*NodeAPI)

// WithAPIKey sets the api_key header sent with every request.
func WithAPIKey(key string) Option {
	return func(c *NodeAPI) { c.apiKey = key }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *NodeAPI) { c.client.Timeout = d }
}

// WithRateLimit caps requests per second. Zero or negative disables the cap.
func WithRateLimit(rps int) Option {
	return func(c *NodeAPI) {
		if rps > 0 {
			c.limiter = ratelimit.New(rps)
		}
	}
}

// WithLogger sets the logger; a no-op logger is used otherwise.
func WithLogger(log *zap.Logger) Option {
	return func(c *NodeAPI) { c.log = log }
}

// NewNodeAPI creates a client for the node at baseURL.
func NewNodeAPI(baseURL string, opts ...Option) (*NodeAPI, error) {
	if _, err := url.Parse(baseURL); err != nil || baseURL == "" {
		return nil, fmt.Errorf("invalid node URL %q", baseURL)
	}
	c := &NodeAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: ratelimit.NewUnlimited(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the node URL the client was created with.
func (c *NodeAPI) BaseURL() string {
	return c.baseURL
}

func (c *NodeAPI) do(ctx context.Context, method, path string, body io.Reader) (Resp, error) {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("api_key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("node request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request %s %s failed: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out Resp
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return out, nil
}

func (c *NodeAPI) get(ctx context.Context, path string) (Resp, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *NodeAPI) post(ctx context.Context, path string, payload any) (Resp, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload for %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body))
}

// NodeStatus returns the node's status report.
func (c *NodeAPI) NodeStatus(ctx context.Context) (Resp, error) {
	return c.get(ctx, "/node/status")
}

// NodeVersion returns the node's software version.
func (c *NodeAPI) NodeVersion(ctx context.Context) (Resp, error) {
	return c.get(ctx, "/node/version")
}

// Height returns the current chain height.
func (c *NodeAPI) Height(ctx context.Context) (Resp, error) {
	return c.get(ctx, "/blocks/height")
}

// LastBlock returns the newest block.
func (c *NodeAPI) LastBlock(ctx context.Context) (Resp, error) {
	return c.get(ctx, "/blocks/last")
}

// BlockAt returns the block at the given height.
func (c *NodeAPI) BlockAt(ctx context.Context, height int) (Resp, error) {
	return c.get(ctx, fmt.Sprintf("/blocks/at/%d", height))
}

// Balance returns the regular balance of an address.
func (c *NodeAPI) Balance(ctx context.Context, addr string) (Resp, error) {
	return c.get(ctx, "/addresses/balance/"+addr)
}

// EffectiveBalance returns the effective (leasing-adjusted) balance of an
// address.
func (c *NodeAPI) EffectiveBalance(ctx context.Context, addr string) (Resp, error) {
	return c.get(ctx, "/addresses/effectiveBalance/"+addr)
}

// TxInfo returns the details of a confirmed transaction.
func (c *NodeAPI) TxInfo(ctx context.Context, txID string) (Resp, error) {
	return c.get(ctx, "/transactions/info/"+txID)
}

// ContractInfo returns a registered contract's state summary.
func (c *NodeAPI) ContractInfo(ctx context.Context, ctrtID string) (Resp, error) {
	return c.get(ctx, "/contract/info/"+ctrtID)
}

// ContractContent returns a registered contract's metadata.
func (c *NodeAPI) ContractContent(ctx context.Context, ctrtID string) (Resp, error) {
	return c.get(ctx, "/contract/content/"+ctrtID)
}

// ContractTokenBalance returns an address's balance of the given token.
func (c *NodeAPI) ContractTokenBalance(ctx context.Context, addr, tokenID string) (Resp, error) {
	return c.get(ctx, fmt.Sprintf("/contract/balance/%s/%s", addr, tokenID))
}

// TokenInfo returns a token's registration details.
func (c *NodeAPI) TokenInfo(ctx context.Context, tokenID string) (Resp, error) {
	return c.get(ctx, "/contract/tokenInfo/"+tokenID)
}

// BroadcastPayment submits a signed payment transaction.
func (c *NodeAPI) BroadcastPayment(ctx context.Context, payload any) (Resp, error) {
	return c.post(ctx, "/vsys/broadcast/payment", payload)
}

// BroadcastLease submits a signed lease transaction.
func (c *NodeAPI) BroadcastLease(ctx context.Context, payload any) (Resp, error) {
	return c.post(ctx, "/leasing/broadcast/lease", payload)
}

// BroadcastCancelLease submits a signed lease cancellation.
func (c *NodeAPI) BroadcastCancelLease(ctx context.Context, payload any) (Resp, error) {
	return c.post(ctx, "/leasing/broadcast/cancel", payload)
}

// BroadcastRegisterContract submits a signed contract registration.
func (c *NodeAPI) BroadcastRegisterContract(ctx context.Context, payload any) (Resp, error) {
	return c.post(ctx, "/contract/broadcast/register", payload)
}

// BroadcastExecuteContract submits a signed contract execution.
func (c *NodeAPI) BroadcastExecuteContract(ctx context.Context, payload any) (Resp, error) {
	return c.post(ctx, "/contract/broadcast/execute", payload)
}

// BroadcastDBPut submits a signed database put.
func (c *NodeAPI) BroadcastDBPut(ctx context.Context, payload any) (Resp, error) {
	return c.post(ctx, "/database/broadcast/put", payload)
}

// DBGet reads a stored database entry by address and key.
func (c *NodeAPI) DBGet(ctx context.Context, addr, key string) (Resp, error) {
	return c.get(ctx, fmt.Sprintf("/database/get/%s/%s", addr, key))
}
