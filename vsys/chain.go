package vsys

import (
	"context"
	"fmt"

	"github.com/vsyslabs/govsys/internal/client"
)

// Chain is one network (mainnet or testnet) reached through a node.
type Chain struct {
	api *client.NodeAPI
	id  ChainID
}

// NewChain binds a node API client to a network id.
func NewChain(api *client.NodeAPI, id ChainID) (*Chain, error) {
	if !id.Valid() {
		return nil, &ValidationError{Field: "chain id", Reason: fmt.Sprintf("unknown chain id %q", id.String())}
	}
	return &Chain{api: api, id: id}, nil
}

// API returns the underlying node client.
func (c *Chain) API() *client.NodeAPI {
	return c.api
}

// ID returns the network id.
func (c *Chain) ID() ChainID {
	return c.id
}

// Height returns the current chain height.
func (c *Chain) Height(ctx context.Context) (int64, error) {
	resp, err := c.api.Height(ctx)
	if err != nil {
		return 0, err
	}
	h, ok := resp["height"].(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected height response: %v", resp)
	}
	return int64(h), nil
}

// LastBlock returns the newest block as a raw mapping.
func (c *Chain) LastBlock(ctx context.Context) (map[string]any, error) {
	return c.api.LastBlock(ctx)
}

// BlockAt returns the block at the given height as a raw mapping.
func (c *Chain) BlockAt(ctx context.Context, height int) (map[string]any, error) {
	return c.api.BlockAt(ctx, height)
}

// Balance returns the regular balance of addr in smallest units.
func (c *Chain) Balance(ctx context.Context, addr Address) (int64, error) {
	if err := addr.MustOn(c.id); err != nil {
		return 0, err
	}
	resp, err := c.api.Balance(ctx, addr.String())
	if err != nil {
		return 0, err
	}
	b, ok := resp["balance"].(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected balance response: %v", resp)
	}
	return int64(b), nil
}

// EffectiveBalance returns the effective balance of addr in smallest units.
// Leased-out coins are excluded, leased-in coins included.
func (c *Chain) EffectiveBalance(ctx context.Context, addr Address) (int64, error) {
	if err := addr.MustOn(c.id); err != nil {
		return 0, err
	}
	resp, err := c.api.EffectiveBalance(ctx, addr.String())
	if err != nil {
		return 0, err
	}
	b, ok := resp["balance"].(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected effective balance response: %v", resp)
	}
	return int64(b), nil
}

// TxInfo returns the details of a confirmed transaction.
func (c *Chain) TxInfo(ctx context.Context, txID string) (map[string]any, error) {
	return c.api.TxInfo(ctx, txID)
}
