package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeAPIRejectsEmptyURL(t *testing.T) {
	_, err := NewNodeAPI("")
	assert.Error(t, err)
}

func TestNewNodeAPITrimsTrailingSlash(t *testing.T) {
	c, err := NewNodeAPI("http://localhost:9922/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9922", c.BaseURL())
}

func TestGetEndpoints(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"height": 99})
	}))
	defer srv.Close()

	c, err := NewNodeAPI(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := c.Height(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/blocks/height", gotPath)
	assert.Equal(t, float64(99), resp["height"])

	_, err = c.LastBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/blocks/last", gotPath)

	_, err = c.BlockAt(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "/blocks/at/42", gotPath)

	_, err = c.Balance(ctx, "ADDR")
	require.NoError(t, err)
	assert.Equal(t, "/addresses/balance/ADDR", gotPath)

	_, err = c.EffectiveBalance(ctx, "ADDR")
	require.NoError(t, err)
	assert.Equal(t, "/addresses/effectiveBalance/ADDR", gotPath)

	_, err = c.TxInfo(ctx, "TXID")
	require.NoError(t, err)
	assert.Equal(t, "/transactions/info/TXID", gotPath)

	_, err = c.ContractInfo(ctx, "CID")
	require.NoError(t, err)
	assert.Equal(t, "/contract/info/CID", gotPath)

	_, err = c.ContractContent(ctx, "CID")
	require.NoError(t, err)
	assert.Equal(t, "/contract/content/CID", gotPath)

	_, err = c.ContractTokenBalance(ctx, "ADDR", "TID")
	require.NoError(t, err)
	assert.Equal(t, "/contract/balance/ADDR/TID", gotPath)

	_, err = c.TokenInfo(ctx, "TID")
	require.NoError(t, err)
	assert.Equal(t, "/contract/tokenInfo/TID", gotPath)

	_, err = c.NodeStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/node/status", gotPath)

	_, err = c.NodeVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/node/version", gotPath)

	_, err = c.DBGet(ctx, "ADDR", "key")
	require.NoError(t, err)
	assert.Equal(t, "/database/get/ADDR/key", gotPath)
}

func TestBroadcastPostsJSONBody(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "abc"})
	}))
	defer srv.Close()

	c, err := NewNodeAPI(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	payload := map[string]any{"amount": 5}
	resp, err := c.BroadcastPayment(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "/vsys/broadcast/payment", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, float64(5), gotBody["amount"])
	assert.Equal(t, "abc", resp["id"])

	_, err = c.BroadcastLease(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "/leasing/broadcast/lease", gotPath)

	_, err = c.BroadcastCancelLease(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "/leasing/broadcast/cancel", gotPath)

	_, err = c.BroadcastRegisterContract(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "/contract/broadcast/register", gotPath)

	_, err = c.BroadcastExecuteContract(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "/contract/broadcast/execute", gotPath)

	_, err = c.BroadcastDBPut(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "/database/broadcast/put", gotPath)
}

func TestAPIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("api_key")
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	c, err := NewNodeAPI(srv.URL, WithAPIKey("secret"))
	require.NoError(t, err)

	_, err = c.NodeStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
}

func TestNoAPIKeyHeaderWhenUnset(t *testing.T) {
	var hasKey bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasKey = r.Header["Api_key"]
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	c, err := NewNodeAPI(srv.URL)
	require.NoError(t, err)

	_, err = c.NodeStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, hasKey)
}

func TestErrorStatusIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": 311, "message": "no such transaction"}`))
	}))
	defer srv.Close()

	c, err := NewNodeAPI(srv.URL)
	require.NoError(t, err)

	_, err = c.TxInfo(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "no such transaction")
}

func TestMalformedJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c, err := NewNodeAPI(srv.URL)
	require.NoError(t, err)

	_, err = c.NodeStatus(context.Background())
	assert.Error(t, err)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := NewNodeAPI(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = c.NodeStatus(ctx)
	assert.Error(t, err)
}
