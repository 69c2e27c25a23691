package contract

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vsyslabs/govsys/internal/client"
	"github.com/vsyslabs/govsys/vsys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = "vsys test seed for unit tests only do not use in production anywhere"

func TestEncodeFuncDataIssue(t *testing.T) {
	amt, err := vsys.NewAmountEntry(50)
	require.NoError(t, err)

	b, err := EncodeFuncData(TypeTokenNoSplit, TokIssue, amt)
	require.NoError(t, err)
	assert.Equal(t, "0001030000000000000032", hex.EncodeToString(b))
}

func TestEncodeFuncDataUnknownType(t *testing.T) {
	_, err := EncodeFuncData(Type(99), 0)
	assert.True(t, vsys.IsValidationError(err))
}

func TestEncodeFuncDataUnknownFunction(t *testing.T) {
	_, err := EncodeFuncData(TypeLock, 7)
	assert.True(t, vsys.IsValidationError(err))
}

func TestEncodeFuncDataWrongArity(t *testing.T) {
	amt, err := vsys.NewAmountEntry(1)
	require.NoError(t, err)

	_, err = EncodeFuncData(TypeTokenNoSplit, TokIssue, amt, amt)
	assert.True(t, vsys.IsValidationError(err))

	_, err = EncodeFuncData(TypeTokenNoSplit, TokIssue)
	assert.True(t, vsys.IsValidationError(err))
}

func TestEncodeFuncDataWrongKind(t *testing.T) {
	str, err := vsys.NewStringEntry("not an amount")
	require.NoError(t, err)

	_, err = EncodeFuncData(TypeTokenNoSplit, TokIssue, str)
	assert.True(t, vsys.IsValidationError(err))
}

func TestFuncTablesComplete(t *testing.T) {
	for _, typ := range []Type{
		TypeSystem, TypeTokenNoSplit, TypeTokenWithSplit, TypeNFT, TypeNFTV2,
		TypeLock, TypeAtomicSwap, TypePayChan, TypeEscrow, TypeOption, TypeStableSwap,
	} {
		assert.NotEmpty(t, Functions(typ), typ.String())
	}
	assert.Nil(t, Functions(Type(0)))
}

func TestFuncTableShapes(t *testing.T) {
	assert.Len(t, Functions(TypeSystem), 4)
	assert.Len(t, Functions(TypeTokenNoSplit), 7)
	assert.Len(t, Functions(TypeTokenWithSplit), 8)
	assert.Len(t, Functions(TypeEscrow), 15)

	// Escrow create: recipient, five amounts, expiry.
	create := Functions(TypeEscrow)[EscrowCreate]
	require.Len(t, create, 7)
	assert.Equal(t, vsys.EntryAddress, create[0])
	for i := 1; i <= 5; i++ {
		assert.Equal(t, vsys.EntryAmount, create[i])
	}
	assert.Equal(t, vsys.EntryTimestamp, create[6])

	assert.Len(t, Functions(TypeStableSwap)[StableSetOrder], 10)
	assert.Len(t, Functions(TypeStableSwap)[StableUpdateOrder], 9)
}

type ctrtNode struct {
	*httptest.Server
	lastPath string
	lastBody map[string]any
}

func newCtrtNode(t *testing.T) *ctrtNode {
	t.Helper()
	n := &ctrtNode{}
	n.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.lastPath = r.URL.Path
		if r.Method == http.MethodPost {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&n.lastBody))
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"status": "ok"}))
	}))
	t.Cleanup(n.Server.Close)
	return n
}

func testSetup(t *testing.T) (*vsys.Chain, *vsys.Account, *ctrtNode) {
	t.Helper()
	node := newCtrtNode(t)
	api, err := client.NewNodeAPI(node.URL)
	require.NoError(t, err)
	chain, err := vsys.NewChain(api, vsys.TestNet)
	require.NoError(t, err)
	acnt, err := vsys.NewAccount(chain, testSeed, 0)
	require.NoError(t, err)
	return chain, acnt, node
}

func TestNewInstanceValidation(t *testing.T) {
	chain, _, _ := testSetup(t)

	_, err := NewInstance(chain, Type(42), SystemContractIDTestNet)
	assert.True(t, vsys.IsValidationError(err))

	_, err = NewInstance(chain, TypeSystem, "Cn8eVZg")
	assert.True(t, vsys.IsValidationError(err))
}

func TestSystemContractSend(t *testing.T) {
	chain, acnt, node := testSetup(t)

	sys, err := NewSystemContract(chain)
	require.NoError(t, err)
	assert.Equal(t, SystemContractIDTestNet, sys.ID().String())
	assert.Equal(t, TypeSystem, sys.Type())

	recipient, err := vsys.ParseAddress("AU5NsHE8eC2guo3JobD8jrGvnEDQhBP8GtW")
	require.NoError(t, err)

	_, err = sys.Send(context.Background(), acnt, recipient, 1_000, nil)
	require.NoError(t, err)
	assert.Equal(t, "/contract/broadcast/execute", node.lastPath)
	assert.Equal(t, SystemContractIDTestNet, node.lastBody["contractId"])
	assert.Equal(t, float64(SysSend), node.lastBody["functionIndex"])
	assert.NotEmpty(t, node.lastBody["functionData"])
}

func TestSystemContractPicksNetworkID(t *testing.T) {
	node := newCtrtNode(t)
	api, err := client.NewNodeAPI(node.URL)
	require.NoError(t, err)
	chain, err := vsys.NewChain(api, vsys.MainNet)
	require.NoError(t, err)

	sys, err := NewSystemContract(chain)
	require.NoError(t, err)
	assert.Equal(t, SystemContractIDMainNet, sys.ID().String())
}

func TestTokenContractSplitGating(t *testing.T) {
	chain, acnt, node := testSetup(t)

	noSplit, err := NewTokenContract(chain, SystemContractIDTestNet, false)
	require.NoError(t, err)
	_, err = noSplit.Split(context.Background(), acnt, 100, nil)
	assert.True(t, vsys.IsValidationError(err))

	withSplit, err := NewTokenContract(chain, SystemContractIDTestNet, true)
	require.NoError(t, err)
	_, err = withSplit.Split(context.Background(), acnt, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(TokSplit), node.lastBody["functionIndex"])
}

func TestTokenContractFuncIndexShift(t *testing.T) {
	chain, acnt, node := testSetup(t)
	recipient, err := vsys.ParseAddress("AU5NsHE8eC2guo3JobD8jrGvnEDQhBP8GtW")
	require.NoError(t, err)

	noSplit, err := NewTokenContract(chain, SystemContractIDTestNet, false)
	require.NoError(t, err)
	_, err = noSplit.Send(context.Background(), acnt, recipient, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(TokSend), node.lastBody["functionIndex"])

	withSplit, err := NewTokenContract(chain, SystemContractIDTestNet, true)
	require.NoError(t, err)
	_, err = withSplit.Send(context.Background(), acnt, recipient, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(TokSplitSend), node.lastBody["functionIndex"])
}

func TestTokenContractTokenID(t *testing.T) {
	chain, _, _ := testSetup(t)

	tok, err := NewTokenContract(chain, SystemContractIDTestNet, false)
	require.NoError(t, err)

	id := tok.TokenID()
	parsed, err := vsys.ParseTokenID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestNFTContractIssue(t *testing.T) {
	chain, acnt, node := testSetup(t)

	nft, err := NewNFTContract(chain, SystemContractIDTestNet)
	require.NoError(t, err)

	_, err = nft.Issue(context.Background(), acnt, "artwork #1", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(NFTIssue), node.lastBody["functionIndex"])
}

func TestGenericCallEscrow(t *testing.T) {
	chain, acnt, node := testSetup(t)

	escrow, err := NewInstance(chain, TypeEscrow, SystemContractIDTestNet)
	require.NoError(t, err)

	orderID, err := vsys.NewBytesEntry([]byte{0x01, 0x02})
	require.NoError(t, err)
	_, err = escrow.Call(context.Background(), acnt, EscrowSubmitWork, nil, orderID)
	require.NoError(t, err)
	assert.Equal(t, float64(EscrowSubmitWork), node.lastBody["functionIndex"])

	// Kind mismatch is caught before any broadcast.
	amt, err := vsys.NewAmountEntry(1)
	require.NoError(t, err)
	_, err = escrow.Call(context.Background(), acnt, EscrowSubmitWork, nil, amt)
	assert.True(t, vsys.IsValidationError(err))
}

func TestNFTV2ContractUpdateList(t *testing.T) {
	chain, acnt, node := testSetup(t)

	nft, err := NewNFTContractV2(chain, SystemContractIDTestNet)
	require.NoError(t, err)

	user, err := vsys.ParseAddress("AU5NsHE8eC2guo3JobD8jrGvnEDQhBP8GtW")
	require.NoError(t, err)

	_, err = nft.UpdateList(context.Background(), acnt, user, true, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(NFTV2UpdateList), node.lastBody["functionIndex"])

	// UpdateList shifts every function after Issue up by one.
	_, err = nft.Send(context.Background(), acnt, user, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(NFTV2Send), node.lastBody["functionIndex"])
}

func TestEscrowContractOrderFlow(t *testing.T) {
	chain, acnt, node := testSetup(t)

	escrow, err := NewEscrowContract(chain, SystemContractIDTestNet)
	require.NoError(t, err)

	recipient, err := vsys.ParseAddress("AU5NsHE8eC2guo3JobD8jrGvnEDQhBP8GtW")
	require.NoError(t, err)
	expiry := vsys.Timestamp(1646993201931712000)

	_, err = escrow.Create(context.Background(), acnt, recipient, 1_000, 100, 50, 10, 200, expiry, nil)
	require.NoError(t, err)
	assert.Equal(t, "/contract/broadcast/execute", node.lastPath)
	assert.Equal(t, float64(EscrowCreate), node.lastBody["functionIndex"])
	assert.NotEmpty(t, node.lastBody["functionData"])

	orderID := []byte{0x01, 0x02, 0x03}
	_, err = escrow.SubmitWork(context.Background(), acnt, orderID, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(EscrowSubmitWork), node.lastBody["functionIndex"])

	_, err = escrow.Judge(context.Background(), acnt, orderID, 600, 400, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(EscrowJudge), node.lastBody["functionIndex"])

	_, err = escrow.Collect(context.Background(), acnt, orderID, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(EscrowCollect), node.lastBody["functionIndex"])

	// A negative amount is caught before any broadcast.
	_, err = escrow.Create(context.Background(), acnt, recipient, -1, 100, 50, 10, 200, expiry, nil)
	assert.True(t, vsys.IsValidationError(err))
}

func TestOptionContractLifecycle(t *testing.T) {
	chain, acnt, node := testSetup(t)

	opt, err := NewOptionContract(chain, SystemContractIDTestNet)
	require.NoError(t, err)

	_, err = opt.Activate(context.Background(), acnt, 1_000, 10, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(OptionActivate), node.lastBody["functionIndex"])

	_, err = opt.Mint(context.Background(), acnt, 500, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(OptionMint), node.lastBody["functionIndex"])

	_, err = opt.Execute(context.Background(), acnt, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(OptionExecute), node.lastBody["functionIndex"])
}

func TestStableSwapContractOrderFlow(t *testing.T) {
	chain, acnt, node := testSetup(t)

	swap, err := NewStableSwapContract(chain, SystemContractIDTestNet)
	require.NoError(t, err)

	_, err = swap.SetOrder(context.Background(), acnt, 1, 1, 10, 1_000, 10, 1_000, 100, 100, 5_000, 5_000, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(StableSetOrder), node.lastBody["functionIndex"])

	orderID := []byte{0x0a, 0x0b}
	deadline := vsys.Timestamp(1646993201931712000)

	_, err = swap.OrderDeposit(context.Background(), acnt, orderID, 100, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(StableOrderDeposit), node.lastBody["functionIndex"])

	_, err = swap.SwapBaseToTarget(context.Background(), acnt, orderID, 50, 1, 100, deadline, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(StableSwapBaseToTarget), node.lastBody["functionIndex"])

	_, err = swap.CloseOrder(context.Background(), acnt, orderID, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(StableCloseOrder), node.lastBody["functionIndex"])
}

func TestInstanceInfoEndpoints(t *testing.T) {
	chain, _, node := testSetup(t)

	in, err := NewInstance(chain, TypeSystem, SystemContractIDTestNet)
	require.NoError(t, err)

	_, err = in.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/contract/info/"+SystemContractIDTestNet, node.lastPath)

	_, err = in.Content(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/contract/content/"+SystemContractIDTestNet, node.lastPath)
}
