package contract

import (
	"context"

	"github.com/vsyslabs/govsys/vsys"
)

// System contract ids, fixed per network at genesis.
const (
	SystemContractIDMainNet = "CCL1QGBqPAaFjYiA8NMGVhzkd3nJkGeKYBq"
	SystemContractIDTestNet = "CF9Nd9wvQ8qVsGk8jYHbj6sf8TK7MJ2GYgt"
)

// Call encodes args for funcIdx, has `by` sign the execution and broadcasts
// it. It is the generic invocation path; the typed wrappers below go through
// it.
func (in *Instance) Call(ctx context.Context, by *vsys.Account, funcIdx uint16, attachment []byte, args ...vsys.DataEntry) (map[string]any, error) {
	data, err := EncodeFuncData(in.typ, funcIdx, args...)
	if err != nil {
		return nil, err
	}
	return by.ExecuteContract(ctx, in.id, funcIdx, data, attachment, 0)
}

// Info returns the contract's state summary from the node.
func (in *Instance) Info(ctx context.Context) (map[string]any, error) {
	return in.chain.API().ContractInfo(ctx, in.id.String())
}

// Content returns the contract's stored metadata from the node.
func (in *Instance) Content(ctx context.Context) (map[string]any, error) {
	return in.chain.API().ContractContent(ctx, in.id.String())
}

// SystemContract is the built-in coin contract every chain carries.
type SystemContract struct {
	*Instance
}

// NewSystemContract returns the system contract bound to chain's network.
func NewSystemContract(chain *vsys.Chain) (*SystemContract, error) {
	id := SystemContractIDMainNet
	if chain.ID() == vsys.TestNet {
		id = SystemContractIDTestNet
	}
	in, err := NewInstance(chain, TypeSystem, id)
	if err != nil {
		return nil, err
	}
	return &SystemContract{Instance: in}, nil
}

// Send moves amount coins from `by` to recipient through the contract engine.
func (c *SystemContract) Send(ctx context.Context, by *vsys.Account, recipient vsys.Address, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, SysSend, attachment, vsys.NewAddressEntry(recipient), amt)
}

// Deposit moves amount coins from sender into a contract.
func (c *SystemContract) Deposit(ctx context.Context, by *vsys.Account, sender vsys.Address, ctrtID vsys.ContractID, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, SysDeposit, attachment, vsys.NewAddressEntry(sender), vsys.NewContractAccountEntry(ctrtID), amt)
}

// Withdraw moves amount coins out of a contract back to recipient.
func (c *SystemContract) Withdraw(ctx context.Context, by *vsys.Account, ctrtID vsys.ContractID, recipient vsys.Address, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, SysWithdraw, attachment, vsys.NewContractAccountEntry(ctrtID), vsys.NewAddressEntry(recipient), amt)
}

// Transfer moves amount coins between two addresses.
func (c *SystemContract) Transfer(ctx context.Context, by *vsys.Account, sender, recipient vsys.Address, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, SysTransfer, attachment, vsys.NewAddressEntry(sender), vsys.NewAddressEntry(recipient), amt)
}

// TokenContract is an issued token, with or without the split capability.
type TokenContract struct {
	*Instance
	split bool
}

// NewTokenContract binds a token contract id to a chain. split selects the
// variant whose function table includes Split.
func NewTokenContract(chain *vsys.Chain, ctrtID string, split bool) (*TokenContract, error) {
	typ := TypeTokenNoSplit
	if split {
		typ = TypeTokenWithSplit
	}
	in, err := NewInstance(chain, typ, ctrtID)
	if err != nil {
		return nil, err
	}
	return &TokenContract{Instance: in, split: split}, nil
}

// TokenID returns the contract's token id.
func (c *TokenContract) TokenID() vsys.TokenID {
	return c.id.TokenID(0)
}

func (c *TokenContract) fn(noSplit, withSplit uint16) uint16 {
	if c.split {
		return withSplit
	}
	return noSplit
}

// Supersede hands the issuer role to a new address.
func (c *TokenContract) Supersede(ctx context.Context, by *vsys.Account, newIssuer vsys.Address, attachment []byte) (map[string]any, error) {
	return c.Call(ctx, by, c.fn(TokSupersede, TokSplitSupersede), attachment, vsys.NewAddressEntry(newIssuer))
}

// Issue mints amount new token units to the issuer.
func (c *TokenContract) Issue(ctx context.Context, by *vsys.Account, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, c.fn(TokIssue, TokSplitIssue), attachment, amt)
}

// Destroy burns amount token units held by the issuer.
func (c *TokenContract) Destroy(ctx context.Context, by *vsys.Account, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, c.fn(TokDestroy, TokSplitDestroy), attachment, amt)
}

// Split changes the token's unit. Only the split variant supports it.
func (c *TokenContract) Split(ctx context.Context, by *vsys.Account, newUnit int64, attachment []byte) (map[string]any, error) {
	if !c.split {
		return nil, &vsys.ValidationError{Field: "function index", Reason: "token contract without split has no split function"}
	}
	unit, err := vsys.NewAmountEntry(newUnit)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, TokSplit, attachment, unit)
}

// Send moves amount token units from `by` to recipient.
func (c *TokenContract) Send(ctx context.Context, by *vsys.Account, recipient vsys.Address, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, c.fn(TokSend, TokSplitSend), attachment, vsys.NewAddressEntry(recipient), amt)
}

// Transfer moves amount token units between two addresses.
func (c *TokenContract) Transfer(ctx context.Context, by *vsys.Account, sender, recipient vsys.Address, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, c.fn(TokTransfer, TokSplitTransfer), attachment, vsys.NewAddressEntry(sender), vsys.NewAddressEntry(recipient), amt)
}

// Deposit moves amount token units from sender into another contract.
func (c *TokenContract) Deposit(ctx context.Context, by *vsys.Account, sender vsys.Address, ctrtID vsys.ContractID, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, c.fn(TokDeposit, TokSplitDeposit), attachment, vsys.NewAddressEntry(sender), vsys.NewContractAccountEntry(ctrtID), amt)
}

// Withdraw moves amount token units out of another contract to recipient.
func (c *TokenContract) Withdraw(ctx context.Context, by *vsys.Account, ctrtID vsys.ContractID, recipient vsys.Address, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, c.fn(TokWithdraw, TokSplitWithdraw), attachment, vsys.NewContractAccountEntry(ctrtID), vsys.NewAddressEntry(recipient), amt)
}

// NFTContract is a non-fungible token collection.
type NFTContract struct {
	*Instance
}

// NewNFTContract binds an NFT contract id to a chain.
func NewNFTContract(chain *vsys.Chain, ctrtID string) (*NFTContract, error) {
	in, err := NewInstance(chain, TypeNFT, ctrtID)
	if err != nil {
		return nil, err
	}
	return &NFTContract{Instance: in}, nil
}

// Supersede hands the issuer role to a new address.
func (c *NFTContract) Supersede(ctx context.Context, by *vsys.Account, newIssuer vsys.Address, attachment []byte) (map[string]any, error) {
	return c.Call(ctx, by, NFTSupersede, attachment, vsys.NewAddressEntry(newIssuer))
}

// Issue mints one token carrying the given description.
func (c *NFTContract) Issue(ctx context.Context, by *vsys.Account, description string, attachment []byte) (map[string]any, error) {
	desc, err := vsys.NewStringEntry(description)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTIssue, attachment, desc)
}

// Send moves the token at tokIdx from `by` to recipient.
func (c *NFTContract) Send(ctx context.Context, by *vsys.Account, recipient vsys.Address, tokIdx int32, attachment []byte) (map[string]any, error) {
	idx, err := vsys.NewInt32Entry(tokIdx)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTSend, attachment, vsys.NewAddressEntry(recipient), idx)
}

// Transfer moves the token at tokIdx between two addresses.
func (c *NFTContract) Transfer(ctx context.Context, by *vsys.Account, sender, recipient vsys.Address, tokIdx int32, attachment []byte) (map[string]any, error) {
	idx, err := vsys.NewInt32Entry(tokIdx)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTTransfer, attachment, vsys.NewAddressEntry(sender), vsys.NewAddressEntry(recipient), idx)
}

// Deposit moves the token at tokIdx from sender into a contract.
func (c *NFTContract) Deposit(ctx context.Context, by *vsys.Account, sender vsys.Address, ctrtID vsys.ContractID, tokIdx int32, attachment []byte) (map[string]any, error) {
	idx, err := vsys.NewInt32Entry(tokIdx)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTDeposit, attachment, vsys.NewAddressEntry(sender), vsys.NewContractAccountEntry(ctrtID), idx)
}

// Withdraw moves the token at tokIdx out of a contract to recipient.
func (c *NFTContract) Withdraw(ctx context.Context, by *vsys.Account, ctrtID vsys.ContractID, recipient vsys.Address, tokIdx int32, attachment []byte) (map[string]any, error) {
	idx, err := vsys.NewInt32Entry(tokIdx)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTWithdraw, attachment, vsys.NewContractAccountEntry(ctrtID), vsys.NewAddressEntry(recipient), idx)
}

// LockContract locks deposited coins until a release time.
type LockContract struct {
	*Instance
}

// NewLockContract binds a lock contract id to a chain.
func NewLockContract(chain *vsys.Chain, ctrtID string) (*LockContract, error) {
	in, err := NewInstance(chain, TypeLock, ctrtID)
	if err != nil {
		return nil, err
	}
	return &LockContract{Instance: in}, nil
}

// Lock locks the caller's deposited balance until the given time.
func (c *LockContract) Lock(ctx context.Context, by *vsys.Account, until vsys.Timestamp, attachment []byte) (map[string]any, error) {
	ts, err := vsys.NewTimestampEntry(until)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, LockLock, attachment, ts)
}

// AtomicSwapContract implements hash-locked cross-chain swaps.
type AtomicSwapContract struct {
	*Instance
}

// NewAtomicSwapContract binds an atomic swap contract id to a chain.
func NewAtomicSwapContract(chain *vsys.Chain, ctrtID string) (*AtomicSwapContract, error) {
	in, err := NewInstance(chain, TypeAtomicSwap, ctrtID)
	if err != nil {
		return nil, err
	}
	return &AtomicSwapContract{Instance: in}, nil
}

// Lock locks amount for recipient behind the puzzle until expiry.
func (c *AtomicSwapContract) Lock(ctx context.Context, by *vsys.Account, amount int64, recipient vsys.Address, puzzle []byte, expiry vsys.Timestamp, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	hash, err := vsys.NewBytesEntry(puzzle)
	if err != nil {
		return nil, err
	}
	ts, err := vsys.NewTimestampEntry(expiry)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, SwapLock, attachment, amt, vsys.NewAddressEntry(recipient), hash, ts)
}

// SolvePuzzle claims a lock by presenting its secret.
func (c *AtomicSwapContract) SolvePuzzle(ctx context.Context, by *vsys.Account, lockTxID, secret []byte, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(lockTxID)
	if err != nil {
		return nil, err
	}
	sec, err := vsys.NewBytesEntry(secret)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, SwapSolvePuzzle, attachment, id, sec)
}

// ExpireWithdraw reclaims an expired, unclaimed lock.
func (c *AtomicSwapContract) ExpireWithdraw(ctx context.Context, by *vsys.Account, lockTxID []byte, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(lockTxID)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, SwapExpireWithdraw, attachment, id)
}

// PayChanContract implements off-chain payment channels settled on-chain.
type PayChanContract struct {
	*Instance
}

// NewPayChanContract binds a payment channel contract id to a chain.
func NewPayChanContract(chain *vsys.Chain, ctrtID string) (*PayChanContract, error) {
	in, err := NewInstance(chain, TypePayChan, ctrtID)
	if err != nil {
		return nil, err
	}
	return &PayChanContract{Instance: in}, nil
}

// CreateAndLoad opens a channel to recipient funded with amount, expiring at
// the given time.
func (c *PayChanContract) CreateAndLoad(ctx context.Context, by *vsys.Account, recipient vsys.Address, amount int64, expiry vsys.Timestamp, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	ts, err := vsys.NewTimestampEntry(expiry)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, ChanCreateAndLoad, attachment, vsys.NewAddressEntry(recipient), amt, ts)
}

// ExtendExpiry pushes a channel's expiry further out.
func (c *PayChanContract) ExtendExpiry(ctx context.Context, by *vsys.Account, chanID []byte, expiry vsys.Timestamp, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(chanID)
	if err != nil {
		return nil, err
	}
	ts, err := vsys.NewTimestampEntry(expiry)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, ChanExtendExpiry, attachment, id, ts)
}

// Load adds amount to an open channel's balance.
func (c *PayChanContract) Load(ctx context.Context, by *vsys.Account, chanID []byte, amount int64, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(chanID)
	if err != nil {
		return nil, err
	}
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, ChanLoad, attachment, id, amt)
}

// Abort starts the payer's unilateral close of a channel.
func (c *PayChanContract) Abort(ctx context.Context, by *vsys.Account, chanID []byte, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(chanID)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, ChanAbort, attachment, id)
}

// Unload returns an expired channel's remaining balance to the payer.
func (c *PayChanContract) Unload(ctx context.Context, by *vsys.Account, chanID []byte, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(chanID)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, ChanUnload, attachment, id)
}

// CollectPayment settles amount to the recipient against the payer's
// off-chain signature.
func (c *PayChanContract) CollectPayment(ctx context.Context, by *vsys.Account, chanID []byte, amount int64, signature []byte, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(chanID)
	if err != nil {
		return nil, err
	}
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	sig, err := vsys.NewBytesEntry(signature)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, ChanCollectPayment, attachment, id, amt, sig)
}

// amountEntries wraps each value as an amount entry, in order.
func amountEntries(vals ...int64) ([]vsys.DataEntry, error) {
	out := make([]vsys.DataEntry, len(vals))
	for i, v := range vals {
		e, err := vsys.NewAmountEntry(v)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// NFTContractV2 is a non-fungible token collection with a user list the
// issuer can edit.
type NFTContractV2 struct {
	*Instance
}

// NewNFTContractV2 binds a v2 NFT contract id to a chain.
func NewNFTContractV2(chain *vsys.Chain, ctrtID string) (*NFTContractV2, error) {
	in, err := NewInstance(chain, TypeNFTV2, ctrtID)
	if err != nil {
		return nil, err
	}
	return &NFTContractV2{Instance: in}, nil
}

// Supersede hands the issuer role to a new address.
func (c *NFTContractV2) Supersede(ctx context.Context, by *vsys.Account, newIssuer vsys.Address, attachment []byte) (map[string]any, error) {
	return c.Call(ctx, by, NFTV2Supersede, attachment, vsys.NewAddressEntry(newIssuer))
}

// Issue mints one token carrying the given description.
func (c *NFTContractV2) Issue(ctx context.Context, by *vsys.Account, description string, attachment []byte) (map[string]any, error) {
	desc, err := vsys.NewStringEntry(description)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTV2Issue, attachment, desc)
}

// UpdateList adds user to or removes user from the contract's list.
func (c *NFTContractV2) UpdateList(ctx context.Context, by *vsys.Account, user vsys.Address, listed bool, attachment []byte) (map[string]any, error) {
	return c.Call(ctx, by, NFTV2UpdateList, attachment, vsys.NewAddressEntry(user), vsys.NewBoolEntry(listed))
}

// Send moves the token at tokIdx from `by` to recipient.
func (c *NFTContractV2) Send(ctx context.Context, by *vsys.Account, recipient vsys.Address, tokIdx int32, attachment []byte) (map[string]any, error) {
	idx, err := vsys.NewInt32Entry(tokIdx)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTV2Send, attachment, vsys.NewAddressEntry(recipient), idx)
}

// Transfer moves the token at tokIdx between two addresses.
func (c *NFTContractV2) Transfer(ctx context.Context, by *vsys.Account, sender, recipient vsys.Address, tokIdx int32, attachment []byte) (map[string]any, error) {
	idx, err := vsys.NewInt32Entry(tokIdx)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTV2Transfer, attachment, vsys.NewAddressEntry(sender), vsys.NewAddressEntry(recipient), idx)
}

// Deposit moves the token at tokIdx from sender into a contract.
func (c *NFTContractV2) Deposit(ctx context.Context, by *vsys.Account, sender vsys.Address, ctrtID vsys.ContractID, tokIdx int32, attachment []byte) (map[string]any, error) {
	idx, err := vsys.NewInt32Entry(tokIdx)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTV2Deposit, attachment, vsys.NewAddressEntry(sender), vsys.NewContractAccountEntry(ctrtID), idx)
}

// Withdraw moves the token at tokIdx out of a contract to recipient.
func (c *NFTContractV2) Withdraw(ctx context.Context, by *vsys.Account, ctrtID vsys.ContractID, recipient vsys.Address, tokIdx int32, attachment []byte) (map[string]any, error) {
	idx, err := vsys.NewInt32Entry(tokIdx)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, NFTV2Withdraw, attachment, vsys.NewContractAccountEntry(ctrtID), vsys.NewAddressEntry(recipient), idx)
}

// EscrowContract implements judged three-party escrow orders.
type EscrowContract struct {
	*Instance
}

// NewEscrowContract binds an escrow contract id to a chain.
func NewEscrowContract(chain *vsys.Chain, ctrtID string) (*EscrowContract, error) {
	in, err := NewInstance(chain, TypeEscrow, ctrtID)
	if err != nil {
		return nil, err
	}
	return &EscrowContract{Instance: in}, nil
}

// Supersede hands the judge role to a new address.
func (c *EscrowContract) Supersede(ctx context.Context, by *vsys.Account, newJudge vsys.Address, attachment []byte) (map[string]any, error) {
	return c.Call(ctx, by, EscrowSupersede, attachment, vsys.NewAddressEntry(newJudge))
}

// Create opens an order: the payer escrows amount for recipient, naming the
// deposits the other parties must stake, the judge's fee, the refund paid on
// failure, and the order's expiry.
func (c *EscrowContract) Create(ctx context.Context, by *vsys.Account, recipient vsys.Address, amount, recipientDeposit, judgeDeposit, orderFee, refund int64, expiry vsys.Timestamp, attachment []byte) (map[string]any, error) {
	amts, err := amountEntries(amount, recipientDeposit, judgeDeposit, orderFee, refund)
	if err != nil {
		return nil, err
	}
	ts, err := vsys.NewTimestampEntry(expiry)
	if err != nil {
		return nil, err
	}
	args := append([]vsys.DataEntry{vsys.NewAddressEntry(recipient)}, append(amts, ts)...)
	return c.Call(ctx, by, EscrowCreate, attachment, args...)
}

// orderCall invokes a function that takes only the order id.
func (c *EscrowContract) orderCall(ctx context.Context, by *vsys.Account, funcIdx uint16, orderID, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(orderID)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, funcIdx, attachment, id)
}

// RecipientDeposit stakes the recipient's deposit into an order.
func (c *EscrowContract) RecipientDeposit(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowRecipientDeposit, orderID, attachment)
}

// JudgeDeposit stakes the judge's deposit into an order.
func (c *EscrowContract) JudgeDeposit(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowJudgeDeposit, orderID, attachment)
}

// PayerCancel withdraws the payer from an order not yet fully staked.
func (c *EscrowContract) PayerCancel(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowPayerCancel, orderID, attachment)
}

// RecipientCancel withdraws the recipient from an order not yet fully staked.
func (c *EscrowContract) RecipientCancel(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowRecipientCancel, orderID, attachment)
}

// JudgeCancel withdraws the judge from an order not yet fully staked.
func (c *EscrowContract) JudgeCancel(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowJudgeCancel, orderID, attachment)
}

// SubmitWork marks the recipient's work on an order as delivered.
func (c *EscrowContract) SubmitWork(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowSubmitWork, orderID, attachment)
}

// ApproveWork releases an order's funds to the recipient.
func (c *EscrowContract) ApproveWork(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowApproveWork, orderID, attachment)
}

// ApplyToJudge escalates a disputed order to the judge.
func (c *EscrowContract) ApplyToJudge(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowApplyToJudge, orderID, attachment)
}

// Judge settles a disputed order, splitting its funds between payer and
// recipient.
func (c *EscrowContract) Judge(ctx context.Context, by *vsys.Account, orderID []byte, payerAmount, recipientAmount int64, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(orderID)
	if err != nil {
		return nil, err
	}
	amts, err := amountEntries(payerAmount, recipientAmount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, EscrowJudge, attachment, append([]vsys.DataEntry{id}, amts...)...)
}

// SubmitPenalty claims an expired order's stakes for the payer.
func (c *EscrowContract) SubmitPenalty(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowSubmitPenalty, orderID, attachment)
}

// PayerRefund takes the payer's share out of a failed order.
func (c *EscrowContract) PayerRefund(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowPayerRefund, orderID, attachment)
}

// RecipientRefund takes the recipient's share out of a failed order.
func (c *EscrowContract) RecipientRefund(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowRecipientRefund, orderID, attachment)
}

// Collect pays out a completed order.
func (c *EscrowContract) Collect(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	return c.orderCall(ctx, by, EscrowCollect, orderID, attachment)
}

// OptionContract sells and exercises options on a deposited token.
type OptionContract struct {
	*Instance
}

// NewOptionContract binds an option contract id to a chain.
func NewOptionContract(chain *vsys.Chain, ctrtID string) (*OptionContract, error) {
	in, err := NewInstance(chain, TypeOption, ctrtID)
	if err != nil {
		return nil, err
	}
	return &OptionContract{Instance: in}, nil
}

// Supersede hands the issuer role to a new address.
func (c *OptionContract) Supersede(ctx context.Context, by *vsys.Account, newIssuer vsys.Address, attachment []byte) (map[string]any, error) {
	return c.Call(ctx, by, OptionSupersede, attachment, vsys.NewAddressEntry(newIssuer))
}

// Activate opens the contract for sale: at most maxIssue option tokens, each
// priced at price in units of priceUnit.
func (c *OptionContract) Activate(ctx context.Context, by *vsys.Account, maxIssue, price, priceUnit int64, attachment []byte) (map[string]any, error) {
	amts, err := amountEntries(maxIssue, price, priceUnit)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, OptionActivate, attachment, amts...)
}

// amountCall invokes a function that takes a single amount.
func (c *OptionContract) amountCall(ctx context.Context, by *vsys.Account, funcIdx uint16, amount int64, attachment []byte) (map[string]any, error) {
	amt, err := vsys.NewAmountEntry(amount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, funcIdx, attachment, amt)
}

// Mint locks amount target tokens and issues option tokens against them.
func (c *OptionContract) Mint(ctx context.Context, by *vsys.Account, amount int64, attachment []byte) (map[string]any, error) {
	return c.amountCall(ctx, by, OptionMint, amount, attachment)
}

// Unlock releases amount target tokens from the issuer's collateral.
func (c *OptionContract) Unlock(ctx context.Context, by *vsys.Account, amount int64, attachment []byte) (map[string]any, error) {
	return c.amountCall(ctx, by, OptionUnlock, amount, attachment)
}

// Execute exercises amount option tokens within the execute window.
func (c *OptionContract) Execute(ctx context.Context, by *vsys.Account, amount int64, attachment []byte) (map[string]any, error) {
	return c.amountCall(ctx, by, OptionExecute, amount, attachment)
}

// Collect redeems amount proof tokens after the execute deadline.
func (c *OptionContract) Collect(ctx context.Context, by *vsys.Account, amount int64, attachment []byte) (map[string]any, error) {
	return c.amountCall(ctx, by, OptionCollect, amount, attachment)
}

// StableSwapContract trades a base token against a target token through
// maker-posted orders.
type StableSwapContract struct {
	*Instance
}

// NewStableSwapContract binds a stable swap contract id to a chain.
func NewStableSwapContract(chain *vsys.Chain, ctrtID string) (*StableSwapContract, error) {
	in, err := NewInstance(chain, TypeStableSwap, ctrtID)
	if err != nil {
		return nil, err
	}
	return &StableSwapContract{Instance: in}, nil
}

// Supersede hands the maintainer role to a new address.
func (c *StableSwapContract) Supersede(ctx context.Context, by *vsys.Account, newMaintainer vsys.Address, attachment []byte) (map[string]any, error) {
	return c.Call(ctx, by, StableSupersede, attachment, vsys.NewAddressEntry(newMaintainer))
}

// SetOrder posts a maker order: per-side fees, per-trade min/max bounds,
// prices for both directions, and the initial deposits.
func (c *StableSwapContract) SetOrder(ctx context.Context, by *vsys.Account, feeBase, feeTarget, minBase, maxBase, minTarget, maxTarget, priceBase, priceTarget, baseDeposit, targetDeposit int64, attachment []byte) (map[string]any, error) {
	amts, err := amountEntries(feeBase, feeTarget, minBase, maxBase, minTarget, maxTarget, priceBase, priceTarget, baseDeposit, targetDeposit)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, StableSetOrder, attachment, amts...)
}

// UpdateOrder changes an open order's fees, bounds and prices.
func (c *StableSwapContract) UpdateOrder(ctx context.Context, by *vsys.Account, orderID []byte, feeBase, feeTarget, minBase, maxBase, minTarget, maxTarget, priceBase, priceTarget int64, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(orderID)
	if err != nil {
		return nil, err
	}
	amts, err := amountEntries(feeBase, feeTarget, minBase, maxBase, minTarget, maxTarget, priceBase, priceTarget)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, StableUpdateOrder, attachment, append([]vsys.DataEntry{id}, amts...)...)
}

// OrderDeposit adds liquidity to both sides of an open order.
func (c *StableSwapContract) OrderDeposit(ctx context.Context, by *vsys.Account, orderID []byte, baseAmount, targetAmount int64, attachment []byte) (map[string]any, error) {
	return c.orderAmounts(ctx, by, StableOrderDeposit, orderID, baseAmount, targetAmount, attachment)
}

// OrderWithdraw removes liquidity from both sides of an open order.
func (c *StableSwapContract) OrderWithdraw(ctx context.Context, by *vsys.Account, orderID []byte, baseAmount, targetAmount int64, attachment []byte) (map[string]any, error) {
	return c.orderAmounts(ctx, by, StableOrderWithdraw, orderID, baseAmount, targetAmount, attachment)
}

func (c *StableSwapContract) orderAmounts(ctx context.Context, by *vsys.Account, funcIdx uint16, orderID []byte, baseAmount, targetAmount int64, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(orderID)
	if err != nil {
		return nil, err
	}
	amts, err := amountEntries(baseAmount, targetAmount)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, funcIdx, attachment, append([]vsys.DataEntry{id}, amts...)...)
}

// CloseOrder closes an order and returns its remaining deposits.
func (c *StableSwapContract) CloseOrder(ctx context.Context, by *vsys.Account, orderID, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(orderID)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, by, StableCloseOrder, attachment, id)
}

// SwapBaseToTarget trades amount base tokens against an order at the given
// price, paying swapFee, before deadline.
func (c *StableSwapContract) SwapBaseToTarget(ctx context.Context, by *vsys.Account, orderID []byte, amount, swapFee, price int64, deadline vsys.Timestamp, attachment []byte) (map[string]any, error) {
	return c.swap(ctx, by, StableSwapBaseToTarget, orderID, amount, swapFee, price, deadline, attachment)
}

// SwapTargetToBase trades amount target tokens against an order at the given
// price, paying swapFee, before deadline.
func (c *StableSwapContract) SwapTargetToBase(ctx context.Context, by *vsys.Account, orderID []byte, amount, swapFee, price int64, deadline vsys.Timestamp, attachment []byte) (map[string]any, error) {
	return c.swap(ctx, by, StableSwapTargetToBase, orderID, amount, swapFee, price, deadline, attachment)
}

func (c *StableSwapContract) swap(ctx context.Context, by *vsys.Account, funcIdx uint16, orderID []byte, amount, swapFee, price int64, deadline vsys.Timestamp, attachment []byte) (map[string]any, error) {
	id, err := vsys.NewBytesEntry(orderID)
	if err != nil {
		return nil, err
	}
	amts, err := amountEntries(amount, swapFee, price)
	if err != nil {
		return nil, err
	}
	ts, err := vsys.NewTimestampEntry(deadline)
	if err != nil {
		return nil, err
	}
	args := append([]vsys.DataEntry{id}, append(amts, ts)...)
	return c.Call(ctx, by, funcIdx, attachment, args...)
}
