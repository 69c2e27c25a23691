package vsys

import (
	"context"
	"fmt"
	"io"

	"github.com/vsyslabs/govsys/internal/codec"
	"github.com/vsyslabs/govsys/internal/curve25519"
)

// AccountSeedHash derives the deterministic per-account seed digest:
// sha256(keccak256(blake2b256("{nonce}{seed}"))). The same seed and nonce
// always yield the same account.
func AccountSeedHash(seed string, nonce uint32) []byte {
	raw := fmt.Sprintf("%d%s", nonce, seed)
	return codec.Sha256(codec.SecureHash([]byte(raw)))
}

// KeyPairFromSeed derives the key pair for one (seed, nonce) account slot.
func KeyPairFromSeed(seed string, nonce uint32) (KeyPair, error) {
	if seed == "" {
		return KeyPair{}, &KeyError{Reason: "seed must not be empty"}
	}
	priv, err := curve25519.GeneratePrivateKey(AccountSeedHash(seed, nonce))
	if err != nil {
		return KeyPair{}, &KeyError{Reason: err.Error()}
	}
	pri, err := PrivateKeyFromBytes(priv)
	if err != nil {
		return KeyPair{}, err
	}
	return NewKeyPair(pri)
}

// Account is one address on one chain, able to sign and broadcast every
// transaction kind.
type Account struct {
	chain *Chain
	kp    KeyPair
	addr  Address

	// entropy feeds the randomized signer; nil means crypto/rand.
	entropy io.Reader
}

// NewAccount derives the account for the given seed and nonce on chain.
func NewAccount(chain *Chain, seed string, nonce uint32) (*Account, error) {
	kp, err := KeyPairFromSeed(seed, nonce)
	if err != nil {
		return nil, err
	}
	return NewAccountFromKeyPair(chain, kp)
}

// NewAccountFromKeyPair builds an account around an existing key pair.
func NewAccountFromKeyPair(chain *Chain, kp KeyPair) (*Account, error) {
	addr, err := BuildAddress(kp.Pub, chain.ID())
	if err != nil {
		return nil, err
	}
	return &Account{chain: chain, kp: kp, addr: addr}, nil
}

// Chain returns the chain the account lives on.
func (a *Account) Chain() *Chain {
	return a.chain
}

// KeyPair returns the account's key pair.
func (a *Account) KeyPair() KeyPair {
	return a.kp
}

// Address returns the account's address.
func (a *Account) Address() Address {
	return a.addr
}

// Balance returns the account's regular balance in smallest units.
func (a *Account) Balance(ctx context.Context) (int64, error) {
	return a.chain.Balance(ctx, a.addr)
}

// EffectiveBalance returns the account's effective balance in smallest units.
func (a *Account) EffectiveBalance(ctx context.Context) (int64, error) {
	return a.chain.EffectiveBalance(ctx, a.addr)
}

// sign wraps tx in a single-proof signed transaction.
func (a *Account) sign(tx Transaction) (*SignedTransaction, error) {
	return BuildAndSign(tx, a.kp, a.chain.ID(), a.entropy)
}

// Pay sends amount (smallest units) to recipient. The recipient must be on
// the account's chain. Returns the node's broadcast response.
func (a *Account) Pay(ctx context.Context, recipient Address, amount int64, attachment []byte) (map[string]any, error) {
	if err := recipient.MustOn(a.chain.ID()); err != nil {
		return nil, err
	}
	tx, err := NewPaymentTx(recipient, amount, attachment, Now(), MinPaymentFee)
	if err != nil {
		return nil, err
	}
	signed, err := a.sign(tx)
	if err != nil {
		return nil, err
	}
	return a.chain.API().BroadcastPayment(ctx, signed)
}

// Lease leases amount (smallest units) to a supernode address.
func (a *Account) Lease(ctx context.Context, supernode Address, amount int64) (map[string]any, error) {
	if err := supernode.MustOn(a.chain.ID()); err != nil {
		return nil, err
	}
	tx, err := NewLeaseTx(supernode, amount, Now(), MinLeaseFee)
	if err != nil {
		return nil, err
	}
	signed, err := a.sign(tx)
	if err != nil {
		return nil, err
	}
	return a.chain.API().BroadcastLease(ctx, signed)
}

// CancelLease cancels an active lease by its transaction id.
func (a *Account) CancelLease(ctx context.Context, leaseTxID string) (map[string]any, error) {
	tx, err := NewLeaseCancelTx(leaseTxID, Now(), MinLeaseCancelFee)
	if err != nil {
		return nil, err
	}
	signed, err := a.sign(tx)
	if err != nil {
		return nil, err
	}
	return a.chain.API().BroadcastCancelLease(ctx, signed)
}

// DBPut stores data under key in the account's on-chain database.
func (a *Account) DBPut(ctx context.Context, key string, data DBPutData) (map[string]any, error) {
	tx, err := NewDBPutTx(key, data, Now(), MinDBPutFee)
	if err != nil {
		return nil, err
	}
	signed, err := a.sign(tx)
	if err != nil {
		return nil, err
	}
	return a.chain.API().BroadcastDBPut(ctx, signed)
}

// DBGet reads back a value previously stored by this account.
func (a *Account) DBGet(ctx context.Context, key string) (map[string]any, error) {
	return a.chain.API().DBGet(ctx, a.addr.String(), key)
}

// RegisterContract registers a contract with the given serialized metadata
// and init data stack.
func (a *Account) RegisterContract(ctx context.Context, meta, initData []byte, description string) (map[string]any, error) {
	tx, err := NewRegisterContractTx(meta, initData, description, Now(), MinRegisterContractFee)
	if err != nil {
		return nil, err
	}
	signed, err := a.sign(tx)
	if err != nil {
		return nil, err
	}
	return a.chain.API().BroadcastRegisterContract(ctx, signed)
}

// ExecuteContract invokes a contract function with pre-encoded function data.
// fee must be at least MinExecuteContractFee; pass 0 for the default.
func (a *Account) ExecuteContract(ctx context.Context, ctrtID ContractID, funcIdx uint16, funcData, attachment []byte, fee int64) (map[string]any, error) {
	if fee == 0 {
		fee = MinExecuteContractFee
	}
	tx, err := NewExecuteContractTx(ctrtID, funcIdx, funcData, attachment, Now(), fee)
	if err != nil {
		return nil, err
	}
	signed, err := a.sign(tx)
	if err != nil {
		return nil, err
	}
	return a.chain.API().BroadcastExecuteContract(ctx, signed)
}
