package vsys

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vsyslabs/govsys/internal/codec"
)

// ProofTypeCurve25519 is the only proof type the network accepts today.
const ProofTypeCurve25519 = "Curve25519"

// Proof is one signature over a transaction's serialized bytes, bound to the
// signer's public key and address.
type Proof struct {
	ProofType string `json:"proofType"`
	PublicKey string `json:"publicKey"`
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// SignedTransaction pairs a transaction with the proofs collected for it.
// Its JSON form is the body the node's broadcast endpoints expect.
type SignedTransaction struct {
	Tx     Transaction
	Proofs []Proof
}

// BuildAndSign serializes tx, signs the bytes with kp, and returns the signed
// transaction carrying a single proof. It is all-or-nothing: any failure
// leaves no partial result. entropy may be nil to use crypto/rand.
func BuildAndSign(tx Transaction, kp KeyPair, chain ChainID, entropy io.Reader) (*SignedTransaction, error) {
	msg, err := tx.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transaction: %w", err)
	}
	signed := &SignedTransaction{Tx: tx}
	if err := signed.AddSignature(msg, kp, chain, entropy); err != nil {
		return nil, err
	}
	return signed, nil
}

// AddSignature signs msg with kp and appends the resulting proof. msg must be
// the transaction's serialized bytes; callers adding a second proof pass the
// same bytes the first signer saw.
func (st *SignedTransaction) AddSignature(msg []byte, kp KeyPair, chain ChainID, entropy io.Reader) error {
	sig, err := kp.Sign(msg, entropy)
	if err != nil {
		return err
	}
	addr, err := BuildAddress(kp.Pub, chain)
	if err != nil {
		return err
	}
	st.Proofs = append(st.Proofs, Proof{
		ProofType: ProofTypeCurve25519,
		PublicKey: kp.Pub.String(),
		Address:   addr.String(),
		Signature: codec.Base58Encode(sig),
	})
	return nil
}

// MarshalJSON renders the broadcast body: the fields common to every kind
// plus the kind-specific ones.
func (st *SignedTransaction) MarshalJSON() ([]byte, error) {
	tx := st.Tx
	fields := map[string]any{
		"type":      tx.TxType(),
		"timestamp": tx.txTimestamp().UnixNano(),
		"fee":       tx.txFee(),
		"feeScale":  FeeScale,
		"proofs":    st.Proofs,
	}
	if len(st.Proofs) > 0 {
		fields["senderPublicKey"] = st.Proofs[0].PublicKey
	}
	for k, v := range tx.jsonFields() {
		fields[k] = v
	}
	return json.Marshal(fields)
}
