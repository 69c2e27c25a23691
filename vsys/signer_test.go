package vsys

import (
	"encoding/json"
	"testing"

	"github.com/vsyslabs/govsys/internal/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSignerPair(t *testing.T) KeyPair {
	t.Helper()
	kp, err := KeyPairFromSeed("test signer seed phrase for the signing tests", 0)
	require.NoError(t, err)
	return kp
}

func TestBuildAndSignProducesVerifiableProof(t *testing.T) {
	kp := testSignerPair(t)
	tx, err := NewPaymentTx(testRecipient(t), 100, nil, testTimestamp, MinPaymentFee)
	require.NoError(t, err)

	signed, err := BuildAndSign(tx, kp, TestNet, nil)
	require.NoError(t, err)
	require.Len(t, signed.Proofs, 1)

	proof := signed.Proofs[0]
	assert.Equal(t, ProofTypeCurve25519, proof.ProofType)
	assert.Equal(t, kp.Pub.String(), proof.PublicKey)

	wantAddr, err := BuildAddress(kp.Pub, TestNet)
	require.NoError(t, err)
	assert.Equal(t, wantAddr.String(), proof.Address)

	msg, err := tx.Serialize()
	require.NoError(t, err)
	sig, err := codec.Base58Decode(proof.Signature)
	require.NoError(t, err)
	assert.True(t, kp.Pub.Verify(msg, sig))
}

func TestBuildAndSignFailsOnBadTx(t *testing.T) {
	kp := testSignerPair(t)
	tx, err := NewPaymentTx(testRecipient(t), 1, make([]byte, 70_000), testTimestamp, MinPaymentFee)
	require.NoError(t, err)

	_, err = BuildAndSign(tx, kp, TestNet, nil)
	assert.Error(t, err)
}

func TestAddSignatureMultipleProofs(t *testing.T) {
	kp1 := testSignerPair(t)
	kp2, err := KeyPairFromSeed("a different signer seed for the second proof", 0)
	require.NoError(t, err)

	tx, err := NewLeaseTx(testRecipient(t), 100, testTimestamp, MinLeaseFee)
	require.NoError(t, err)
	msg, err := tx.Serialize()
	require.NoError(t, err)

	signed, err := BuildAndSign(tx, kp1, TestNet, nil)
	require.NoError(t, err)
	require.NoError(t, signed.AddSignature(msg, kp2, TestNet, nil))
	require.Len(t, signed.Proofs, 2)

	for i, kp := range []KeyPair{kp1, kp2} {
		sig, err := codec.Base58Decode(signed.Proofs[i].Signature)
		require.NoError(t, err)
		assert.True(t, kp.Pub.Verify(msg, sig))
	}
}

func TestSignedPaymentJSON(t *testing.T) {
	kp := testSignerPair(t)
	tx, err := NewPaymentTx(testRecipient(t), 100, []byte("hello"), testTimestamp, MinPaymentFee)
	require.NoError(t, err)

	signed, err := BuildAndSign(tx, kp, TestNet, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(signed)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, float64(TxTypePayment), body["type"])
	assert.Equal(t, float64(testTimestamp), body["timestamp"])
	assert.Equal(t, float64(MinPaymentFee), body["fee"])
	assert.Equal(t, float64(FeeScale), body["feeScale"])
	assert.Equal(t, "AU5NsHE8eC2guo3JobD8jrGvnEDQhBP8GtW", body["recipient"])
	assert.Equal(t, float64(100), body["amount"])
	assert.Equal(t, "Cn8eVZg", body["attachment"])
	assert.Equal(t, kp.Pub.String(), body["senderPublicKey"])

	proofs, ok := body["proofs"].([]any)
	require.True(t, ok)
	require.Len(t, proofs, 1)
	proof, ok := proofs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, ProofTypeCurve25519, proof["proofType"])
	assert.NotEmpty(t, proof["signature"])
	assert.NotEmpty(t, proof["address"])
}

func TestSignedDBPutJSON(t *testing.T) {
	kp := testSignerPair(t)
	data, err := NewDBPutByteArray([]byte("payload"))
	require.NoError(t, err)
	tx, err := NewDBPutTx("mykey", data, testTimestamp, MinDBPutFee)
	require.NoError(t, err)

	signed, err := BuildAndSign(tx, kp, TestNet, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(signed)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "mykey", body["dbKey"])
	assert.Equal(t, "ByteArray", body["dataType"])
	assert.Equal(t, "payload", body["data"])
}
