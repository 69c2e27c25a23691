package vsys

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimestamp = Timestamp(1646993201931712000)

func testRecipient(t *testing.T) Address {
	t.Helper()
	addr, err := ParseAddress("AU5NsHE8eC2guo3JobD8jrGvnEDQhBP8GtW")
	require.NoError(t, err)
	return addr
}

func TestPaymentSerializeKnownBytes(t *testing.T) {
	tx, err := NewPaymentTx(testRecipient(t), 10_000_000_000, nil, testTimestamp, MinPaymentFee)
	require.NoError(t, err)

	b, err := tx.Serialize()
	require.NoError(t, err)
	assert.Equal(t,
		"0216db4b974c9f760000000002540be40000000000009896800064055492986ab45860c76d02a9f4af5a6bb0547fd6442de88854ff0000",
		hex.EncodeToString(b),
	)
}

func TestPaymentSerializeDeterministic(t *testing.T) {
	tx, err := NewPaymentTx(testRecipient(t), 42, []byte("note"), testTimestamp, MinPaymentFee)
	require.NoError(t, err)

	b1, err := tx.Serialize()
	require.NoError(t, err)
	b2, err := tx.Serialize()
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestPaymentValidation(t *testing.T) {
	_, err := NewPaymentTx(testRecipient(t), -1, nil, testTimestamp, MinPaymentFee)
	assert.True(t, IsValidationError(err))

	_, err = NewPaymentTx(testRecipient(t), 1, nil, testTimestamp, MinPaymentFee-1)
	assert.True(t, IsValidationError(err))

	_, err = NewPaymentTx(testRecipient(t), 1, nil, Timestamp(999), MinPaymentFee)
	assert.True(t, IsValidationError(err))
}

func TestLeaseSerializeKnownBytes(t *testing.T) {
	tx, err := NewLeaseTx(testRecipient(t), 10_000_000_000, testTimestamp, MinLeaseFee)
	require.NoError(t, err)

	b, err := tx.Serialize()
	require.NoError(t, err)
	assert.Equal(t,
		"03055492986ab45860c76d02a9f4af5a6bb0547fd6442de88854ff00000002540be4000000000000989680006416db4b974c9f7600",
		hex.EncodeToString(b),
	)
}

func TestLeaseCancelSerialize(t *testing.T) {
	leaseID := "US517G5965aydkZ46HS38QLi7UQiSojurfbQfKCELFx"
	tx, err := NewLeaseCancelTx(leaseID, testTimestamp, MinLeaseCancelFee)
	require.NoError(t, err)

	b, err := tx.Serialize()
	require.NoError(t, err)
	require.Len(t, b, 1+8+2+8+32)
	assert.Equal(t, byte(TxTypeLeaseCancel), b[0])
	// The decoded lease id trails the fixed header.
	for _, v := range b[19:] {
		assert.Equal(t, byte(0x07), v)
	}
}

func TestLeaseCancelValidation(t *testing.T) {
	_, err := NewLeaseCancelTx("0OIl", testTimestamp, MinLeaseCancelFee)
	assert.True(t, IsValidationError(err))

	_, err = NewLeaseCancelTx("", testTimestamp, MinLeaseCancelFee)
	assert.True(t, IsValidationError(err))

	_, err = NewLeaseCancelTx("Cn8eVZg", testTimestamp, 0)
	assert.True(t, IsValidationError(err))
}

func TestRegisterContractSerializeLayout(t *testing.T) {
	meta := []byte{0xde, 0xad, 0xbe, 0xef}
	initData := []byte{0x00, 0x01, 0x02}
	tx, err := NewRegisterContractTx(meta, initData, "token", testTimestamp, MinRegisterContractFee)
	require.NoError(t, err)

	b, err := tx.Serialize()
	require.NoError(t, err)

	assert.Equal(t, byte(TxTypeRegisterContract), b[0])
	assert.Equal(t, []byte{0x00, 0x04}, b[1:3])
	assert.Equal(t, meta, b[3:7])
	assert.Equal(t, []byte{0x00, 0x03}, b[7:9])
	assert.Equal(t, initData, b[9:12])
	assert.Equal(t, []byte{0x00, 0x05}, b[12:14])
	assert.Equal(t, []byte("token"), b[14:19])
	assert.Len(t, b, 19+8+2+8)
}

func TestRegisterContractValidation(t *testing.T) {
	_, err := NewRegisterContractTx(nil, nil, "", testTimestamp, MinRegisterContractFee)
	assert.True(t, IsValidationError(err))

	_, err = NewRegisterContractTx([]byte{1}, nil, "", testTimestamp, MinRegisterContractFee-1)
	assert.True(t, IsValidationError(err))
}

func TestExecuteContractSerializeLayout(t *testing.T) {
	ctrtID, err := ParseContractID("CF9Nd9wvQ8qVsGk8jYHbj6sf8TK7MJ2GYgt")
	require.NoError(t, err)

	funcData := []byte{0x00, 0x01, 0x03, 0, 0, 0, 0, 0, 0, 0, 0x32}
	tx, err := NewExecuteContractTx(ctrtID, 1, funcData, nil, testTimestamp, MinExecuteContractFee)
	require.NoError(t, err)

	b, err := tx.Serialize()
	require.NoError(t, err)

	assert.Equal(t, byte(TxTypeExecuteContract), b[0])
	assert.Equal(t, ctrtID[:], b[1:27])
	assert.Equal(t, []byte{0x00, 0x01}, b[27:29])
	assert.Equal(t, []byte{0x00, 0x0b}, b[29:31])
	assert.Equal(t, funcData, b[31:42])
	assert.Equal(t, []byte{0x00, 0x00}, b[42:44])
	assert.Len(t, b, 44+8+2+8)
}

func TestExecuteContractFeeValidation(t *testing.T) {
	var ctrtID ContractID
	_, err := NewExecuteContractTx(ctrtID, 0, nil, nil, testTimestamp, MinPaymentFee)
	assert.True(t, IsValidationError(err))
}

func TestDBPutSerializeLayout(t *testing.T) {
	data, err := NewDBPutByteArray([]byte("value"))
	require.NoError(t, err)

	tx, err := NewDBPutTx("key1", data, testTimestamp, MinDBPutFee)
	require.NoError(t, err)

	b, err := tx.Serialize()
	require.NoError(t, err)

	assert.Equal(t, byte(TxTypeDBPut), b[0])
	assert.Equal(t, []byte{0x00, 0x04}, b[1:3])
	assert.Equal(t, []byte("key1"), b[3:7])
	// Data frame: length covers the type byte plus the value.
	assert.Equal(t, []byte{0x00, 0x06}, b[7:9])
	assert.Equal(t, byte(DBPutByteArray), b[9])
	assert.Equal(t, []byte("value"), b[10:15])
	assert.Len(t, b, 15+8+2+8)
}

func TestDBPutValidation(t *testing.T) {
	data, err := NewDBPutByteArray(nil)
	require.NoError(t, err)

	_, err = NewDBPutTx("", data, testTimestamp, MinDBPutFee)
	assert.True(t, IsValidationError(err))

	_, err = NewDBPutTx("key", data, testTimestamp, MinDBPutFee-1)
	assert.True(t, IsValidationError(err))
}

func TestAttachmentTooLong(t *testing.T) {
	tx, err := NewPaymentTx(testRecipient(t), 1, make([]byte, 70_000), testTimestamp, MinPaymentFee)
	require.NoError(t, err)

	_, err = tx.Serialize()
	assert.True(t, IsEncodingError(err))
}

func TestTimestampBounds(t *testing.T) {
	_, err := NewTimestamp(0)
	assert.True(t, IsValidationError(err))

	_, err = NewTimestamp(1_000_000_000)
	assert.True(t, IsValidationError(err))

	ts, err := NewTimestamp(1_000_000_001)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_001), ts.UnixNano())

	assert.Greater(t, Now().UnixNano(), int64(1_000_000_000))
}
