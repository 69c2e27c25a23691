package vsys

import (
	"fmt"
	"time"

	"github.com/vsyslabs/govsys/internal/codec"
)

// TxType is the one-byte transaction kind tag leading every serialization.
type TxType uint8

// Transaction type tags assigned by the network.
const (
	TxTypeGenesis          TxType = 1
	TxTypePayment          TxType = 2
	TxTypeLease            TxType = 3
	TxTypeLeaseCancel      TxType = 4
	TxTypeMinting          TxType = 5
	TxTypeContendSlots     TxType = 6
	TxTypeReleaseSlots     TxType = 7
	TxTypeRegisterContract TxType = 8
	TxTypeExecuteContract  TxType = 9
	TxTypeDBPut            TxType = 10
)

const (
	// Unit is the number of smallest units in one coin.
	Unit int64 = 100_000_000

	// FeeScale is fixed by the network for every transaction.
	FeeScale uint16 = 100

	// timestampScale is the smallest acceptable timestamp: one second past
	// the epoch, expressed in the chain's nanosecond convention.
	timestampScale int64 = 1_000_000_000
)

// Minimum fees per transaction kind, in smallest units.
const (
	MinPaymentFee          = Unit / 10
	MinLeaseFee            = Unit / 10
	MinLeaseCancelFee      = Unit / 10
	MinExecuteContractFee  = 3 * Unit / 10
	MinRegisterContractFee = 100 * Unit
	MinDBPutFee            = Unit
	MinContendSlotsFee     = 50_000 * Unit
)

// Timestamp is a chain timestamp: nanoseconds since the Unix epoch.
type Timestamp int64

// NewTimestamp validates a nanosecond timestamp.
func NewTimestamp(ns int64) (Timestamp, error) {
	if ns <= timestampScale {
		return 0, &ValidationError{Field: "timestamp", Reason: fmt.Sprintf("must be greater than %d, got %d", timestampScale, ns)}
	}
	return Timestamp(ns), nil
}

// Now returns the current time as a chain timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UnixNano())
}

// UnixNano returns the timestamp as an int64 nanosecond count.
func (t Timestamp) UnixNano() int64 {
	return int64(t)
}

// Transaction is one unsigned transaction of any kind. Serialize returns the
// canonical pre-signature byte layout; it is a pure function of the
// transaction's attributes, so the same value always yields the same bytes.
type Transaction interface {
	TxType() TxType
	Serialize() ([]byte, error)

	// jsonFields returns the kind-specific broadcast JSON fields.
	jsonFields() map[string]any

	txFee() int64
	txTimestamp() Timestamp
}

func validateFee(fee, min int64) error {
	if fee < min {
		return &ValidationError{Field: "fee", Reason: fmt.Sprintf("must be at least %d, got %d", min, fee)}
	}
	return nil
}

func validateAmount(amount int64) error {
	if amount < 0 {
		return &ValidationError{Field: "amount", Reason: fmt.Sprintf("must be non-negative, got %d", amount)}
	}
	return nil
}

func validateTimestamp(ts Timestamp) error {
	_, err := NewTimestamp(int64(ts))
	return err
}

func packAttachment(field string, b []byte) ([]byte, error) {
	out, err := codec.PackPrefixed(b)
	if err != nil {
		return nil, &EncodingError{Field: field, Reason: err.Error()}
	}
	return out, nil
}

// PaymentTx moves coins to a recipient, optionally carrying an opaque
// attachment.
type PaymentTx struct {
	Recipient  Address
	Amount     int64
	Fee        int64
	Timestamp  Timestamp
	Attachment []byte
}

// NewPaymentTx validates and builds a payment transaction.
func NewPaymentTx(recipient Address, amount int64, attachment []byte, ts Timestamp, fee int64) (*PaymentTx, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validateFee(fee, MinPaymentFee); err != nil {
		return nil, err
	}
	if err := validateTimestamp(ts); err != nil {
		return nil, err
	}
	return &PaymentTx{Recipient: recipient, Amount: amount, Attachment: attachment, Timestamp: ts, Fee: fee}, nil
}

// TxType returns TxTypePayment.
func (tx *PaymentTx) TxType() TxType { return TxTypePayment }

// Serialize renders the canonical byte layout:
// type | timestamp | amount | fee | fee scale | recipient | attachment.
func (tx *PaymentTx) Serialize() ([]byte, error) {
	att, err := packAttachment("attachment", tx.Attachment)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, 1+8+8+8+2+AddressLen+len(att))
	b = append(b, codec.PutUint8(byte(tx.TxType()))...)
	b = append(b, codec.PutUint64(uint64(tx.Timestamp))...)
	b = append(b, codec.PutUint64(uint64(tx.Amount))...)
	b = append(b, codec.PutUint64(uint64(tx.Fee))...)
	b = append(b, codec.PutUint16(FeeScale)...)
	b = append(b, tx.Recipient[:]...)
	b = append(b, att...)
	return b, nil
}

func (tx *PaymentTx) txFee() int64           { return tx.Fee }
func (tx *PaymentTx) txTimestamp() Timestamp { return tx.Timestamp }

func (tx *PaymentTx) jsonFields() map[string]any {
	return map[string]any{
		"recipient":  tx.Recipient.String(),
		"amount":     tx.Amount,
		"attachment": codec.Base58Encode(tx.Attachment),
	}
}

// LeaseTx leases coins to a supernode address.
type LeaseTx struct {
	Recipient Address
	Amount    int64
	Fee       int64
	Timestamp Timestamp
}

// NewLeaseTx validates and builds a lease transaction.
func NewLeaseTx(recipient Address, amount int64, ts Timestamp, fee int64) (*LeaseTx, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validateFee(fee, MinLeaseFee); err != nil {
		return nil, err
	}
	if err := validateTimestamp(ts); err != nil {
		return nil, err
	}
	return &LeaseTx{Recipient: recipient, Amount: amount, Timestamp: ts, Fee: fee}, nil
}

// TxType returns TxTypeLease.
func (tx *LeaseTx) TxType() TxType { return TxTypeLease }

// Serialize renders: type | recipient | amount | fee | fee scale | timestamp.
func (tx *LeaseTx) Serialize() ([]byte, error) {
	b := make([]byte, 0, 1+AddressLen+8+8+2+8)
	b = append(b, codec.PutUint8(byte(tx.TxType()))...)
	b = append(b, tx.Recipient[:]...)
	b = append(b, codec.PutUint64(uint64(tx.Amount))...)
	b = append(b, codec.PutUint64(uint64(tx.Fee))...)
	b = append(b, codec.PutUint16(FeeScale)...)
	b = append(b, codec.PutUint64(uint64(tx.Timestamp))...)
	return b, nil
}

func (tx *LeaseTx) txFee() int64           { return tx.Fee }
func (tx *LeaseTx) txTimestamp() Timestamp { return tx.Timestamp }

func (tx *LeaseTx) jsonFields() map[string]any {
	return map[string]any{
		"recipient": tx.Recipient.String(),
		"amount":    tx.Amount,
	}
}

// LeaseCancelTx cancels an active lease by its transaction id.
type LeaseCancelTx struct {
	LeaseTxID string
	Fee       int64
	Timestamp Timestamp

	leaseTxIDBytes []byte
}

// NewLeaseCancelTx validates and builds a lease cancel transaction.
// leaseTxID must be the Base58 id of the lease being cancelled.
func NewLeaseCancelTx(leaseTxID string, ts Timestamp, fee int64) (*LeaseCancelTx, error) {
	idBytes, err := codec.Base58Decode(leaseTxID)
	if err != nil {
		return nil, &ValidationError{Field: "lease tx id", Reason: err.Error()}
	}
	if len(idBytes) == 0 {
		return nil, &ValidationError{Field: "lease tx id", Reason: "must not be empty"}
	}
	if err := validateFee(fee, MinLeaseCancelFee); err != nil {
		return nil, err
	}
	if err := validateTimestamp(ts); err != nil {
		return nil, err
	}
	return &LeaseCancelTx{LeaseTxID: leaseTxID, Timestamp: ts, Fee: fee, leaseTxIDBytes: idBytes}, nil
}

// TxType returns TxTypeLeaseCancel.
func (tx *LeaseCancelTx) TxType() TxType { return TxTypeLeaseCancel }

// Serialize renders: type | fee | fee scale | timestamp | lease tx id.
func (tx *LeaseCancelTx) Serialize() ([]byte, error) {
	idBytes := tx.leaseTxIDBytes
	if idBytes == nil {
		var err error
		idBytes, err = codec.Base58Decode(tx.LeaseTxID)
		if err != nil {
			return nil, &ValidationError{Field: "lease tx id", Reason: err.Error()}
		}
	}
	b := make([]byte, 0, 1+8+2+8+len(idBytes))
	b = append(b, codec.PutUint8(byte(tx.TxType()))...)
	b = append(b, codec.PutUint64(uint64(tx.Fee))...)
	b = append(b, codec.PutUint16(FeeScale)...)
	b = append(b, codec.PutUint64(uint64(tx.Timestamp))...)
	b = append(b, idBytes...)
	return b, nil
}

func (tx *LeaseCancelTx) txFee() int64           { return tx.Fee }
func (tx *LeaseCancelTx) txTimestamp() Timestamp { return tx.Timestamp }

func (tx *LeaseCancelTx) jsonFields() map[string]any {
	return map[string]any{
		"txId": tx.LeaseTxID,
	}
}

// RegisterContractTx registers a new contract instance on the chain.
// Meta is the serialized contract metadata envelope (bytecode) and InitData
// the serialized data stack passed to the contract's init trigger.
type RegisterContractTx struct {
	Meta        []byte
	InitData    []byte
	Description string
	Fee         int64
	Timestamp   Timestamp
}

// NewRegisterContractTx validates and builds a contract registration.
func NewRegisterContractTx(meta, initData []byte, description string, ts Timestamp, fee int64) (*RegisterContractTx, error) {
	if len(meta) == 0 {
		return nil, &ValidationError{Field: "contract meta", Reason: "must not be empty"}
	}
	if err := validateFee(fee, MinRegisterContractFee); err != nil {
		return nil, err
	}
	if err := validateTimestamp(ts); err != nil {
		return nil, err
	}
	return &RegisterContractTx{Meta: meta, InitData: initData, Description: description, Timestamp: ts, Fee: fee}, nil
}

// TxType returns TxTypeRegisterContract.
func (tx *RegisterContractTx) TxType() TxType { return TxTypeRegisterContract }

// Serialize renders: type | meta | init data | description | fee |
// fee scale | timestamp, with each variable field length-prefixed.
func (tx *RegisterContractTx) Serialize() ([]byte, error) {
	meta, err := packAttachment("contract meta", tx.Meta)
	if err != nil {
		return nil, err
	}
	initData, err := packAttachment("init data", tx.InitData)
	if err != nil {
		return nil, err
	}
	desc, err := packAttachment("description", []byte(tx.Description))
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, 1+len(meta)+len(initData)+len(desc)+8+2+8)
	b = append(b, codec.PutUint8(byte(tx.TxType()))...)
	b = append(b, meta...)
	b = append(b, initData...)
	b = append(b, desc...)
	b = append(b, codec.PutUint64(uint64(tx.Fee))...)
	b = append(b, codec.PutUint16(FeeScale)...)
	b = append(b, codec.PutUint64(uint64(tx.Timestamp))...)
	return b, nil
}

func (tx *RegisterContractTx) txFee() int64           { return tx.Fee }
func (tx *RegisterContractTx) txTimestamp() Timestamp { return tx.Timestamp }

func (tx *RegisterContractTx) jsonFields() map[string]any {
	return map[string]any{
		"contract":    codec.Base58Encode(tx.Meta),
		"initData":    codec.Base58Encode(tx.InitData),
		"description": tx.Description,
	}
}

// ExecuteContractTx invokes one function of a registered contract.
type ExecuteContractTx struct {
	ContractID ContractID
	FuncIdx    uint16
	FuncData   []byte
	Attachment []byte
	Fee        int64
	Timestamp  Timestamp
}

// NewExecuteContractTx validates and builds a contract execution.
// funcData must be an encoded data stack (see EncodeFuncData in the
// contract package).
func NewExecuteContractTx(ctrtID ContractID, funcIdx uint16, funcData, attachment []byte, ts Timestamp, fee int64) (*ExecuteContractTx, error) {
	if err := validateFee(fee, MinExecuteContractFee); err != nil {
		return nil, err
	}
	if err := validateTimestamp(ts); err != nil {
		return nil, err
	}
	return &ExecuteContractTx{
		ContractID: ctrtID,
		FuncIdx:    funcIdx,
		FuncData:   funcData,
		Attachment: attachment,
		Timestamp:  ts,
		Fee:        fee,
	}, nil
}

// TxType returns TxTypeExecuteContract.
func (tx *ExecuteContractTx) TxType() TxType { return TxTypeExecuteContract }

// Serialize renders: type | contract id | function index | function data |
// attachment | fee | fee scale | timestamp.
func (tx *ExecuteContractTx) Serialize() ([]byte, error) {
	funcData, err := packAttachment("function data", tx.FuncData)
	if err != nil {
		return nil, err
	}
	att, err := packAttachment("attachment", tx.Attachment)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, 1+ContractIDLen+2+len(funcData)+len(att)+8+2+8)
	b = append(b, codec.PutUint8(byte(tx.TxType()))...)
	b = append(b, tx.ContractID[:]...)
	b = append(b, codec.PutUint16(tx.FuncIdx)...)
	b = append(b, funcData...)
	b = append(b, att...)
	b = append(b, codec.PutUint64(uint64(tx.Fee))...)
	b = append(b, codec.PutUint16(FeeScale)...)
	b = append(b, codec.PutUint64(uint64(tx.Timestamp))...)
	return b, nil
}

func (tx *ExecuteContractTx) txFee() int64           { return tx.Fee }
func (tx *ExecuteContractTx) txTimestamp() Timestamp { return tx.Timestamp }

func (tx *ExecuteContractTx) jsonFields() map[string]any {
	return map[string]any{
		"contractId":    tx.ContractID.String(),
		"functionIndex": tx.FuncIdx,
		"functionData":  codec.Base58Encode(tx.FuncData),
		"attachment":    codec.Base58Encode(tx.Attachment),
	}
}

// DBPutTx stores a typed value under a key in the account's database.
type DBPutTx struct {
	Key       string
	Data      DBPutData
	Fee       int64
	Timestamp Timestamp
}

// NewDBPutTx validates and builds a database put transaction.
func NewDBPutTx(key string, data DBPutData, ts Timestamp, fee int64) (*DBPutTx, error) {
	if key == "" {
		return nil, &ValidationError{Field: "db key", Reason: "must not be empty"}
	}
	if err := validateFee(fee, MinDBPutFee); err != nil {
		return nil, err
	}
	if err := validateTimestamp(ts); err != nil {
		return nil, err
	}
	return &DBPutTx{Key: key, Data: data, Timestamp: ts, Fee: fee}, nil
}

// TxType returns TxTypeDBPut.
func (tx *DBPutTx) TxType() TxType { return TxTypeDBPut }

// Serialize renders: type | key | data entry | fee | fee scale | timestamp.
func (tx *DBPutTx) Serialize() ([]byte, error) {
	key, err := packAttachment("db key", []byte(tx.Key))
	if err != nil {
		return nil, err
	}
	data, err := tx.Data.Serialize()
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, 1+len(key)+len(data)+8+2+8)
	b = append(b, codec.PutUint8(byte(tx.TxType()))...)
	b = append(b, key...)
	b = append(b, data...)
	b = append(b, codec.PutUint64(uint64(tx.Fee))...)
	b = append(b, codec.PutUint16(FeeScale)...)
	b = append(b, codec.PutUint64(uint64(tx.Timestamp))...)
	return b, nil
}

func (tx *DBPutTx) txFee() int64           { return tx.Fee }
func (tx *DBPutTx) txTimestamp() Timestamp { return tx.Timestamp }

func (tx *DBPutTx) jsonFields() map[string]any {
	return map[string]any{
		"dbKey":    tx.Key,
		"dataType": tx.Data.TypeName(),
		"data":     tx.Data.Value(),
	}
}
