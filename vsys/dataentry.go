package vsys

import (
	"fmt"
	"math"

	"github.com/vsyslabs/govsys/internal/codec"
)

// EntryKind is the one-byte tag identifying a data entry's type on the wire.
type EntryKind uint8

// Data entry kinds understood by contract functions.
const (
	EntryPubKey    EntryKind = 1
	EntryAddress   EntryKind = 2
	EntryAmount    EntryKind = 3
	EntryInt32     EntryKind = 4
	EntryString    EntryKind = 5
	EntryCtrtAcnt  EntryKind = 6
	EntryAccount   EntryKind = 7
	EntryTokenID   EntryKind = 8
	EntryTimestamp EntryKind = 9
	EntryBool      EntryKind = 10
	EntryBytes     EntryKind = 11
	EntryBalance   EntryKind = 12
)

func (k EntryKind) String() string {
	switch k {
	case EntryPubKey:
		return "PublicKey"
	case EntryAddress:
		return "Address"
	case EntryAmount:
		return "Amount"
	case EntryInt32:
		return "Int32"
	case EntryString:
		return "String"
	case EntryCtrtAcnt:
		return "ContractAccount"
	case EntryAccount:
		return "Account"
	case EntryTokenID:
		return "TokenId"
	case EntryTimestamp:
		return "Timestamp"
	case EntryBool:
		return "Boolean"
	case EntryBytes:
		return "Bytes"
	case EntryBalance:
		return "Balance"
	default:
		return fmt.Sprintf("EntryKind(%d)", uint8(k))
	}
}

// entryWidth maps fixed-width kinds to their value length in bytes;
// variable-length kinds map to -1.
var entryWidth = map[EntryKind]int{
	EntryPubKey:    PublicKeyLen,
	EntryAddress:   AddressLen,
	EntryAmount:    8,
	EntryInt32:     4,
	EntryString:    -1,
	EntryCtrtAcnt:  ContractIDLen,
	EntryAccount:   AddressLen,
	EntryTokenID:   TokenIDLen,
	EntryTimestamp: 8,
	EntryBool:      1,
	EntryBytes:     -1,
	EntryBalance:   8,
}

// DataEntry is one typed value in a contract function's data stack. Entries
// are immutable once built; the constructors below validate their input.
type DataEntry struct {
	kind EntryKind
	data []byte
}

// Kind returns the entry's type tag.
func (e DataEntry) Kind() EntryKind { return e.kind }

// DataBytes returns the entry's value bytes without the type tag or any
// length prefix.
func (e DataEntry) DataBytes() []byte {
	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out
}

// Serialize renders the entry's wire form: the kind byte followed by the
// value, length-prefixed for variable-width kinds.
func (e DataEntry) Serialize() ([]byte, error) {
	if entryWidth[e.kind] >= 0 {
		out := make([]byte, 0, 1+len(e.data))
		out = append(out, byte(e.kind))
		return append(out, e.data...), nil
	}
	packed, err := codec.PackPrefixed(e.data)
	if err != nil {
		return nil, &EncodingError{Field: e.kind.String() + " entry", Reason: err.Error()}
	}
	out := make([]byte, 0, 1+len(packed))
	out = append(out, byte(e.kind))
	return append(out, packed...), nil
}

// NewPublicKeyEntry wraps a public key.
func NewPublicKeyEntry(pub PublicKey) DataEntry {
	return DataEntry{kind: EntryPubKey, data: append([]byte(nil), pub[:]...)}
}

// NewAddressEntry wraps an account address.
func NewAddressEntry(addr Address) DataEntry {
	return DataEntry{kind: EntryAddress, data: append([]byte(nil), addr[:]...)}
}

// NewAmountEntry wraps a non-negative token amount.
func NewAmountEntry(amount int64) (DataEntry, error) {
	if amount < 0 {
		return DataEntry{}, &ValidationError{Field: "amount entry", Reason: fmt.Sprintf("must be non-negative, got %d", amount)}
	}
	return DataEntry{kind: EntryAmount, data: codec.PutUint64(uint64(amount))}, nil
}

// NewInt32Entry wraps a non-negative 32-bit integer.
func NewInt32Entry(v int32) (DataEntry, error) {
	if v < 0 {
		return DataEntry{}, &ValidationError{Field: "int32 entry", Reason: fmt.Sprintf("must be non-negative, got %d", v)}
	}
	return DataEntry{kind: EntryInt32, data: codec.PutUint32(uint32(v))}, nil
}

// NewStringEntry wraps a UTF-8 string.
func NewStringEntry(s string) (DataEntry, error) {
	if len(s) > codec.MaxPrefixedLen {
		return DataEntry{}, &ValidationError{Field: "string entry", Reason: fmt.Sprintf("exceeds %d bytes", codec.MaxPrefixedLen)}
	}
	return DataEntry{kind: EntryString, data: []byte(s)}, nil
}

// NewContractAccountEntry wraps a contract id.
func NewContractAccountEntry(id ContractID) DataEntry {
	return DataEntry{kind: EntryCtrtAcnt, data: append([]byte(nil), id[:]...)}
}

// NewAccountEntry wraps an account address tagged as a generic account.
func NewAccountEntry(addr Address) DataEntry {
	return DataEntry{kind: EntryAccount, data: append([]byte(nil), addr[:]...)}
}

// NewTokenIDEntry wraps a token id.
func NewTokenIDEntry(id TokenID) DataEntry {
	return DataEntry{kind: EntryTokenID, data: append([]byte(nil), id[:]...)}
}

// NewTimestampEntry wraps a chain timestamp.
func NewTimestampEntry(ts Timestamp) (DataEntry, error) {
	if err := validateTimestamp(ts); err != nil {
		return DataEntry{}, err
	}
	return DataEntry{kind: EntryTimestamp, data: codec.PutUint64(uint64(ts))}, nil
}

// NewBoolEntry wraps a boolean.
func NewBoolEntry(v bool) DataEntry {
	b := byte(0)
	if v {
		b = 1
	}
	return DataEntry{kind: EntryBool, data: []byte{b}}
}

// NewBytesEntry wraps an opaque byte string.
func NewBytesEntry(b []byte) (DataEntry, error) {
	if len(b) > codec.MaxPrefixedLen {
		return DataEntry{}, &ValidationError{Field: "bytes entry", Reason: fmt.Sprintf("exceeds %d bytes", codec.MaxPrefixedLen)}
	}
	return DataEntry{kind: EntryBytes, data: append([]byte(nil), b...)}, nil
}

// NewBalanceEntry wraps a non-negative balance.
func NewBalanceEntry(v int64) (DataEntry, error) {
	if v < 0 {
		return DataEntry{}, &ValidationError{Field: "balance entry", Reason: fmt.Sprintf("must be non-negative, got %d", v)}
	}
	return DataEntry{kind: EntryBalance, data: codec.PutUint64(uint64(v))}, nil
}

// DataStack is the ordered list of data entries passed to a contract
// function.
type DataStack []DataEntry

// Serialize renders the stack: a 2-byte entry count followed by each entry's
// wire form in order.
func (s DataStack) Serialize() ([]byte, error) {
	if len(s) > math.MaxUint16 {
		return nil, &EncodingError{Field: "data stack", Reason: fmt.Sprintf("%d entries exceed 2-byte count", len(s))}
	}
	out := codec.PutUint16(uint16(len(s)))
	for i, e := range s {
		b, err := e.Serialize()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize data entry %d: %w", i, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// ParseDataStack decodes a serialized data stack back into typed entries.
// The whole input must be consumed; trailing bytes are an error.
func ParseDataStack(b []byte) (DataStack, error) {
	count, err := codec.Uint16(b)
	if err != nil {
		return nil, &ValidationError{Field: "data stack", Reason: err.Error()}
	}
	rest := b[2:]
	stack := make(DataStack, 0, count)
	for i := 0; i < int(count); i++ {
		if len(rest) == 0 {
			return nil, &ValidationError{Field: "data stack", Reason: fmt.Sprintf("truncated at entry %d", i)}
		}
		kind := EntryKind(rest[0])
		width, ok := entryWidth[kind]
		if !ok {
			return nil, &ValidationError{Field: "data stack", Reason: fmt.Sprintf("unknown entry kind %d at entry %d", rest[0], i)}
		}
		rest = rest[1:]
		var val []byte
		if width >= 0 {
			if len(rest) < width {
				return nil, &ValidationError{Field: "data stack", Reason: fmt.Sprintf("truncated %s value at entry %d", kind, i)}
			}
			val, rest = rest[:width], rest[width:]
		} else {
			val, rest, err = codec.UnpackPrefixed(rest)
			if err != nil {
				return nil, &ValidationError{Field: "data stack", Reason: fmt.Sprintf("bad %s value at entry %d: %v", kind, i, err)}
			}
		}
		stack = append(stack, DataEntry{kind: kind, data: append([]byte(nil), val...)})
	}
	if len(rest) != 0 {
		return nil, &ValidationError{Field: "data stack", Reason: fmt.Sprintf("%d trailing bytes after last entry", len(rest))}
	}
	return stack, nil
}
