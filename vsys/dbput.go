package vsys

import (
	"fmt"

	"github.com/vsyslabs/govsys/internal/codec"
)

// DBPutDataType is the one-byte tag of a database entry's value type.
type DBPutDataType uint8

// Database entry value types. Only ByteArray is live on the network today.
const (
	DBPutByteArray DBPutDataType = 1
)

// DBPutData is one typed database value for a DBPutTx.
type DBPutData struct {
	typ  DBPutDataType
	data []byte
}

// NewDBPutByteArray wraps raw bytes as a ByteArray database value.
func NewDBPutByteArray(b []byte) (DBPutData, error) {
	if len(b)+1 > codec.MaxPrefixedLen {
		return DBPutData{}, &ValidationError{Field: "db data", Reason: fmt.Sprintf("exceeds %d bytes", codec.MaxPrefixedLen-1)}
	}
	return DBPutData{typ: DBPutByteArray, data: append([]byte(nil), b...)}, nil
}

// TypeName returns the value type's JSON name.
func (d DBPutData) TypeName() string {
	switch d.typ {
	case DBPutByteArray:
		return "ByteArray"
	default:
		return fmt.Sprintf("DBPutDataType(%d)", uint8(d.typ))
	}
}

// Value returns the value rendered for broadcast JSON.
func (d DBPutData) Value() string {
	return string(d.data)
}

// Bytes returns a copy of the raw value bytes.
func (d DBPutData) Bytes() []byte {
	return append([]byte(nil), d.data...)
}

// Serialize renders the wire form: a 2-byte length covering the type byte
// plus the value, then the type byte, then the value.
func (d DBPutData) Serialize() ([]byte, error) {
	body := make([]byte, 0, 1+len(d.data))
	body = append(body, byte(d.typ))
	body = append(body, d.data...)
	out, err := codec.PackPrefixed(body)
	if err != nil {
		return nil, &EncodingError{Field: "db data", Reason: err.Error()}
	}
	return out, nil
}
