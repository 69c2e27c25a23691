// Package contract encodes contract metadata and function invocations for
// the chain's contract engine.
package contract

import (
	"fmt"

	"github.com/vsyslabs/govsys/internal/codec"
	"github.com/vsyslabs/govsys/vsys"
)

const langCodeLen = 4

// Meta is a contract's metadata envelope: its language tag plus the
// bytecode sections the node stores at registration.
type Meta struct {
	LangCode    string
	LangVer     uint32
	Triggers    [][]byte
	Descriptors [][]byte
	StateVars   [][]byte
	StateMap    [][]byte
	Textual     [][]byte
}

// Serialize renders the metadata envelope: lang code, lang version, then the
// trigger/descriptor/state sections as length-framed lists, then the textual
// section without an outer length. StateMap is only present from language
// version 2 on.
func (m *Meta) Serialize() ([]byte, error) {
	if len(m.LangCode) != langCodeLen {
		return nil, &vsys.ValidationError{Field: "lang code", Reason: fmt.Sprintf("must be %d bytes, got %d", langCodeLen, len(m.LangCode))}
	}
	out := append([]byte(nil), m.LangCode...)
	out = append(out, codec.PutUint32(m.LangVer)...)

	for _, sec := range []struct {
		name  string
		items [][]byte
	}{
		{"triggers", m.Triggers},
		{"descriptors", m.Descriptors},
		{"state variables", m.StateVars},
	} {
		b, err := packBytesList(sec.items, true)
		if err != nil {
			return nil, &vsys.EncodingError{Field: sec.name, Reason: err.Error()}
		}
		out = append(out, b...)
	}

	if m.LangVer != 1 {
		b, err := packBytesList(m.StateMap, true)
		if err != nil {
			return nil, &vsys.EncodingError{Field: "state map", Reason: err.Error()}
		}
		out = append(out, b...)
	}

	b, err := packBytesList(m.Textual, false)
	if err != nil {
		return nil, &vsys.EncodingError{Field: "textual", Reason: err.Error()}
	}
	out = append(out, b...)
	return out, nil
}

// String returns the Base58 form of the serialized metadata, or an empty
// string if the metadata does not serialize.
func (m *Meta) String() string {
	b, err := m.Serialize()
	if err != nil {
		return ""
	}
	return codec.Base58Encode(b)
}

// ParseMetaBase58 decodes a Base58 metadata string as served by the node or
// shipped with a contract build.
func ParseMetaBase58(s string) (*Meta, error) {
	b, err := codec.Base58Decode(s)
	if err != nil {
		return nil, &vsys.ValidationError{Field: "contract meta", Reason: err.Error()}
	}
	return ParseMeta(b)
}

// ParseMeta decodes a serialized metadata envelope. The whole input must be
// consumed.
func ParseMeta(b []byte) (*Meta, error) {
	if len(b) < langCodeLen+4 {
		return nil, &vsys.ValidationError{Field: "contract meta", Reason: "too short for lang code and version"}
	}
	m := &Meta{LangCode: string(b[:langCodeLen])}
	ver, err := codec.Uint32(b[langCodeLen:])
	if err != nil {
		return nil, &vsys.ValidationError{Field: "contract meta", Reason: err.Error()}
	}
	m.LangVer = ver
	rest := b[langCodeLen+4:]

	for _, dst := range []*[][]byte{&m.Triggers, &m.Descriptors, &m.StateVars} {
		items, tail, err := unpackBytesList(rest, true)
		if err != nil {
			return nil, &vsys.ValidationError{Field: "contract meta", Reason: err.Error()}
		}
		*dst = items
		rest = tail
	}

	if m.LangVer != 1 {
		items, tail, err := unpackBytesList(rest, true)
		if err != nil {
			return nil, &vsys.ValidationError{Field: "contract meta", Reason: err.Error()}
		}
		m.StateMap = items
		rest = tail
	}

	items, tail, err := unpackBytesList(rest, false)
	if err != nil {
		return nil, &vsys.ValidationError{Field: "contract meta", Reason: err.Error()}
	}
	m.Textual = items
	if len(tail) != 0 {
		return nil, &vsys.ValidationError{Field: "contract meta", Reason: fmt.Sprintf("%d trailing bytes", len(tail))}
	}
	return m, nil
}

// packBytesList encodes items as a 2-byte count followed by length-prefixed
// items, optionally wrapped in an outer 2-byte length.
func packBytesList(items [][]byte, withOuterLen bool) ([]byte, error) {
	if len(items) > codec.MaxPrefixedLen {
		return nil, fmt.Errorf("%d items exceed 2-byte count", len(items))
	}
	body := codec.PutUint16(uint16(len(items)))
	for i, item := range items {
		b, err := codec.PackPrefixed(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		body = append(body, b...)
	}
	if !withOuterLen {
		return body, nil
	}
	return codec.PackPrefixed(body)
}

func unpackBytesList(b []byte, withOuterLen bool) (items [][]byte, rest []byte, err error) {
	body := b
	if withOuterLen {
		body, rest, err = codec.UnpackPrefixed(b)
		if err != nil {
			return nil, nil, err
		}
	}
	count, err := codec.Uint16(body)
	if err != nil {
		return nil, nil, err
	}
	body = body[2:]
	items = make([][]byte, 0, count)
	for i := 0; i < int(count); i++ {
		var item []byte
		item, body, err = codec.UnpackPrefixed(body)
		if err != nil {
			return nil, nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, append([]byte(nil), item...))
	}
	if !withOuterLen {
		// Without an outer length the list runs to wherever its items end.
		return items, body, nil
	}
	if len(body) != 0 {
		return nil, nil, fmt.Errorf("%d trailing bytes inside list", len(body))
	}
	return items, rest, nil
}
