package vsys

import (
	"fmt"

	"github.com/vsyslabs/govsys/internal/codec"
)

// ChainID is the single-byte network identifier embedded in every address.
type ChainID byte

const (
	// MainNet is the production network.
	MainNet ChainID = 'M'
	// TestNet is the public test network.
	TestNet ChainID = 'T'
)

// Valid reports whether c names a known network.
func (c ChainID) Valid() bool {
	return c == MainNet || c == TestNet
}

func (c ChainID) String() string {
	return string(rune(c))
}

const (
	// AddrVersion is the version byte every address starts with.
	AddrVersion = 0x05

	addrPubKeyHashLen = 20

	// AddressLen is the byte length of a decoded address:
	// version + chain id + 20-byte public key hash + 4-byte checksum.
	AddressLen = 1 + 1 + addrPubKeyHashLen + codec.ChecksumLen
)

// Address is a decoded 26-byte account address.
type Address [AddressLen]byte

// BuildAddress derives the address of pub on the given chain.
func BuildAddress(pub PublicKey, chain ChainID) (Address, error) {
	if !chain.Valid() {
		return Address{}, &ValidationError{Field: "chain id", Reason: fmt.Sprintf("unknown chain id %q", chain.String())}
	}
	var a Address
	a[0] = AddrVersion
	a[1] = byte(chain)
	copy(a[2:2+addrPubKeyHashLen], codec.SecureHash(pub[:])[:addrPubKeyHashLen])
	copy(a[2+addrPubKeyHashLen:], codec.Checksum(a[:2+addrPubKeyHashLen]))
	return a, nil
}

// ParseAddress decodes a Base58 address string and verifies its version,
// chain id and checksum. Any failure is a ValidationError; nothing is
// accepted from external input without the checksum holding.
func ParseAddress(s string) (Address, error) {
	b, err := codec.Base58Decode(s)
	if err != nil {
		return Address{}, &ValidationError{Field: "address", Reason: err.Error()}
	}
	return AddressFromBytes(b)
}

// AddressFromBytes validates a decoded address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, &ValidationError{Field: "address", Reason: fmt.Sprintf("must be %d bytes after base58 decode, got %d", AddressLen, len(b))}
	}
	copy(a[:], b)
	if a[0] != AddrVersion {
		return Address{}, &ValidationError{Field: "address", Reason: fmt.Sprintf("unsupported version byte %#x", a[0])}
	}
	if !ChainID(a[1]).Valid() {
		return Address{}, &ValidationError{Field: "address", Reason: fmt.Sprintf("unknown chain id %q", string(rune(a[1])))}
	}
	payload, sum := a[:AddressLen-codec.ChecksumLen], a[AddressLen-codec.ChecksumLen:]
	want := codec.Checksum(payload)
	for i := range sum {
		if sum[i] != want[i] {
			return Address{}, &ValidationError{Field: "address", Reason: "checksum mismatch"}
		}
	}
	return a, nil
}

// String returns the Base58 form of the address.
func (a Address) String() string {
	return codec.Base58Encode(a[:])
}

// ChainID returns the network byte embedded in the address.
func (a Address) ChainID() ChainID {
	return ChainID(a[1])
}

// PubKeyHash returns the 20-byte public key hash part.
func (a Address) PubKeyHash() []byte {
	out := make([]byte, addrPubKeyHashLen)
	copy(out, a[2:2+addrPubKeyHashLen])
	return out
}

// MustOn fails with a ValidationError when the address does not belong to
// the given chain.
func (a Address) MustOn(chain ChainID) error {
	if a.ChainID() != chain {
		return &ValidationError{
			Field:  "address",
			Reason: fmt.Sprintf("on chain %q, expected chain %q", a.ChainID().String(), chain.String()),
		}
	}
	return nil
}

const (
	// ContractIDLen is the byte length of a decoded contract id.
	ContractIDLen = 26
	// TokenIDLen is the byte length of a decoded token id.
	TokenIDLen = 30
)

// ContractID is a decoded 26-byte contract account id.
type ContractID [ContractIDLen]byte

// ParseContractID decodes a Base58 contract id and checks its length.
func ParseContractID(s string) (ContractID, error) {
	var id ContractID
	b, err := codec.Base58Decode(s)
	if err != nil {
		return id, &ValidationError{Field: "contract id", Reason: err.Error()}
	}
	if len(b) != ContractIDLen {
		return id, &ValidationError{Field: "contract id", Reason: fmt.Sprintf("must be %d bytes after base58 decode, got %d", ContractIDLen, len(b))}
	}
	copy(id[:], b)
	return id, nil
}

// String returns the Base58 form of the contract id.
func (id ContractID) String() string {
	return codec.Base58Encode(id[:])
}

// tokenAddrVer is the version byte of derived token ids.
const tokenAddrVer = 0x84

// TokenID derives the id of the contract's token at the given index. Token
// contracts issue a single token at index 0.
func (id ContractID) TokenID(idx uint32) TokenID {
	body := make([]byte, 0, TokenIDLen-codec.ChecksumLen)
	body = append(body, tokenAddrVer)
	body = append(body, id[1:ContractIDLen-codec.ChecksumLen]...)
	body = append(body, codec.PutUint32(idx)...)

	var t TokenID
	copy(t[:], body)
	copy(t[len(body):], codec.Checksum(body))
	return t
}

// TokenID is a decoded 30-byte token id.
type TokenID [TokenIDLen]byte

// ParseTokenID decodes a Base58 token id and checks its length.
func ParseTokenID(s string) (TokenID, error) {
	var id TokenID
	b, err := codec.Base58Decode(s)
	if err != nil {
		return id, &ValidationError{Field: "token id", Reason: err.Error()}
	}
	if len(b) != TokenIDLen {
		return id, &ValidationError{Field: "token id", Reason: fmt.Sprintf("must be %d bytes after base58 decode, got %d", TokenIDLen, len(b))}
	}
	copy(id[:], b)
	return id, nil
}

// String returns the Base58 form of the token id.
func (id TokenID) String() string {
	return codec.Base58Encode(id[:])
}
