package vsys

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Wallet is a seed phrase from which any number of accounts can be derived
// by nonce.
type Wallet struct {
	seed string
}

// NewWallet wraps an existing seed phrase.
func NewWallet(seed string) (*Wallet, error) {
	if strings.TrimSpace(seed) == "" {
		return nil, &KeyError{Reason: "seed must not be empty"}
	}
	return &Wallet{seed: seed}, nil
}

// GenerateWallet draws a fresh 15-word seed phrase from entropy (crypto/rand
// when entropy is nil).
func GenerateWallet(entropy io.Reader) (*Wallet, error) {
	seed, err := GenerateSeed(entropy)
	if err != nil {
		return nil, err
	}
	return &Wallet{seed: seed}, nil
}

// Seed returns the wallet's seed phrase.
func (w *Wallet) Seed() string {
	return w.seed
}

// Account derives the account at the given nonce on chain.
func (w *Wallet) Account(chain *Chain, nonce uint32) (*Account, error) {
	return NewAccount(chain, w.seed, nonce)
}

// seedWordCount words are drawn uniformly from the standard English word
// list. The phrase is not a checksummed mnemonic; every combination is valid.
const seedWordCount = 15

var seedWords = wordlists.English

// GenerateSeed draws a random seed phrase. entropy may be nil to use
// crypto/rand.
func GenerateSeed(entropy io.Reader) (string, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	max := big.NewInt(int64(len(seedWords)))
	words := make([]string, seedWordCount)
	for i := range words {
		n, err := rand.Int(entropy, max)
		if err != nil {
			return "", fmt.Errorf("failed to read seed entropy: %w", err)
		}
		words[i] = seedWords[n.Int64()]
	}
	return strings.Join(words, " "), nil
}
