package vsys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeedWordCount(t *testing.T) {
	seed, err := GenerateSeed(nil)
	require.NoError(t, err)

	words := strings.Fields(seed)
	assert.Len(t, words, seedWordCount)
	for _, w := range words {
		assert.NotEmpty(t, w)
	}
}

func TestGenerateSeedVaries(t *testing.T) {
	s1, err := GenerateSeed(nil)
	require.NoError(t, err)
	s2, err := GenerateSeed(nil)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestNewWalletRejectsEmptySeed(t *testing.T) {
	_, err := NewWallet("   ")
	assert.True(t, IsKeyError(err))
}

func TestWalletAccountsAreDeterministic(t *testing.T) {
	w, err := NewWallet(testSeed)
	require.NoError(t, err)
	assert.Equal(t, testSeed, w.Seed())

	node := newFakeNode(t, nil)
	chain := testChain(t, node)

	a0, err := w.Account(chain, 0)
	require.NoError(t, err)
	a0Again, err := w.Account(chain, 0)
	require.NoError(t, err)
	a1, err := w.Account(chain, 1)
	require.NoError(t, err)

	assert.Equal(t, a0.Address(), a0Again.Address())
	assert.NotEqual(t, a0.Address(), a1.Address())
}

func TestGeneratedWalletDerivesAccounts(t *testing.T) {
	w, err := GenerateWallet(nil)
	require.NoError(t, err)

	node := newFakeNode(t, nil)
	chain := testChain(t, node)

	acnt, err := w.Account(chain, 0)
	require.NoError(t, err)
	assert.Equal(t, TestNet, acnt.Address().ChainID())
}
