package cpswap

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyWithLastByte(b byte) solana.PublicKey {
	var k solana.PublicKey
	k[31] = b
	return k
}

func TestSortTokenMints_LastByteDecides(t *testing.T) {
	a := keyWithLastByte(0x01)
	b := keyWithLastByte(0x02)

	token0, token1, err := SortTokenMints(a, b)
	require.NoError(t, err)
	assert.Equal(t, a, token0)
	assert.Equal(t, b, token1)
}

func TestSortTokenMints_Antisymmetric(t *testing.T) {
	mint := solana.MustPublicKeyFromBase58("Vote111111111111111111111111111111111111111")

	t0, t1, err := SortTokenMints(mint, WSOLMint)
	require.NoError(t, err)
	r0, r1, err := SortTokenMints(WSOLMint, mint)
	require.NoError(t, err)

	assert.Equal(t, t0, r0, "ordering must not depend on argument order")
	assert.Equal(t, t1, r1)
	assert.NotEqual(t, t0, t1)
}

func TestSortTokenMints_IdenticalMints(t *testing.T) {
	_, _, err := SortTokenMints(WSOLMint, WSOLMint)
	assert.ErrorIs(t, err, ErrIdenticalMints)
}

// The pool authority is a constant of the CP-Swap program; its derived
// value is published on mainnet.
func TestDerivePoolAuthority_KnownAddress(t *testing.T) {
	authority, _, err := DerivePoolAuthority()
	require.NoError(t, err)
	assert.Equal(t,
		solana.MustPublicKeyFromBase58("GpMZbSM2GgvTKHJirzeGfMFoaZ8UR2X7F4v8vHTvxFbL"),
		authority)
}

func TestDerivePoolState_OrderSensitive(t *testing.T) {
	a := keyWithLastByte(0x01)
	b := keyWithLastByte(0x02)

	canonical, _, err := DerivePoolState(AmmConfig, a, b)
	require.NoError(t, err)
	reversed, _, err := DerivePoolState(AmmConfig, b, a)
	require.NoError(t, err)

	assert.NotEqual(t, canonical, reversed,
		"pool state must differ when the mint order is wrong")
}

func TestPoolDerivations_Deterministic(t *testing.T) {
	mint := solana.MustPublicKeyFromBase58("Vote111111111111111111111111111111111111111")
	token0, token1, err := SortTokenMints(mint, WSOLMint)
	require.NoError(t, err)

	pool1, bump1, err := DerivePoolState(AmmConfig, token0, token1)
	require.NoError(t, err)
	pool2, bump2, err := DerivePoolState(AmmConfig, token0, token1)
	require.NoError(t, err)
	assert.Equal(t, pool1, pool2)
	assert.Equal(t, bump1, bump2)

	lp, _, err := DeriveLpMint(pool1)
	require.NoError(t, err)
	vault0, _, err := DerivePoolVault(pool1, token0)
	require.NoError(t, err)
	vault1, _, err := DerivePoolVault(pool1, token1)
	require.NoError(t, err)
	obs, _, err := DeriveObservationState(pool1)
	require.NoError(t, err)

	// All derived accounts of one pool are distinct.
	addrs := []solana.PublicKey{pool1, lp, vault0, vault1, obs}
	for i := range addrs {
		for j := i + 1; j < len(addrs); j++ {
			assert.NotEqual(t, addrs[i], addrs[j])
		}
	}
}
