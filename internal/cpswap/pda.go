// =============================
// File: internal/cpswap/pda.go
// =============================
package cpswap

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ErrIdenticalMints is returned when both sides of a pool are the same
// mint. Never expected in practice: one side is always wrapped SOL and
// the other a freshly minted token.
var ErrIdenticalMints = errors.New("cpswap: pool mints must be distinct")

// SortTokenMints returns the two mints in the canonical CP-Swap order:
// token0 is the byte-lexicographically smaller key (most-significant byte
// first). Pool state derivation depends on this ordering being stable and
// total.
func SortTokenMints(a, b solana.PublicKey) (token0, token1 solana.PublicKey, err error) {
	switch bytes.Compare(a.Bytes(), b.Bytes()) {
	case -1:
		return a, b, nil
	case 1:
		return b, a, nil
	default:
		return solana.PublicKey{}, solana.PublicKey{}, ErrIdenticalMints
	}
}

func derive(kind string, seeds [][]byte) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(seeds, ProgramID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive %s: %w", kind, err)
	}
	return addr, bump, nil
}

// DerivePoolAuthority derives the vault and LP mint authority shared by
// every CP-Swap pool.
func DerivePoolAuthority() (solana.PublicKey, uint8, error) {
	return derive("pool authority", [][]byte{[]byte(SeedPoolAuthority)})
}

// DerivePoolState derives a pool from its config and canonically ordered
// mints. Callers must pass token0/token1 in SortTokenMints order.
func DerivePoolState(ammConfig, token0, token1 solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive("pool state", [][]byte{
		[]byte(SeedPoolState),
		ammConfig.Bytes(),
		token0.Bytes(),
		token1.Bytes(),
	})
}

// DeriveLpMint derives a pool's LP token mint.
func DeriveLpMint(poolState solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive("lp mint", [][]byte{[]byte(SeedLpMint), poolState.Bytes()})
}

// DerivePoolVault derives the pool's vault for one of its token mints.
func DerivePoolVault(poolState, tokenMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive("pool vault", [][]byte{[]byte(SeedPoolVault), poolState.Bytes(), tokenMint.Bytes()})
}

// DeriveObservationState derives the pool's price observation account.
func DeriveObservationState(poolState solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive("observation state", [][]byte{[]byte(SeedObservationState), poolState.Bytes()})
}
