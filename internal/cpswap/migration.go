// =============================
// File: internal/cpswap/migration.go
// =============================
package cpswap

import (
	"github.com/gagliardetto/solana-go"
)

// MigrationAccounts is the ordered account set a fully bonded token needs
// to interact with its CP-Swap pool after migration. Token0/Token1 carry
// the canonical ordering of the mint against wrapped SOL.
type MigrationAccounts struct {
	TokenMint solana.PublicKey

	Token0 solana.PublicKey
	Token1 solana.PublicKey

	AmmConfig             solana.PublicKey
	PoolAuthority         solana.PublicKey
	PoolState             solana.PublicKey
	LpMint                solana.PublicKey
	Token0Vault           solana.PublicKey
	Token1Vault           solana.PublicKey
	ObservationState      solana.PublicKey
	CreatePoolFeeReceiver solana.PublicKey
}

// DeriveMigrationAccounts composes the ordering rule with the pool
// derivations for the mint's pool against wrapped SOL. Pure derivation:
// it does not validate that the pool exists.
func DeriveMigrationAccounts(tokenMint solana.PublicKey) (*MigrationAccounts, error) {
	token0, token1, err := SortTokenMints(tokenMint, WSOLMint)
	if err != nil {
		return nil, err
	}

	acc := &MigrationAccounts{
		TokenMint:             tokenMint,
		Token0:                token0,
		Token1:                token1,
		AmmConfig:             AmmConfig,
		CreatePoolFeeReceiver: CreatePoolFeeReceiver,
	}

	if acc.PoolAuthority, _, err = DerivePoolAuthority(); err != nil {
		return nil, err
	}
	if acc.PoolState, _, err = DerivePoolState(AmmConfig, token0, token1); err != nil {
		return nil, err
	}
	if acc.LpMint, _, err = DeriveLpMint(acc.PoolState); err != nil {
		return nil, err
	}
	if acc.Token0Vault, _, err = DerivePoolVault(acc.PoolState, token0); err != nil {
		return nil, err
	}
	if acc.Token1Vault, _, err = DerivePoolVault(acc.PoolState, token1); err != nil {
		return nil, err
	}
	if acc.ObservationState, _, err = DeriveObservationState(acc.PoolState); err != nil {
		return nil, err
	}

	return acc, nil
}
