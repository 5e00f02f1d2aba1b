// =============================
// File: internal/launchpad/accounts.go
// =============================
package launchpad

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// PDA seed tags. These byte strings are part of the on-chain program's
// address space: changing one changes every derived address, so they are
// immutable constants, never computed.
const (
	SeedGlobalConfig     = "global_config"
	SeedBondingCurve     = "bonding_curve"
	SeedPosition         = "position"
	SeedVoteRecord       = "vote"
	SeedMintTreasury     = "treasury"
	SeedProtocolTreasury = "protocol_treasury"
	SeedUserStats        = "user_stats"
	SeedStarRecord       = "star"
	SeedLoanPosition     = "loan"
	SeedCollateralVault  = "collateral_vault"
	SeedCreatorVault     = "creator_vault"
	SeedVaultLink        = "vault_link"
	SeedEventAuthority   = "__event_authority"
)

// derive wraps FindProgramAddress so every registry entry reports failures
// the same way. Seed order is the order the on-chain account declares its
// keys; reversing two keys yields a different, wrong address with no error
// signal, so each Derive* function below is the single source of truth for
// its ordering.
func derive(programID solana.PublicKey, kind string, seeds [][]byte) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive %s: %w", kind, err)
	}
	return addr, bump, nil
}

// DeriveGlobalConfig derives the protocol-wide configuration record.
func DeriveGlobalConfig(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "global config", [][]byte{[]byte(SeedGlobalConfig)})
}

// DeriveBondingCurve derives the per-mint bonding curve record.
func DeriveBondingCurve(programID, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "bonding curve", [][]byte{[]byte(SeedBondingCurve), mint.Bytes()})
}

// DeriveCurveTokenAccount derives the bonding curve's token account via the
// standard associated-token-account scheme under the Token-2022 program.
// This is an external derivation, not a protocol PDA: the seeds and the
// owning program belong to the ATA program.
func DeriveCurveTokenAccount(bondingCurve, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(solana.SPLAssociatedTokenAccountProgramID, "curve token account", [][]byte{
		bondingCurve.Bytes(),
		Token2022ProgramID.Bytes(),
		mint.Bytes(),
	})
}

// DerivePosition derives the per-(curve, user) position record.
func DerivePosition(programID, bondingCurve, user solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "position", [][]byte{[]byte(SeedPosition), bondingCurve.Bytes(), user.Bytes()})
}

// DeriveVoteRecord derives the per-(curve, voter) vote record.
func DeriveVoteRecord(programID, bondingCurve, voter solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "vote record", [][]byte{[]byte(SeedVoteRecord), bondingCurve.Bytes(), voter.Bytes()})
}

// DeriveMintTreasury derives the per-mint treasury.
func DeriveMintTreasury(programID, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "mint treasury", [][]byte{[]byte(SeedMintTreasury), mint.Bytes()})
}

// DeriveProtocolTreasury derives the protocol-wide treasury.
func DeriveProtocolTreasury(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "protocol treasury", [][]byte{[]byte(SeedProtocolTreasury)})
}

// DeriveUserStats derives the per-user stats record.
func DeriveUserStats(programID, user solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "user stats", [][]byte{[]byte(SeedUserStats), user.Bytes()})
}

// DeriveStarRecord derives the per-(user, mint) star record. Note the key
// order: user first, then mint — the reverse of the loan position below.
func DeriveStarRecord(programID, user, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "star record", [][]byte{[]byte(SeedStarRecord), user.Bytes(), mint.Bytes()})
}

// DeriveLoanPosition derives the per-(mint, borrower) loan position.
func DeriveLoanPosition(programID, mint, borrower solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "loan position", [][]byte{[]byte(SeedLoanPosition), mint.Bytes(), borrower.Bytes()})
}

// DeriveCollateralVault derives the per-mint collateral vault.
func DeriveCollateralVault(programID, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "collateral vault", [][]byte{[]byte(SeedCollateralVault), mint.Bytes()})
}

// DeriveCreatorVault derives the per-creator vault.
func DeriveCreatorVault(programID, creator solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "creator vault", [][]byte{[]byte(SeedCreatorVault), creator.Bytes()})
}

// DeriveVaultLink derives the per-wallet vault-link record binding a wallet
// to a shared vault balance.
func DeriveVaultLink(programID, wallet solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "vault link", [][]byte{[]byte(SeedVaultLink), wallet.Bytes()})
}

// DeriveEventAuthority derives the program's event authority.
func DeriveEventAuthority(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive(programID, "event authority", [][]byte{[]byte(SeedEventAuthority)})
}

// TradeAccounts is the account set a buy or sell instruction references,
// in the order the program declares them.
type TradeAccounts struct {
	GlobalConfig      solana.PublicKey
	BondingCurve      solana.PublicKey
	CurveTokenAccount solana.PublicKey
	MintTreasury      solana.PublicKey
	ProtocolTreasury  solana.PublicKey
	Position          solana.PublicKey
	UserStats         solana.PublicKey
	EventAuthority    solana.PublicKey
}

// DeriveTradeAccounts derives the full account set for a (mint, user) trade.
// Pure composition of the registry above; it does not validate that any of
// the accounts exist on chain.
func DeriveTradeAccounts(programID, mint, user solana.PublicKey) (*TradeAccounts, error) {
	var (
		acc TradeAccounts
		err error
	)

	if acc.GlobalConfig, _, err = DeriveGlobalConfig(programID); err != nil {
		return nil, err
	}
	if acc.BondingCurve, _, err = DeriveBondingCurve(programID, mint); err != nil {
		return nil, err
	}
	if acc.CurveTokenAccount, _, err = DeriveCurveTokenAccount(acc.BondingCurve, mint); err != nil {
		return nil, err
	}
	if acc.MintTreasury, _, err = DeriveMintTreasury(programID, mint); err != nil {
		return nil, err
	}
	if acc.ProtocolTreasury, _, err = DeriveProtocolTreasury(programID); err != nil {
		return nil, err
	}
	if acc.Position, _, err = DerivePosition(programID, acc.BondingCurve, user); err != nil {
		return nil, err
	}
	if acc.UserStats, _, err = DeriveUserStats(programID, user); err != nil {
		return nil, err
	}
	if acc.EventAuthority, _, err = DeriveEventAuthority(programID); err != nil {
		return nil, err
	}

	return &acc, nil
}
