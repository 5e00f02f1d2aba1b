// =============================
// File: internal/launchpad/config.go
// =============================
package launchpad

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// Known Arca launchpad protocol addresses
var (
	// Program ID for the Arca launchpad program
	LaunchpadProgramID = solana.MustPublicKeyFromBase58("Gw3w8QG9b4hEx2k7Q4JbqZosEfSbtRLyWqTppQQW37BN")

	// Token-2022 program; every curve mint is issued under token extensions
	Token2022ProgramID = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

	// Wrapped SOL mint, the quote side of every migrated pool
	WSOLMint = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
)

const (
	// Standard decimals for SOL and launchpad mints
	SolDecimals   = 9
	TokenDecimals = 6

	// Basis-point denominator used by the on-chain program
	BpsDenominator = 10_000

	// Default fee schedule applied when the global config leaves fields unset
	DefaultProtocolFeeBps = 100
	DefaultTreasuryFeeBps = 100

	// DefaultBondingTarget is the 200 SOL graduation threshold, in lamports.
	DefaultBondingTarget = 200_000_000_000

	// Dynamic treasury rate bounds. The rate decays linearly from
	// MaxTreasuryRateBps at zero progress to MinTreasuryRateBps at the
	// bonding target; only the floor is clamped.
	MaxTreasuryRateBps = 2000
	MinTreasuryRateBps = 500

	// UserShareBps is the user side of the token distribution split.
	// The community pool absorbs the integer-division remainder.
	UserShareBps = 9000
)

// Config holds the per-token configuration for the launchpad mirror.
type Config struct {
	// Protocol addresses
	ProgramID      solana.PublicKey
	GlobalConfig   solana.PublicKey
	EventAuthority solana.PublicKey

	// Token specific addresses
	Mint         solana.PublicKey
	BondingCurve solana.PublicKey
}

// GetDefaultConfig creates a default configuration for the launchpad mirror.
func GetDefaultConfig() *Config {
	return &Config{
		ProgramID: LaunchpadProgramID,
	}
}

// SetupForToken configures the Config instance for a specific token mint,
// deriving every address that depends only on the program and the mint.
func (cfg *Config) SetupForToken(tokenMint string, logger *zap.Logger) error {
	if tokenMint == "" {
		return fmt.Errorf("token mint address is required")
	}

	var err error
	cfg.Mint, err = solana.PublicKeyFromBase58(tokenMint)
	if err != nil {
		return fmt.Errorf("invalid token mint address: %w", err)
	}

	if cfg.ProgramID.IsZero() {
		cfg.ProgramID = LaunchpadProgramID
	}

	cfg.GlobalConfig, _, err = DeriveGlobalConfig(cfg.ProgramID)
	if err != nil {
		return fmt.Errorf("failed to derive global config: %w", err)
	}

	cfg.BondingCurve, _, err = DeriveBondingCurve(cfg.ProgramID, cfg.Mint)
	if err != nil {
		return fmt.Errorf("failed to derive bonding curve: %w", err)
	}

	cfg.EventAuthority, _, err = DeriveEventAuthority(cfg.ProgramID)
	if err != nil {
		return fmt.Errorf("failed to derive event authority: %w", err)
	}

	logger.Info("Launchpad configuration prepared",
		zap.String("program_id", cfg.ProgramID.String()),
		zap.String("global_config", cfg.GlobalConfig.String()),
		zap.String("token_mint", cfg.Mint.String()),
		zap.String("bonding_curve", cfg.BondingCurve.String()))

	return nil
}
