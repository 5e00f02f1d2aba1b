// =============================
// File: internal/cpswap/constants.go
// =============================
package cpswap

import "github.com/gagliardetto/solana-go"

// Raydium CP-Swap (CPMM) mainnet addresses. The AMM config and the
// pool-creation fee receiver are fixed by Raydium and supplied verbatim
// in migration instructions, never derived.
var (
	// ProgramID is the Raydium CP-Swap program
	ProgramID = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")

	// AmmConfig is the fee-tier config every launchpad migration targets
	AmmConfig = solana.MustPublicKeyFromBase58("D4FPEruKEHrG5TenZ2mpDGEfu1iUvTiqBxvpU8HLBvC2")

	// CreatePoolFeeReceiver collects the one-time pool creation fee
	CreatePoolFeeReceiver = solana.MustPublicKeyFromBase58("DNXgeM9EiiaAbaWvwjHj9fQQLAX5ZsfHyvmYUNRAdNC8")

	// WSOLMint is the quote side of every migrated pool
	WSOLMint = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
)

// CP-Swap PDA seed tags, verbatim from the Raydium program.
const (
	SeedPoolAuthority    = "vault_and_lp_mint_auth_seed"
	SeedPoolState        = "pool"
	SeedLpMint           = "pool_lp_mint"
	SeedPoolVault        = "pool_vault"
	SeedObservationState = "observation"
)
