// =============================
// File: internal/launchpad/types.go
// =============================
package launchpad

import (
	"github.com/gagliardetto/solana-go"
)

// Account discriminators (first 8 bytes of sha256("account:<Name>")).
var (
	// BondingCurveDiscriminator is the discriminator for BondingCurve accounts
	BondingCurveDiscriminator = []byte{23, 183, 248, 55, 96, 216, 172, 96}

	// GlobalConfigDiscriminator is the discriminator for GlobalConfig accounts
	GlobalConfigDiscriminator = []byte{149, 8, 156, 202, 160, 252, 176, 217}
)

// ReserveSnapshot is a read-only snapshot of a bonding curve's reserves,
// in lamports and base token units. The engine never mutates it.
type ReserveSnapshot struct {
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	RealSolReserves      uint64
	RealTokenReserves    uint64
}

// FeeConfig carries the fee schedule decoded from the global config record.
// A zero BondingTarget means "use the protocol default" (200 SOL).
type FeeConfig struct {
	ProtocolFeeBps uint64
	TreasuryFeeBps uint64
	BondingTarget  uint64
}

// DefaultFeeConfig returns the schedule the program applies when the
// global config leaves fields unset.
func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		ProtocolFeeBps: DefaultProtocolFeeBps,
		TreasuryFeeBps: DefaultTreasuryFeeBps,
		BondingTarget:  0,
	}
}

// BuyQuote is the full breakdown of a buy. TokensToUser is the
// user-visible amount slippage bounds should be set against.
type BuyQuote struct {
	SolAmount uint64

	ProtocolFee        uint64
	TreasuryFlatFee    uint64
	SolAfterFees       uint64
	RateBps            uint64
	SolToTreasurySplit uint64
	SolToCurve         uint64
	SolToTreasuryTotal uint64

	TokensOut         uint64
	TokensToUser      uint64
	TokensToCommunity uint64
}

// BondingCurveAccount mirrors the on-chain per-mint bonding curve record.
type BondingCurveAccount struct {
	Creator              solana.PublicKey
	Mint                 solana.PublicKey
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	RealSolReserves      uint64
	RealTokenReserves    uint64
	BondingTarget        uint64
	Complete             bool
}

// Snapshot copies the reserve fields into the form the pricing engine takes.
func (a *BondingCurveAccount) Snapshot() *ReserveSnapshot {
	return &ReserveSnapshot{
		VirtualSolReserves:   a.VirtualSolReserves,
		VirtualTokenReserves: a.VirtualTokenReserves,
		RealSolReserves:      a.RealSolReserves,
		RealTokenReserves:    a.RealTokenReserves,
	}
}

// GlobalConfigAccount mirrors the on-chain global configuration record.
type GlobalConfigAccount struct {
	Authority         solana.PublicKey
	TreasuryAuthority solana.PublicKey
	ProtocolFeeBps    uint64
	TreasuryFeeBps    uint64
	BondingTarget     uint64
	Paused            bool
}

// FeeConfig extracts the fee schedule the pricing engine consumes.
func (g *GlobalConfigAccount) FeeConfig() FeeConfig {
	return FeeConfig{
		ProtocolFeeBps: g.ProtocolFeeBps,
		TreasuryFeeBps: g.TreasuryFeeBps,
		BondingTarget:  g.BondingTarget,
	}
}
