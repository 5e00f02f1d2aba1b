// =============================
// File: internal/launchpad/fees.go
// =============================
package launchpad

import (
	"lukechampine.com/uint128"
)

// applyBps computes amount * bps / 10000 with truncation toward zero,
// exactly as the on-chain program does. The 128-bit intermediate keeps
// amount * bps from wrapping.
func applyBps(amount, bps uint64) uint64 {
	return uint128.From64(amount).Mul64(bps).Div64(BpsDenominator).Lo
}

// ResolveBondingTarget substitutes the protocol default for the zero
// sentinel. A resolved target of zero is a data error.
func ResolveBondingTarget(target uint64) (uint64, error) {
	if target == 0 {
		target = DefaultBondingTarget
	}
	if target == 0 {
		return 0, ErrInvalidTarget
	}
	return target, nil
}

// DynamicTreasuryRate returns the treasury skim rate in basis points for
// the given curve progress. The rate decays linearly from
// MaxTreasuryRateBps at zero real reserves to MinTreasuryRateBps at the
// bonding target. Only the floor is clamped: an over-funded curve
// (realSolReserves > target) still yields MinTreasuryRateBps, and there
// is deliberately no ceiling clamp on the decayed value, matching the
// on-chain program.
func DynamicTreasuryRate(realSolReserves, target uint64) (uint64, error) {
	if target == 0 {
		return 0, ErrInvalidTarget
	}

	span := uint64(MaxTreasuryRateBps - MinTreasuryRateBps)
	decay := uint128.From64(realSolReserves).Mul64(span).Div64(target)
	if decay.Cmp64(span) >= 0 {
		return MinTreasuryRateBps, nil
	}
	return MaxTreasuryRateBps - decay.Lo, nil
}

// splitFees deducts the protocol and flat treasury fees and the dynamic
// treasury skim from solAmount, filling the SOL side of the quote.
// Invariant: ProtocolFee + TreasuryFlatFee + SolToTreasurySplit +
// SolToCurve == SolAmount.
func splitFees(solAmount, realSolReserves uint64, cfg FeeConfig) (*BuyQuote, error) {
	if cfg.ProtocolFeeBps > BpsDenominator || cfg.TreasuryFeeBps > BpsDenominator ||
		cfg.ProtocolFeeBps+cfg.TreasuryFeeBps > BpsDenominator {
		return nil, ErrInvalidFeeConfig
	}

	target, err := ResolveBondingTarget(cfg.BondingTarget)
	if err != nil {
		return nil, err
	}

	q := &BuyQuote{SolAmount: solAmount}
	q.ProtocolFee = applyBps(solAmount, cfg.ProtocolFeeBps)
	q.TreasuryFlatFee = applyBps(solAmount, cfg.TreasuryFeeBps)
	q.SolAfterFees = solAmount - q.ProtocolFee - q.TreasuryFlatFee

	q.RateBps, err = DynamicTreasuryRate(realSolReserves, target)
	if err != nil {
		return nil, err
	}

	q.SolToTreasurySplit = applyBps(q.SolAfterFees, q.RateBps)
	q.SolToCurve = q.SolAfterFees - q.SolToTreasurySplit
	q.SolToTreasuryTotal = q.TreasuryFlatFee + q.SolToTreasurySplit

	return q, nil
}

// splitTokens distributes tokensOut between the user and the community
// pool. The community side absorbs the rounding remainder so the two
// always sum to tokensOut exactly.
func splitTokens(q *BuyQuote, tokensOut uint64) {
	q.TokensOut = tokensOut
	q.TokensToUser = applyBps(tokensOut, UserShareBps)
	q.TokensToCommunity = tokensOut - q.TokensToUser
}
