// =============================
// File: internal/launchpad/curve.go
// =============================
package launchpad

import (
	"lukechampine.com/uint128"
)

// CalculateTokensOut mirrors the on-chain buy path: fee deduction, dynamic
// treasury split, constant-product swap, then the 90/10 user/community
// distribution. Every division truncates toward zero in the same order the
// program truncates, so the result is bit-for-bit what the chain computes
// for the same snapshot.
func CalculateTokensOut(solAmount uint64, state *ReserveSnapshot, cfg FeeConfig) (*BuyQuote, error) {
	if state == nil || state.VirtualSolReserves == 0 || state.VirtualTokenReserves == 0 {
		return nil, ErrInvalidReserves
	}

	q, err := splitFees(solAmount, state.RealSolReserves, cfg)
	if err != nil {
		return nil, err
	}

	tokensOut, err := constantProductOut(state.VirtualTokenReserves, state.VirtualSolReserves, q.SolToCurve)
	if err != nil {
		return nil, err
	}
	splitTokens(q, tokensOut)

	return q, nil
}

// CalculateSolOut is the sell path: the pure inverse constant-product
// formula with no fee deduction. The buy/sell fee asymmetry is part of the
// mirrored program and must not be "corrected" here.
func CalculateSolOut(tokenAmount uint64, state *ReserveSnapshot) (uint64, error) {
	if state == nil || state.VirtualSolReserves == 0 || state.VirtualTokenReserves == 0 {
		return 0, ErrInvalidReserves
	}
	return constantProductOut(state.VirtualSolReserves, state.VirtualTokenReserves, tokenAmount)
}

// constantProductOut computes outReserves * amountIn / (inReserves + amountIn)
// with a 128-bit numerator. The quotient is strictly less than outReserves,
// but the width check stays a checked path rather than an assumption.
func constantProductOut(outReserves, inReserves, amountIn uint64) (uint64, error) {
	if amountIn == 0 {
		return 0, nil
	}

	numerator := uint128.From64(outReserves).Mul64(amountIn)
	denominator := uint128.From64(inReserves).Add64(amountIn)
	out := numerator.Div(denominator)
	if out.Hi != 0 {
		return 0, ErrArithmeticOverflow
	}
	return out.Lo, nil
}
