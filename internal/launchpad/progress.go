// =============================
// File: internal/launchpad/progress.go
// =============================
package launchpad

import (
	"math"
)

// TokenPrice returns the display spot price in SOL per token, from the
// virtual reserve ratio scaled by the SOL/token decimal difference.
// Display only: settlement always goes through the integer formulas in
// curve.go.
func TokenPrice(state *ReserveSnapshot) (float64, error) {
	if state == nil || state.VirtualSolReserves == 0 || state.VirtualTokenReserves == 0 {
		return 0, ErrInvalidReserves
	}

	virtualSol := float64(state.VirtualSolReserves) / math.Pow10(SolDecimals)
	virtualToken := float64(state.VirtualTokenReserves) / math.Pow10(TokenDecimals)

	return virtualSol / virtualToken, nil
}

// BondingProgress returns the bonding completion percentage in [0, 100]
// against the fixed 200 SOL target. The on-chain display utility ignores
// the per-mint configurable target, and so does this mirror; callers that
// need per-mint accuracy must resolve the target through the fee config
// instead.
func BondingProgress(realSolReserves uint64) float64 {
	if realSolReserves >= DefaultBondingTarget {
		return 100
	}
	return 100 * float64(realSolReserves) / float64(DefaultBondingTarget)
}
