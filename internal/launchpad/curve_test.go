package launchpad

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The canonical launch snapshot: 30 virtual SOL against 1.073B virtual
// tokens, nothing bonded yet.
func freshCurve() *ReserveSnapshot {
	return &ReserveSnapshot{
		VirtualSolReserves:   30_000_000_000,
		VirtualTokenReserves: 1_073_000_000_000_000,
		RealSolReserves:      0,
		RealTokenReserves:    0,
	}
}

func TestCalculateTokensOut_OneSolAtLaunch(t *testing.T) {
	quote, err := CalculateTokensOut(1_000_000_000, freshCurve(), DefaultFeeConfig())
	require.NoError(t, err)

	assert.Equal(t, uint64(10_000_000), quote.ProtocolFee)
	assert.Equal(t, uint64(10_000_000), quote.TreasuryFlatFee)
	assert.Equal(t, uint64(980_000_000), quote.SolAfterFees)
	assert.Equal(t, uint64(2000), quote.RateBps, "zero progress pays the maximum treasury rate")
	assert.Equal(t, uint64(196_000_000), quote.SolToTreasurySplit)
	assert.Equal(t, uint64(784_000_000), quote.SolToCurve)
	assert.Equal(t, uint64(206_000_000), quote.SolToTreasuryTotal)

	// 1_073_000_000_000_000 * 784_000_000 / 30_784_000_000, truncated
	assert.Equal(t, uint64(27_326_923_076_923), quote.TokensOut)
	assert.Equal(t, uint64(24_594_230_769_230), quote.TokensToUser)
	assert.Equal(t, uint64(2_732_692_307_693), quote.TokensToCommunity)
}

func TestCalculateTokensOut_ZeroInput(t *testing.T) {
	quote, err := CalculateTokensOut(0, freshCurve(), DefaultFeeConfig())
	require.NoError(t, err)

	assert.Zero(t, quote.ProtocolFee)
	assert.Zero(t, quote.TreasuryFlatFee)
	assert.Zero(t, quote.SolToCurve)
	assert.Zero(t, quote.SolToTreasurySplit)
	assert.Zero(t, quote.TokensOut)
	assert.Zero(t, quote.TokensToUser)
	assert.Zero(t, quote.TokensToCommunity)
}

func TestCalculateTokensOut_SplitCompleteness(t *testing.T) {
	cases := []struct {
		name    string
		sol     uint64
		realSol uint64
	}{
		{"dust", 1, 0},
		{"one sol fresh", 1_000_000_000, 0},
		{"odd amount mid-bond", 777_777_777, 93_000_000_000},
		{"large buy near target", 50_000_000_000, 199_999_999_999},
		{"over-funded curve", 3_141_592_653, 250_000_000_000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := freshCurve()
			state.RealSolReserves = tc.realSol

			q, err := CalculateTokensOut(tc.sol, state, DefaultFeeConfig())
			require.NoError(t, err)

			assert.Equal(t, tc.sol, q.ProtocolFee+q.TreasuryFlatFee+q.SolToTreasurySplit+q.SolToCurve,
				"every lamport of input must be accounted for exactly once")
			assert.Equal(t, q.TokensOut, q.TokensToUser+q.TokensToCommunity,
				"token split must cover tokensOut exactly")
			assert.Equal(t, q.TreasuryFlatFee+q.SolToTreasurySplit, q.SolToTreasuryTotal)
		})
	}
}

func TestCalculateTokensOut_UserAmountNonDecreasing(t *testing.T) {
	state := freshCurve()
	state.RealSolReserves = 42_000_000_000

	var prev uint64
	for sol := uint64(0); sol <= 10_000_000_000; sol += 500_000_000 {
		q, err := CalculateTokensOut(sol, state, DefaultFeeConfig())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q.TokensToUser, prev, "tokensToUser must not decrease as input grows")
		prev = q.TokensToUser
	}
}

func TestCalculateTokensOut_InvalidInputs(t *testing.T) {
	_, err := CalculateTokensOut(1, nil, DefaultFeeConfig())
	assert.ErrorIs(t, err, ErrInvalidReserves)

	_, err = CalculateTokensOut(1, &ReserveSnapshot{VirtualSolReserves: 0, VirtualTokenReserves: 1}, DefaultFeeConfig())
	assert.ErrorIs(t, err, ErrInvalidReserves)

	_, err = CalculateTokensOut(1, &ReserveSnapshot{VirtualSolReserves: 1, VirtualTokenReserves: 0}, DefaultFeeConfig())
	assert.ErrorIs(t, err, ErrInvalidReserves)

	_, err = CalculateTokensOut(1, freshCurve(), FeeConfig{ProtocolFeeBps: 10_001})
	assert.ErrorIs(t, err, ErrInvalidFeeConfig)

	_, err = CalculateTokensOut(1, freshCurve(), FeeConfig{ProtocolFeeBps: 6000, TreasuryFeeBps: 6000})
	assert.ErrorIs(t, err, ErrInvalidFeeConfig)
}

func TestCalculateSolOut_NoFees(t *testing.T) {
	state := freshCurve()
	tokenAmount := uint64(24_594_230_769_230)

	got, err := CalculateSolOut(tokenAmount, state)
	require.NoError(t, err)

	// Pure inverse constant product; the full amount goes to the seller.
	want := new(big.Int).Mul(
		new(big.Int).SetUint64(state.VirtualSolReserves),
		new(big.Int).SetUint64(tokenAmount),
	)
	want.Div(want, new(big.Int).SetUint64(state.VirtualTokenReserves+tokenAmount))
	assert.Equal(t, want.Uint64(), got)
}

func TestCalculateSolOut_StrictlyIncreasing(t *testing.T) {
	state := freshCurve()

	var prev uint64
	for tokens := uint64(1_000_000_000); tokens <= 100_000_000_000_000; tokens *= 10 {
		out, err := CalculateSolOut(tokens, state)
		require.NoError(t, err)
		assert.Greater(t, out, prev, "solOut must grow with tokens sold")
		prev = out
	}
}

func TestCalculateSolOut_InvalidReserves(t *testing.T) {
	_, err := CalculateSolOut(1, &ReserveSnapshot{VirtualSolReserves: 0, VirtualTokenReserves: 1})
	assert.ErrorIs(t, err, ErrInvalidReserves)
}

// Cross-checks the 128-bit path against math/big over extreme but legal
// inputs; silent precision loss here would desynchronize quotes from the
// chain.
func TestConstantProductOut_MatchesBigIntReference(t *testing.T) {
	cases := []struct {
		out, in, amount uint64
	}{
		{1_073_000_000_000_000, 30_000_000_000, 784_000_000},
		{^uint64(0), 1, 1},
		{^uint64(0), ^uint64(0), ^uint64(0)},
		{123_456_789_012_345_678, 987_654_321, 555_555_555_555},
	}

	for _, tc := range cases {
		got, err := constantProductOut(tc.out, tc.in, tc.amount)
		require.NoError(t, err)

		num := new(big.Int).Mul(new(big.Int).SetUint64(tc.out), new(big.Int).SetUint64(tc.amount))
		den := new(big.Int).Add(new(big.Int).SetUint64(tc.in), new(big.Int).SetUint64(tc.amount))
		want := num.Div(num, den)
		require.True(t, want.IsUint64())
		assert.Equal(t, want.Uint64(), got)
	}
}
