package launchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicTreasuryRate(t *testing.T) {
	target := uint64(DefaultBondingTarget)

	cases := []struct {
		name    string
		realSol uint64
		want    uint64
	}{
		{"launch", 0, 2000},
		{"quarter bonded", 50_000_000_000, 1625},
		{"half bonded", 100_000_000_000, 1250},
		{"three quarters", 150_000_000_000, 875},
		{"at target", 200_000_000_000, 500},
		{"past target", 400_000_000_000, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := DynamicTreasuryRate(tc.realSol, target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rate)
		})
	}
}

func TestDynamicTreasuryRate_StaysInBand(t *testing.T) {
	target := uint64(DefaultBondingTarget)

	for realSol := uint64(0); realSol <= 3*target; realSol += target / 16 {
		rate, err := DynamicTreasuryRate(realSol, target)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rate, uint64(MinTreasuryRateBps))
		assert.LessOrEqual(t, rate, uint64(MaxTreasuryRateBps))
	}
}

// The decay formula has a floor clamp but no ceiling clamp: the decayed
// value itself can never exceed MaxTreasuryRateBps because decay is
// non-negative. This pins that the implementation relies on the
// arithmetic, not on a symmetric clamp pair.
func TestDynamicRateHasNoCeilingClamp(t *testing.T) {
	rate, err := DynamicTreasuryRate(0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(MaxTreasuryRateBps), rate)

	// One lamport bonded against a one-lamport target jumps straight to
	// the floor.
	rate, err = DynamicTreasuryRate(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(MinTreasuryRateBps), rate)
}

func TestDynamicTreasuryRate_ZeroTarget(t *testing.T) {
	_, err := DynamicTreasuryRate(0, 0)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestResolveBondingTarget(t *testing.T) {
	got, err := ResolveBondingTarget(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultBondingTarget), got, "zero is the use-default sentinel")

	got, err = ResolveBondingTarget(123_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(123_000_000_000), got)
}

func TestApplyBps(t *testing.T) {
	assert.Equal(t, uint64(10_000_000), applyBps(1_000_000_000, 100))
	assert.Equal(t, uint64(0), applyBps(99, 100), "sub-unit fee truncates to zero")
	assert.Equal(t, uint64(1), applyBps(100, 100))

	// Max uint64 at full rate must round-trip without overflow.
	assert.Equal(t, ^uint64(0), applyBps(^uint64(0), BpsDenominator))
}

func TestSplitFees_AtTargetUsesFloorRate(t *testing.T) {
	q, err := splitFees(1_000_000_000, DefaultBondingTarget, DefaultFeeConfig())
	require.NoError(t, err)

	assert.Equal(t, uint64(500), q.RateBps)
	assert.Equal(t, uint64(980_000_000), q.SolAfterFees)
	assert.Equal(t, uint64(49_000_000), q.SolToTreasurySplit)
	assert.Equal(t, uint64(931_000_000), q.SolToCurve)
}

func TestSplitFees_PerMintTargetShiftsRate(t *testing.T) {
	cfg := DefaultFeeConfig()
	cfg.BondingTarget = 100_000_000_000

	// 50 SOL bonded is halfway to a 100 SOL target, not a quarter of the
	// default 200 SOL one.
	q, err := splitFees(1_000_000_000, 50_000_000_000, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(1250), q.RateBps)
}

func TestSplitTokens_CommunityAbsorbsRemainder(t *testing.T) {
	q := &BuyQuote{}
	splitTokens(q, 27_326_923_076_923)

	assert.Equal(t, uint64(24_594_230_769_230), q.TokensToUser)
	assert.Equal(t, uint64(2_732_692_307_693), q.TokensToCommunity)
	assert.Equal(t, q.TokensOut, q.TokensToUser+q.TokensToCommunity)
}
