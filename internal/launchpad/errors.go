// =============================
// File: internal/launchpad/errors.go
// =============================
package launchpad

import "errors"

// Sentinel errors returned by the pricing engine and decoders. The engine
// fails loudly instead of producing a value that would diverge from the
// on-chain program.
var (
	// ErrInvalidReserves is returned when a reserve snapshot carries a zero
	// virtual reserve that the formulas would use as a divisor.
	ErrInvalidReserves = errors.New("launchpad: invalid reserves: virtual reserves must be non-zero")

	// ErrInvalidTarget is returned when the resolved bonding target is zero.
	ErrInvalidTarget = errors.New("launchpad: invalid bonding target: must be non-zero")

	// ErrInvalidFeeConfig is returned when a basis-point field exceeds 10000.
	ErrInvalidFeeConfig = errors.New("launchpad: invalid fee config: basis points exceed denominator")

	// ErrArithmeticOverflow is returned when an intermediate product or sum
	// would not fit the width the on-chain program computes in.
	ErrArithmeticOverflow = errors.New("launchpad: arithmetic overflow")

	// ErrAccountDataTooShort is returned when account bytes are shorter than
	// the declared layout.
	ErrAccountDataTooShort = errors.New("launchpad: account data too short")

	// ErrBadDiscriminator is returned when account bytes do not start with
	// the expected 8-byte discriminator.
	ErrBadDiscriminator = errors.New("launchpad: account discriminator mismatch")
)
