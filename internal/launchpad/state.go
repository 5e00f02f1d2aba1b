// =============================
// File: internal/launchpad/state.go
// =============================
package launchpad

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// ParseBondingCurveAccount decodes the per-mint bonding curve record from
// raw account bytes. Field order and widths follow the on-chain binary
// layout exactly.
func ParseBondingCurveAccount(data []byte) (*BondingCurveAccount, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: bonding curve (%d bytes)", ErrAccountDataTooShort, len(data))
	}
	if !bytes.Equal(data[:8], BondingCurveDiscriminator) {
		return nil, fmt.Errorf("%w: bonding curve", ErrBadDiscriminator)
	}

	acc := &BondingCurveAccount{}
	if err := bin.NewBorshDecoder(data[8:]).Decode(acc); err != nil {
		return nil, fmt.Errorf("failed to decode bonding curve: %w", err)
	}
	return acc, nil
}

// ParseGlobalConfigAccount decodes the protocol-wide configuration record.
func ParseGlobalConfigAccount(data []byte) (*GlobalConfigAccount, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: global config (%d bytes)", ErrAccountDataTooShort, len(data))
	}
	if !bytes.Equal(data[:8], GlobalConfigDiscriminator) {
		return nil, fmt.Errorf("%w: global config", ErrBadDiscriminator)
	}

	acc := &GlobalConfigAccount{}
	if err := bin.NewBorshDecoder(data[8:]).Decode(acc); err != nil {
		return nil, fmt.Errorf("failed to decode global config: %w", err)
	}
	return acc, nil
}
