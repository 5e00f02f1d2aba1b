// =============================
// File: internal/launchpad/service.go
// =============================
package launchpad

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/arcasol/launchkit/internal/blockchain/solbc"
)

// Service wires the read-only RPC client to the pricing engine and the
// derivation registry for one token. It holds no mutable state beyond its
// dependencies; every method is safe for concurrent use.
type Service struct {
	client *solbc.Client
	config *Config
	logger *zap.Logger
}

// NewService builds a quote service for the token configured in cfg.
func NewService(client *solbc.Client, cfg *Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		config: cfg,
		logger: logger.Named("launchpad"),
	}
}

// Config exposes the per-token configuration the service was built with.
func (s *Service) Config() *Config {
	return s.config
}

// FetchCurveState fetches and decodes the bonding curve record.
func (s *Service) FetchCurveState(ctx context.Context) (*BondingCurveAccount, error) {
	data, err := s.client.GetAccountDataBytes(ctx, s.config.BondingCurve)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonding curve account: %w", err)
	}

	state, err := ParseBondingCurveAccount(data)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Fetched bonding curve state",
		zap.String("bonding_curve", s.config.BondingCurve.String()),
		zap.Uint64("virtual_sol", state.VirtualSolReserves),
		zap.Uint64("virtual_token", state.VirtualTokenReserves),
		zap.Uint64("real_sol", state.RealSolReserves),
		zap.Bool("complete", state.Complete))

	return state, nil
}

// FetchGlobalConfig fetches and decodes the protocol configuration record.
func (s *Service) FetchGlobalConfig(ctx context.Context) (*GlobalConfigAccount, error) {
	data, err := s.client.GetAccountDataBytes(ctx, s.config.GlobalConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get global config account: %w", err)
	}
	return ParseGlobalConfigAccount(data)
}

// fetchSnapshot loads the curve state and fee schedule in one batched read,
// so both accounts come out of a single RPC response at the same slot.
func (s *Service) fetchSnapshot(ctx context.Context) (*BondingCurveAccount, FeeConfig, error) {
	keys := []solana.PublicKey{s.config.BondingCurve, s.config.GlobalConfig}
	data, err := s.client.GetMultipleAccountDataBytes(ctx, keys)
	if err != nil {
		return nil, FeeConfig{}, fmt.Errorf("failed to fetch curve snapshot: %w", err)
	}
	if data[0] == nil {
		return nil, FeeConfig{}, fmt.Errorf("bonding curve %s: %w", s.config.BondingCurve, solbc.ErrAccountNotFound)
	}
	if data[1] == nil {
		return nil, FeeConfig{}, fmt.Errorf("global config %s: %w", s.config.GlobalConfig, solbc.ErrAccountNotFound)
	}

	curve, err := ParseBondingCurveAccount(data[0])
	if err != nil {
		return nil, FeeConfig{}, err
	}
	global, err := ParseGlobalConfigAccount(data[1])
	if err != nil {
		return nil, FeeConfig{}, err
	}

	return curve, global.FeeConfig(), nil
}

// QuoteBuy returns the full buy breakdown for solAmount lamports against
// the live curve snapshot.
func (s *Service) QuoteBuy(ctx context.Context, solAmount uint64) (*BuyQuote, error) {
	curve, feeCfg, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := CalculateTokensOut(solAmount, curve.Snapshot(), feeCfg)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Buy quote",
		zap.Uint64("sol_amount", solAmount),
		zap.Uint64("rate_bps", quote.RateBps),
		zap.Uint64("tokens_out", quote.TokensOut),
		zap.Uint64("tokens_to_user", quote.TokensToUser))

	return quote, nil
}

// QuoteSell returns the SOL output for selling tokenAmount base units.
// Sells carry no fee by design.
func (s *Service) QuoteSell(ctx context.Context, tokenAmount uint64) (uint64, error) {
	curve, err := s.FetchCurveState(ctx)
	if err != nil {
		return 0, err
	}
	return CalculateSolOut(tokenAmount, curve.Snapshot())
}

// AccountsForTrade derives the instruction account set for the configured
// mint and the given user.
func (s *Service) AccountsForTrade(user solana.PublicKey) (*TradeAccounts, error) {
	return DeriveTradeAccounts(s.config.ProgramID, s.config.Mint, user)
}
