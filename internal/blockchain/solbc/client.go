// =============================
// File: internal/blockchain/solbc/client.go
// =============================
package solbc

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

const requestTimeout = 5 * time.Second

var (
	// ErrAccountNotFound is returned when an account does not exist at the
	// queried commitment level.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmptyRPCList is returned when no endpoints are configured.
	ErrEmptyRPCList = errors.New("empty RPC list")
)

// IsAccountNotFoundError reports whether err indicates a missing account.
func IsAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrAccountNotFound) ||
		strings.Contains(strings.ToLower(err.Error()), "not found")
}

// Client is a thin read-only adapter over a pool of Solana RPC endpoints.
// It fetches account bytes; decoding belongs to the protocol packages.
type Client struct {
	rpcPool  *RPCPool
	logger   *zap.Logger
	retries  int
	rpcDelay time.Duration
}

// NewClient validates the endpoint list and builds a round-robin client.
// rpcDelayMs, in milliseconds, paces the retry backoff's first wait.
func NewClient(rpcList []string, retries, rpcDelayMs int, logger *zap.Logger) (*Client, error) {
	if len(rpcList) == 0 {
		return nil, ErrEmptyRPCList
	}
	for _, rpcURL := range rpcList {
		if _, err := url.Parse(rpcURL); err != nil {
			return nil, errors.New("invalid RPC URL: " + rpcURL)
		}
	}
	if retries <= 0 {
		retries = 3
	}
	if rpcDelayMs <= 0 {
		rpcDelayMs = 100
	}

	return &Client{
		rpcPool:  NewRPCPool(rpcList),
		logger:   logger.Named("solbc"),
		retries:  retries,
		rpcDelay: time.Duration(rpcDelayMs) * time.Millisecond,
	}, nil
}

// backOff returns the retry schedule: exponential, starting at the
// configured RPC delay.
func (c *Client) backOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.rpcDelay
	return bo
}

// CheckHealth probes every endpoint and reports how many respond.
func (c *Client) CheckHealth(ctx context.Context) int {
	healthy := c.rpcPool.HealthyClients(ctx)
	c.logger.Info("RPC endpoint health",
		zap.Int("healthy", healthy),
		zap.Int("total", c.rpcPool.Size()))
	return healthy
}

// GetAccountDataBytes fetches the raw binary contents of a single account,
// retrying transient RPC failures with exponential backoff.
func (c *Client) GetAccountDataBytes(ctx context.Context, pubkey solana.PublicKey) ([]byte, error) {
	operation := func() ([]byte, error) {
		cctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		accountInfo, err := c.rpcPool.GetClient().GetAccountInfoWithOpts(cctx, pubkey, &rpc.GetAccountInfoOpts{
			Commitment: rpc.CommitmentConfirmed,
			Encoding:   solana.EncodingBase64,
		})
		if err != nil {
			return nil, err
		}
		if accountInfo == nil || accountInfo.Value == nil {
			// Missing accounts are not transient; stop retrying.
			return nil, backoff.Permanent(ErrAccountNotFound)
		}
		return accountInfo.Value.Data.GetBinary(), nil
	}

	notify := func(err error, duration time.Duration) {
		c.logger.Debug("Retrying account fetch",
			zap.String("account", pubkey.String()),
			zap.Duration("backoff", duration),
			zap.Error(err))
	}

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.backOff()),
		backoff.WithMaxTries(uint(c.retries)),
		backoff.WithNotify(notify))
	if err != nil {
		c.logger.Error("GetAccountDataBytes failed",
			zap.String("account", pubkey.String()), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// GetMultipleAccountDataBytes fetches several accounts in one batch call,
// retrying transient failures like the single fetch. Missing accounts
// yield nil entries, mirroring the RPC response shape.
func (c *Client) GetMultipleAccountDataBytes(ctx context.Context, accounts []solana.PublicKey) ([][]byte, error) {
	operation := func() ([][]byte, error) {
		cctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		resp, err := c.rpcPool.GetClient().GetMultipleAccounts(cctx, accounts...)
		if err != nil {
			return nil, err
		}

		data := make([][]byte, len(accounts))
		for i, info := range resp.Value {
			if info != nil {
				data[i] = info.Data.GetBinary()
			}
		}
		return data, nil
	}

	notify := func(err error, duration time.Duration) {
		c.logger.Debug("Retrying batch account fetch",
			zap.Int("accounts", len(accounts)),
			zap.Duration("backoff", duration),
			zap.Error(err))
	}

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.backOff()),
		backoff.WithMaxTries(uint(c.retries)),
		backoff.WithNotify(notify))
	if err != nil {
		c.logger.Error("GetMultipleAccountDataBytes failed",
			zap.Int("accounts", len(accounts)), zap.Error(err))
		return nil, err
	}
	return data, nil
}
