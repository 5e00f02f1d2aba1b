package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/arcasol/launchkit/internal/blockchain/solbc"
	"github.com/arcasol/launchkit/internal/config"
	"github.com/arcasol/launchkit/internal/cpswap"
	"github.com/arcasol/launchkit/internal/launchpad"
	"github.com/arcasol/launchkit/internal/logger"
)

func main() {
	var (
		configPath = flag.String("config", "configs/config.json", "Path to config file")
		mintFlag   = flag.String("mint", "", "Token mint (overrides config)")
		solFlag    = flag.String("sol", "1", "SOL amount to quote a buy for")
		userFlag   = flag.String("user", "", "Optional user wallet to derive trade accounts for")
		migration  = flag.Bool("migration", false, "Print the CP-Swap migration account set")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.LogFile = cfg.LogFile
	logCfg.Development = cfg.DebugLogging
	appLogger, err := logger.New(logCfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	mint := cfg.Mint
	if *mintFlag != "" {
		mint = *mintFlag
	}
	if mint == "" {
		fmt.Fprintln(os.Stderr, "no token mint given: set -mint or the config's mint field")
		os.Exit(1)
	}

	lpCfg := launchpad.GetDefaultConfig()
	if err := lpCfg.SetupForToken(mint, appLogger.WithComponent("setup")); err != nil {
		appLogger.Error("Failed to set up token", zap.Error(err))
		os.Exit(1)
	}

	if *migration {
		printMigration(lpCfg.Mint)
		return
	}

	solAmount, err := parseSolAmount(*solFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -sol amount: %v\n", err)
		os.Exit(1)
	}

	client, err := solbc.NewClient(cfg.RPCList, cfg.Retries, cfg.RPCDelay, appLogger.Logger)
	if err != nil {
		appLogger.Error("Failed to create RPC client", zap.Error(err))
		os.Exit(1)
	}

	svc := launchpad.NewService(client, lpCfg, appLogger.WithOperation("quote"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	quote, err := svc.QuoteBuy(ctx, solAmount)
	if err != nil {
		if solbc.IsAccountNotFoundError(err) {
			fmt.Fprintln(os.Stderr, "bonding curve not found: token is not on the launchpad or has migrated")
			os.Exit(1)
		}
		appLogger.Error("Quote failed", zap.Error(err))
		os.Exit(1)
	}

	printQuote(quote)

	if *userFlag != "" {
		user, err := solana.PublicKeyFromBase58(*userFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -user wallet: %v\n", err)
			os.Exit(1)
		}
		accounts, err := svc.AccountsForTrade(user)
		if err != nil {
			appLogger.Error("Account derivation failed", zap.Error(err))
			os.Exit(1)
		}
		printAccounts(accounts)
	}
}

// parseSolAmount converts a decimal SOL string to lamports, rejecting
// sub-lamport precision instead of silently rounding.
func parseSolAmount(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative")
	}
	lamports := d.Shift(launchpad.SolDecimals)
	if !lamports.IsInteger() {
		return 0, fmt.Errorf("amount has sub-lamport precision")
	}
	return uint64(lamports.IntPart()), nil
}

func formatSol(lamports uint64) string {
	return decimal.NewFromUint64(lamports).Shift(-launchpad.SolDecimals).String() + " SOL"
}

func formatTokens(units uint64) string {
	return decimal.NewFromUint64(units).Shift(-launchpad.TokenDecimals).String()
}

func printQuote(q *launchpad.BuyQuote) {
	fmt.Printf("Buy quote for %s\n", formatSol(q.SolAmount))
	fmt.Printf("  protocol fee:        %s\n", formatSol(q.ProtocolFee))
	fmt.Printf("  treasury flat fee:   %s\n", formatSol(q.TreasuryFlatFee))
	fmt.Printf("  treasury rate:       %d bps\n", q.RateBps)
	fmt.Printf("  treasury split:      %s\n", formatSol(q.SolToTreasurySplit))
	fmt.Printf("  treasury total:      %s\n", formatSol(q.SolToTreasuryTotal))
	fmt.Printf("  to curve:            %s\n", formatSol(q.SolToCurve))
	fmt.Printf("  tokens out:          %s\n", formatTokens(q.TokensOut))
	fmt.Printf("  tokens to user:      %s\n", formatTokens(q.TokensToUser))
	fmt.Printf("  tokens to community: %s\n", formatTokens(q.TokensToCommunity))
}

func printAccounts(a *launchpad.TradeAccounts) {
	fmt.Println("Trade accounts")
	fmt.Printf("  global config:       %s\n", a.GlobalConfig)
	fmt.Printf("  bonding curve:       %s\n", a.BondingCurve)
	fmt.Printf("  curve token account: %s\n", a.CurveTokenAccount)
	fmt.Printf("  mint treasury:       %s\n", a.MintTreasury)
	fmt.Printf("  protocol treasury:   %s\n", a.ProtocolTreasury)
	fmt.Printf("  position:            %s\n", a.Position)
	fmt.Printf("  user stats:          %s\n", a.UserStats)
	fmt.Printf("  event authority:     %s\n", a.EventAuthority)
}

func printMigration(mint solana.PublicKey) {
	accounts, err := cpswap.DeriveMigrationAccounts(mint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "migration derivation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("CP-Swap migration accounts for %s\n", mint)
	fmt.Printf("  token0:            %s\n", accounts.Token0)
	fmt.Printf("  token1:            %s\n", accounts.Token1)
	fmt.Printf("  amm config:        %s\n", accounts.AmmConfig)
	fmt.Printf("  pool authority:    %s\n", accounts.PoolAuthority)
	fmt.Printf("  pool state:        %s\n", accounts.PoolState)
	fmt.Printf("  lp mint:           %s\n", accounts.LpMint)
	fmt.Printf("  token0 vault:      %s\n", accounts.Token0Vault)
	fmt.Printf("  token1 vault:      %s\n", accounts.Token1Vault)
	fmt.Printf("  observation state: %s\n", accounts.ObservationState)
	fmt.Printf("  fee receiver:      %s\n", accounts.CreatePoolFeeReceiver)
}
