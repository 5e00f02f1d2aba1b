package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/arcasol/launchkit/internal/blockchain/solbc"
	"github.com/arcasol/launchkit/internal/config"
	"github.com/arcasol/launchkit/internal/launchpad"
	"github.com/arcasol/launchkit/internal/logger"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type tickMsg time.Time

type snapshotMsg struct {
	state *launchpad.BondingCurveAccount
	price float64
	rate  uint64
	err   error
}

type model struct {
	svc      *launchpad.Service
	interval time.Duration

	spinner  spinner.Model
	progress progress.Model

	snapshot *launchpad.BondingCurveAccount
	price    float64
	rate     uint64
	fetchErr error
	updated  time.Time
}

func newModel(svc *launchpad.Service, interval time.Duration) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	return model{
		svc:      svc,
		interval: interval,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch pulls a fresh curve snapshot and precomputes the display values.
func (m model) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		state, err := m.svc.FetchCurveState(ctx)
		if err != nil {
			return snapshotMsg{err: err}
		}

		price, err := launchpad.TokenPrice(state.Snapshot())
		if err != nil {
			return snapshotMsg{err: err}
		}

		target, err := launchpad.ResolveBondingTarget(state.BondingTarget)
		if err != nil {
			return snapshotMsg{err: err}
		}
		rate, err := launchpad.DynamicTreasuryRate(state.RealSolReserves, target)
		if err != nil {
			return snapshotMsg{err: err}
		}

		return snapshotMsg{state: state, price: price, rate: rate}
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 24
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tickMsg:
		return m, m.fetch()

	case snapshotMsg:
		if msg.err != nil {
			m.fetchErr = msg.err
		} else {
			m.snapshot = msg.state
			m.price = msg.price
			m.rate = msg.rate
			m.fetchErr = nil
			m.updated = time.Now()
		}
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	header := titleStyle.Render("launchkit watch") + "  " +
		valueStyle.Render(m.svc.Config().Mint.String()) + "\n\n"

	if m.snapshot == nil {
		if m.fetchErr != nil {
			return header + errStyle.Render("fetch failed: "+m.fetchErr.Error()) + "\n"
		}
		return header + m.spinner.View() + " fetching curve state...\n"
	}

	pct := launchpad.BondingProgress(m.snapshot.RealSolReserves)

	rows := []string{
		row("price", fmt.Sprintf("%.12f SOL", m.price)),
		row("real SOL", fmt.Sprintf("%.4f", float64(m.snapshot.RealSolReserves)/1e9)),
		row("treasury rate", fmt.Sprintf("%d bps", m.rate)),
		row("progress", fmt.Sprintf("%.2f%%", pct)),
		"  " + m.progress.ViewAs(pct/100),
		row("updated", m.updated.Format("15:04:05")),
	}
	if m.snapshot.Complete {
		rows = append(rows, row("status", "bonded — migrated to CP-Swap"))
	}
	if m.fetchErr != nil {
		rows = append(rows, errStyle.Render("  last fetch failed: "+m.fetchErr.Error()))
	}

	body := ""
	for _, r := range rows {
		body += r + "\n"
	}
	return header + body + "\n" + labelStyle.Render("  q to quit") + "\n"
}

func row(label, value string) string {
	return "  " + labelStyle.Render(label) + valueStyle.Render(value)
}

func main() {
	var (
		configPath = flag.String("config", "configs/config.json", "Path to config file")
		mintFlag   = flag.String("mint", "", "Token mint (overrides config)")
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

	client, err := solbc.NewClient(cfg.RPCList, cfg.Retries, cfg.RPCDelay, appLogger.Logger)
	if err != nil {
		appLogger.Error("Failed to create RPC client", zap.Error(err))
		os.Exit(1)
	}

	healthCtx, cancelHealth := context.WithTimeout(context.Background(), 10*time.Second)
	healthy := client.CheckHealth(healthCtx)
	cancelHealth()
	if healthy == 0 {
		appLogger.Error("No responsive RPC endpoints")
		os.Exit(1)
	}

	svc := launchpad.NewService(client, lpCfg, appLogger.WithOperation("watch"))
	interval := time.Duration(cfg.WatchInterval) * time.Millisecond

	if _, err := tea.NewProgram(newModel(svc, interval), tea.WithAltScreen()).Run(); err != nil {
		appLogger.Error("Watch TUI failed", zap.Error(err))
		os.Exit(1)
	}
}
