package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"polydash/src/poller"
	"polydash/src/utils"
)

// refreshMsg fires when the refresh timer elapses.
type refreshMsg time.Time

// cycleDoneMsg reports a completed (or failed) poll cycle.
type cycleDoneMsg struct {
	err error
}

// Dashboard is the terminal view over the aggregation endpoints. The
// refresh timer is re-armed only after a cycle completes, so refreshes
// never overlap.
type Dashboard struct {
	poller          *poller.Poller
	refreshInterval time.Duration

	width  int
	height int

	tradesTable table.Model

	snapshot *poller.Snapshot
	stale    bool
	lastErr  error

	styles styles
}

func NewDashboard(p *poller.Poller, refreshInterval time.Duration) *Dashboard {
	columns := []table.Column{
		{Title: "Age", Width: 10},
		{Title: "Trader", Width: 14},
		{Title: "Action", Width: 6},
		{Title: "Amount", Width: 10},
		{Title: "Price", Width: 8},
		{Title: "Market", Width: 32},
	}

	tradesTable := table.New(
		table.WithColumns(columns),
		table.WithHeight(14),
		table.WithFocused(true),
	)

	return &Dashboard{
		poller:          p,
		refreshInterval: refreshInterval,
		tradesTable:     tradesTable,
		styles:          defaultStyles(),
	}
}

func (d *Dashboard) Init() tea.Cmd {
	return d.fetch()
}

func (d *Dashboard) fetch() tea.Cmd {
	return func() tea.Msg {
		_, err := d.poller.Tick(context.Background())
		return cycleDoneMsg{err: err}
	}
}

func (d *Dashboard) scheduleRefresh() tea.Cmd {
	return tea.Tick(d.refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return d, tea.Quit
		}
		var cmd tea.Cmd
		d.tradesTable, cmd = d.tradesTable.Update(msg)
		return d, cmd

	case refreshMsg:
		return d, d.fetch()

	case cycleDoneMsg:
		snapshot, stale := d.poller.State()
		d.snapshot = snapshot
		d.stale = stale
		d.lastErr = msg.err
		if snapshot != nil {
			d.tradesTable.SetRows(d.feedRows())
		}
		return d, d.scheduleRefresh()
	}

	return d, nil
}

func (d *Dashboard) feedRows() []table.Row {
	now := time.Now()
	feed := poller.TradeFeed(d.snapshot.Trades)

	rows := make([]table.Row, 0, len(feed))
	for _, entry := range feed {
		amount := "-"
		if entry.AmountUsd != nil {
			amount = fmt.Sprintf("$%.2f", *entry.AmountUsd)
		}
		price := "-"
		if entry.Price != nil {
			price = fmt.Sprintf("%.3f", *entry.Price)
		}

		rows = append(rows, table.Row{
			utils.RelativeAge(entry.Timestamp, now),
			utils.ShortAddress(entry.Trader),
			entry.Action,
			amount,
			price,
			entry.Market,
		})
	}
	return rows
}

func (d *Dashboard) View() string {
	if d.snapshot == nil {
		if d.stale {
			return d.styles.error.Render(
				"Unable to load live data. Check dashboard env + store connectivity.",
			) + "\n" + d.styles.muted.Render("retrying... press q to quit")
		}
		return d.styles.muted.Render("Connecting...")
	}

	var b strings.Builder

	b.WriteString(d.styles.title.Render("Polybot Dashboard"))
	b.WriteString("\n")
	b.WriteString(d.renderStatusLine())
	b.WriteString("\n")

	if d.stale {
		b.WriteString(d.styles.warning.Render(
			"⚠ live data unavailable, showing last snapshot from " +
				d.snapshot.FetchedAt.Format("15:04:05"),
		))
		b.WriteString("\n")
	}

	feedPane := d.styles.pane.Render(
		d.styles.header.Render("Recent Trades") + "\n" + d.tradesTable.View(),
	)
	rosterPane := d.styles.pane.Render(
		d.styles.header.Render("Traders") + "\n" + d.renderRoster(),
	)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, feedPane, rosterPane))
	b.WriteString("\n")
	b.WriteString(d.styles.muted.Render("q quit • refresh every " + d.refreshInterval.String()))

	return b.String()
}

func (d *Dashboard) renderStatusLine() string {
	status := d.snapshot.Status

	running := d.styles.error.Render("● STOPPED")
	if status.Bot.IsRunning {
		running = d.styles.success.Render("● RUNNING")
	}

	preview := "preview: —"
	if status.Bot.PreviewMode != nil {
		if *status.Bot.PreviewMode {
			preview = "preview: ON"
		} else {
			preview = "preview: OFF"
		}
	}

	lastSeen := "never"
	if status.Bot.LastSeenAt != nil {
		lastSeen = utils.RelativeAge(*status.Bot.LastSeenAt, time.Now())
	}

	return d.styles.status.Render(fmt.Sprintf(
		"%s  last seen %s  •  %d traders  •  %d trades 24h  •  %s  •  proxy %s",
		running,
		lastSeen,
		status.Tracking.TradersTracked,
		status.Tracking.TradeCount24h,
		preview,
		utils.ShortAddress(status.Config.ProxyWallet),
	))
}

func (d *Dashboard) renderRoster() string {
	roster := poller.TraderRoster(d.snapshot.Positions)
	if len(roster) == 0 {
		return d.styles.muted.Render("no traders")
	}

	var b strings.Builder
	for i, entry := range roster {
		if i > 0 {
			b.WriteString("\n")
		}

		pnl := fmt.Sprintf("%+.2f", entry.Pnl)
		styled := d.styles.success.Render(pnl)
		if entry.Pnl < 0 {
			styled = d.styles.error.Render(pnl)
		}

		b.WriteString(fmt.Sprintf("%s  %s", utils.ShortAddress(entry.Address), styled))
	}
	return b.String()
}
