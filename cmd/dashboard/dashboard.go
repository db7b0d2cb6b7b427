package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	logger "github.com/sirupsen/logrus"

	"polydash/src/poller"
	"polydash/src/ui"
)

// Dashboard runs the terminal UI against a running polydash server.
type Dashboard struct{}

func (d *Dashboard) Start() error {
	config := GetConfig()

	logger.WithFields(map[string]interface{}{
		"base_url":    config.BaseURL,
		"poll_period": config.PollPeriod,
	}).Info("starting dashboard")

	client := poller.NewClient(config.BaseURL)
	p := poller.NewPoller(client, config.TradeLimit)

	program := tea.NewProgram(
		ui.NewDashboard(p, config.PollPeriod),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		logger.WithError(err).Error("dashboard exited with error")
		return err
	}
	return nil
}
