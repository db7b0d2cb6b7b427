package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"polydash/cmd/dashboard"
	"polydash/src/server"
)

var Version string

func main() {
	app := cli.NewApp()
	app.Name = "Polydash CMD"
	app.Usage = "The Polydash command line interface"

	app.Commands = []cli.Command{
		serverCMD,
		dashboardCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	serverCMD = cli.Command{
		Name:        "server",
		Usage:       "run the aggregation API server",
		Action:      serverAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Serve /status, /trades, /positions and /ws over the bot's store`,
	}
	dashboardCMD = cli.Command{
		Name:        "dashboard",
		Usage:       "run the terminal dashboard",
		Action:      dashboardAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Poll a running polydash server and render the live dashboard`,
	}
)

func serverAction(_ *cli.Context) error {
	logrus.Info("Starting server CMD")

	if err := server.Run(); err != nil {
		logrus.WithError(err).Error("Starting cmd")
		return err
	}
	return nil
}

func dashboardAction(_ *cli.Context) error {
	logrus.Info("Starting dashboard CMD")

	d := &dashboard.Dashboard{}
	if err := d.Start(); err != nil {
		logrus.WithError(err).Error("Starting cmd")
		return err
	}
	return nil
}
