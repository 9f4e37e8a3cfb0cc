package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"watchtune/internal/cli"
	"watchtune/internal/client"
	"watchtune/internal/constants"
	"watchtune/internal/logger"
	"watchtune/internal/notifier"
	"watchtune/internal/notify"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Base URL of the monitoring backend." env:"WATCHTUNE_SERVER" default:"${server_url}"`
	Debug   bool   `help:"Enable debug logging."`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive settings console." default:"1"`
	Show   cli.ShowCmd   `cmd:"" help:"Print the current settings document."`
	Set    cli.SetCmd    `cmd:"" help:"Update settings from flags."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks against the settings backend."`
	Serve  cli.ServeCmd  `cmd:"" help:"Run a local dev settings backend."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Operator console for monitoring pipeline settings"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"server_url": constants.DefaultServerURL,
		},
	)

	if configDir, err := os.UserConfigDir(); err == nil {
		if err := logger.Init(logger.Config{
			Debug:     CLI.Debug,
			ConfigDir: filepath.Join(configDir, constants.AppName),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
	}

	appCtx := &cli.Context{
		Client:    client.New(CLI.Server),
		Sink:      notify.Multi{notify.WriterSink{W: os.Stdout}, notifier.New()},
		ServerURL: CLI.Server,
		Debug:     CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
