package main

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/jschlyter/custom-integrations-analytics/version"
)

func main() {
	ctx := context.Background()

	if err := rootCommand().Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}

// rootCommand runs the report when no subcommand is given, so it accepts the report flags itself.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    version.Name(),
		Usage:   "Report usage of Home Assistant custom integrations",
		Version: version.Version() + " " + version.Commit(),
		Flags: slices.Concat([]cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "Enable debug logging",
			},
		}, localFlags(reportFlags())),
		Action: reportAction,
		Commands: []*cli.Command{
			reportCommand(),
			summaryCommand(),
		},
	}
}

// localFlags keeps flags off the subcommands, which declare their own.
func localFlags(flags []cli.Flag) []cli.Flag {
	for _, flag := range flags {
		switch typed := flag.(type) {
		case *cli.StringFlag:
			typed.Local = true
		case *cli.BoolFlag:
			typed.Local = true
		}
	}

	return flags
}

func configureLogging(cmd *cli.Command) {
	if cmd.Bool("debug") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}
