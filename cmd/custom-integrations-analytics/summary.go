package main

import (
	"context"
	"os"
	"slices"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/jschlyter/custom-integrations-analytics/internal/output"
)

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Print usage statistics and the most used integrations",
		Flags: slices.Concat(datasetFlags(), []cli.Flag{
			&cli.IntFlag{
				Name:    "top",
				Aliases: []string{"n"},
				Usage:   "Number of integrations to list (0 = all)",
				Value:   20,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
			&cli.BoolFlag{
				Name:    "raw",
				Aliases: []string{"R"},
				Usage:   "Print unformatted numbers and links",
			},
		}),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configureLogging(cmd)

			return runSummary(ctx, pipelineOptionsFrom(cmd), cmd.Int("top"), cmd.String("format"), cmd.Bool("raw"))
		},
	}
}

//nolint:wrapcheck
func runSummary(ctx context.Context, opts pipelineOptions, top int, formatName string, raw bool) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	report, err := loadReport(ctx, opts)
	if err != nil {
		return err
	}

	var meta map[string]any
	if raw {
		meta = output.ReportToMap(report, top)
	} else {
		meta = output.ReportToFriendlyMap(report, top)
	}

	data := &format.Data{
		Object: "custom integrations",
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
