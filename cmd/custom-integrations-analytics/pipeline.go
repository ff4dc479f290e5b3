package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	analytics "github.com/jschlyter/custom-integrations-analytics"
	"github.com/jschlyter/custom-integrations-analytics/internal/dataset"
)

const (
	analyticsURL  = "https://analytics.home-assistant.io/custom_integrations.json"
	analyticsFile = "custom_integrations.json"

	hacsDataURL  = "https://data-v2.hacs.xyz/integration/data.json"
	hacsDataFile = "hacs_data.json"
)

// pipelineOptions locates the datasets a report is built from.
type pipelineOptions struct {
	usagePath string
	usageURL  string
	hacsPath  string
	hacsURL   string
	enrich    bool
	persist   bool
}

func datasetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Usage: "Usage dataset URL, fetched when the input file does not exist",
			Value: analyticsURL,
		},
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Usage dataset file",
			Value:   analyticsFile,
		},
		&cli.StringFlag{
			Name:  "hacs-url",
			Usage: "HACS integration dataset URL, fetched when the HACS input file does not exist",
			Value: hacsDataURL,
		},
		&cli.StringFlag{
			Name:  "hacs-input",
			Usage: "HACS integration dataset file",
			Value: hacsDataFile,
		},
		&cli.BoolFlag{
			Name:  "no-enrich",
			Usage: "Do not link integrations to their HACS repositories",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "Save fetched datasets to their input files for later runs",
		},
	}
}

func pipelineOptionsFrom(cmd *cli.Command) pipelineOptions {
	return pipelineOptions{
		usagePath: cmd.String("input"),
		usageURL:  cmd.String("url"),
		hacsPath:  cmd.String("hacs-input"),
		hacsURL:   cmd.String("hacs-url"),
		enrich:    !cmd.Bool("no-enrich"),
		persist:   cmd.Bool("save"),
	}
}

func loadReport(ctx context.Context, opts pipelineOptions) (*analytics.Report, error) {
	readOpts := dataset.ReadOptions{Persist: opts.persist}

	records, err := dataset.LoadUsage(ctx, opts.usagePath, opts.usageURL, readOpts)
	if err != nil {
		return nil, fmt.Errorf("loading usage dataset: %w", err)
	}

	var integrations []analytics.Integration

	if opts.enrich {
		integrations, err = dataset.LoadIntegrations(ctx, opts.hacsPath, opts.hacsURL, readOpts)
		if err != nil {
			return nil, fmt.Errorf("loading HACS dataset: %w", err)
		}
	}

	return analytics.Build(records, integrations), nil
}
