package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/jschlyter/custom-integrations-analytics/internal/integration/disk"
	"github.com/jschlyter/custom-integrations-analytics/internal/output"
)

const (
	reportFile = "custom_integrations.html"

	defaultTitle          = "Home Assistant Custom Integrations"
	defaultRepositoryName = "jschlyter/custom-integrations-analytics"
	defaultRepositoryURL  = "https://github.com/jschlyter/custom-integrations-analytics"
)

type reportOptions struct {
	pipeline       pipelineOptions
	outputPath     string
	templatePath   string
	title          string
	repositoryName string
	repositoryURL  string
	now            time.Time
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:   "report",
		Usage:  "Render the usage table as an HTML report",
		Flags:  reportFlags(),
		Action: reportAction,
	}
}

func reportFlags() []cli.Flag {
	return slices.Concat(datasetFlags(), []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report file, replaced if it exists",
			Value:   reportFile,
		},
		&cli.StringFlag{
			Name:    "template",
			Aliases: []string{"t"},
			Usage:   "html/template file for the report (default: built-in page)",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Report title",
			Value: defaultTitle,
		},
		&cli.StringFlag{
			Name:  "repository-name",
			Usage: "Repository name shown in the report footer",
			Value: defaultRepositoryName,
		},
		&cli.StringFlag{
			Name:  "repository-url",
			Usage: "Repository link shown in the report footer",
			Value: defaultRepositoryURL,
		},
	})
}

func reportAction(ctx context.Context, cmd *cli.Command) error {
	configureLogging(cmd)

	return runReport(ctx, reportOptions{
		pipeline:       pipelineOptionsFrom(cmd),
		outputPath:     cmd.String("output"),
		templatePath:   cmd.String("template"),
		title:          cmd.String("title"),
		repositoryName: cmd.String("repository-name"),
		repositoryURL:  cmd.String("repository-url"),
		now:            time.Now().UTC(),
	})
}

func runReport(ctx context.Context, opts reportOptions) error {
	content, err := renderReport(ctx, opts)
	if err != nil {
		return err
	}

	if err := disk.WriteFile(opts.outputPath, content); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Result written to %s\n", opts.outputPath)

	return nil
}

func renderReport(ctx context.Context, opts reportOptions) ([]byte, error) {
	report, err := loadReport(ctx, opts.pipeline)
	if err != nil {
		return nil, err
	}

	table, err := output.Table(report.Rows)
	if err != nil {
		return nil, err
	}

	page := &output.Page{
		Title:          opts.title,
		Table:          table,
		Now:            opts.now,
		RepositoryName: opts.repositoryName,
		RepositoryURL:  opts.repositoryURL,
		Stats:          report.Stats,
	}

	if opts.templatePath == "" {
		return output.Boilerplate(page), nil
	}

	tmpl, err := output.LoadTemplate(opts.templatePath)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	return tmpl.Render(page)
}
