package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/divsheet"
	"github.com/etnz/divsheet/renderer"
	"github.com/etnz/divsheet/xlsx"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type refreshCmd struct {
	workbook string
	sheet    string
	provider string
	dryRun   bool
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "refresh the tracker workbook with fresh market data" }
func (*refreshCmd) Usage() string {
	return `divsheet refresh [-w <workbook>] [-sheet <sheet>] [-provider yahoo|eodhd] [-dry-run]

  Reads the tickers of the tracker sheet, pulls fresh prices and dividend data, and
  writes them back next to each ticker. Tickers that cannot be pulled get an empty row.

  The workbook is saved unless -dry-run is set or the refresh failed.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.workbook, "w", "", "Tracker workbook. Overrides the workbook configuration key.")
	f.StringVar(&c.sheet, "sheet", "", "Tracker sheet. Overrides the sheet configuration key.")
	f.StringVar(&c.provider, "provider", "", "Data provider (yahoo, eodhd). Overrides the provider configuration key.")
	f.BoolVar(&c.dryRun, "dry-run", false, "Refresh without saving the workbook.")
}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	override(&cfg.Workbook, c.workbook)
	override(&cfg.Sheet, c.sheet)
	override(&cfg.Provider, c.provider)

	id := uuid.New()
	log := newLogger(id)
	log.Info().Msg(renderer.Banner)

	provider, err := cfg.newProvider(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	wb, err := xlsx.Open(cfg.Workbook, cfg.Sheet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer wb.Close()

	r := &divsheet.Refresher{RunID: id, Sheet: wb, Provider: provider, Log: log}
	report, err := r.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("refresh failed, the workbook is left unsaved")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.dryRun {
		log.Info().Str("workbook", wb.Path()).Msg("dry run, the workbook is not saved")
	} else if err := wb.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RefreshMarkdown(report))
	fmt.Println("Program ran successfully!")
	return subcommands.ExitSuccess
}
