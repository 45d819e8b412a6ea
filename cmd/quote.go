package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/divsheet"
	"github.com/etnz/divsheet/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type quoteCmd struct {
	currency string
	provider string
	cells    bool
}

func (*quoteCmd) Name() string { return "quote" }
func (*quoteCmd) Synopsis() string {
	return "pull and display ticker data without touching the workbook"
}
func (*quoteCmd) Usage() string {
	return `divsheet quote [-currency <currency>] [-provider yahoo|eodhd] [-cells] <ticker>...

  Pulls the data of the given tickers, exactly as a refresh would, and displays it.
  With -cells, prints the cells a refresh would write for these tickers listed from row 1.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", divsheet.TickerCurrency, "Target currency.")
	f.StringVar(&c.provider, "provider", "", "Data provider (yahoo, eodhd). Overrides the provider configuration key.")
	f.BoolVar(&c.cells, "cells", false, "Print the cells a refresh would write.")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := f.Args()
	if len(tickers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	override(&cfg.Provider, c.provider)
	log := newLogger(uuid.New())
	provider, err := cfg.newProvider(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	puller := &divsheet.Puller{Provider: provider, Log: log}
	batch, failures := puller.Pull(ctx, tickers, c.currency)

	if c.cells {
		if err := printCells(batch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.RecordsMarkdown(batch, c.currency))
	}

	if len(failures) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printCells writes batch in a scratch sheet and prints every written cell.
func printCells(batch divsheet.Batch) error {
	sheet := divsheet.NewMemSheet()
	if err := divsheet.Write(sheet, batch, 1); err != nil {
		return err
	}
	for row := 1; row <= len(batch); row++ {
		for _, field := range divsheet.OutputFields() {
			v := sheet.Get(row, divsheet.ColumnOf(field))
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(divsheet.ColumnOf(field), row)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%v\n", cell, v)
		}
	}
	return nil
}
