package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/divsheet/xlsx"
	"github.com/google/subcommands"
)

type initCmd struct {
	currency string
	sheet    string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create an empty tracker workbook" }
func (*initCmd) Usage() string {
	return `divsheet init [-currency <currency>] [-sheet <sheet>] <workbook>

  Creates a tracker workbook with the named ranges and column headers a refresh needs.
  An existing file is never overwritten.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "USD", "Target currency, TICKER CURRENCY to keep each ticker's own.")
	f.StringVar(&c.sheet, "sheet", xlsx.DefaultSheet, "Tracker sheet name.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: init requires the workbook path")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %q already exists\n", path)
		return subcommands.ExitFailure
	}
	wb, err := xlsx.Create(path, c.sheet, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	wb.Close()
	fmt.Printf("Created %s, list your tickers below the Ticker header.\n", path)
	return subcommands.ExitSuccess
}
