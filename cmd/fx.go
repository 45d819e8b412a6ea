package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/divsheet"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type fxCmd struct {
	provider string
}

func (*fxCmd) Name() string     { return "fx" }
func (*fxCmd) Synopsis() string { return "display the conversion rate between two currencies" }
func (*fxCmd) Usage() string {
	return `divsheet fx [-provider yahoo|eodhd] <from> <to>

  Displays the rate a refresh would use to convert prices in <from> currency into <to>.
`
}

func (c *fxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.provider, "provider", "", "Data provider (yahoo, eodhd). Overrides the provider configuration key.")
}

func (c *fxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: fx requires a source and a target currency")
		return subcommands.ExitUsageError
	}
	from, to := strings.ToUpper(f.Arg(0)), strings.ToUpper(f.Arg(1))

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

	rate, err := divsheet.NewConverter(provider, log).ConversionRate(ctx, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("1 %s = %s %s\n", from, rate, to)
	return subcommands.ExitSuccess
}
