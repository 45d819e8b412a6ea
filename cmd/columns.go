package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/divsheet"
	"github.com/etnz/divsheet/xlsx"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/xuri/excelize/v2"
)

type columnsCmd struct{}

func (*columnsCmd) Name() string     { return "columns" }
func (*columnsCmd) Synopsis() string { return "display the columns of the tracker sheet" }
func (*columnsCmd) Usage() string {
	return `divsheet columns

  Displays the column of each field of the tracker sheet. Every column but the ticker
  is cleared and rewritten by a refresh.
`
}

func (c *columnsCmd) SetFlags(f *flag.FlagSet) {}

func (c *columnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, err := columnsMarkdown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(out)
	return subcommands.ExitSuccess
}

func columnsMarkdown() (string, error) {
	var rows [][]string
	for _, field := range divsheet.Fields() {
		col, err := excelize.ColumnNumberToName(divsheet.ColumnOf(field))
		if err != nil {
			return "", err
		}
		role := "output"
		if field == divsheet.Ticker {
			role = "input"
		}
		rows = append(rows, []string{col, field.String(), xlsx.Header(field), role})
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Tracker columns")
	doc.Table(md.TableSet{Header: []string{"Column", "Field", "Header", "Role"}, Rows: rows})
	return doc.String(), nil
}
