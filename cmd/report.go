package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/glmetrics"
	"github.com/etnz/glmetrics/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	ledgerFlags
	raw bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the metrics of a ledger as a report" }
func (*reportCmd) Usage() string {
	return `glm report [-f <file>] [-select <jsonpath>] [-raw] [<file>]

  Same metrics as 'glm metrics', with the current assets and liabilities,
  rendered as a markdown report.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := c.decode(f)
	if err != nil {
		return fail(err)
	}
	s, err := glmetrics.Summarize(ledger)
	if err != nil {
		return fail(err)
	}

	md := renderer.SummaryMarkdown(s)
	if c.raw {
		fmt.Fprintln(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
