package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/glmetrics"
	"github.com/etnz/glmetrics/renderer"
	"github.com/google/subcommands"
)

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	ledgerFlags
	json bool
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "compute the accounting metrics of a ledger" }
func (*metricsCmd) Usage() string {
	return `glm metrics [-f <file>] [-select <jsonpath>] [-json] [<file>]

  Reads a general ledger, validates it, and prints its revenue, expenses,
  gross profit margin, net profit margin and working capital ratio.

  Either all five metrics are printed, or a single error line.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the metrics as a JSON object.")
}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := c.decode(f)
	if err != nil {
		return fail(err)
	}
	s, err := glmetrics.Summarize(ledger)
	if err != nil {
		return fail(err)
	}

	if c.json {
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fail(err)
		}
		fmt.Fprintln(stdout, string(b))
		return subcommands.ExitSuccess
	}

	if err := renderer.Lines(stdout, s); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
