package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/glmetrics"
	"github.com/google/subcommands"
)

type normalizeCmd struct {
	ledgerFlags
}

func (*normalizeCmd) Name() string     { return "normalize" }
func (*normalizeCmd) Synopsis() string { return "print a document with camelCase keys" }
func (*normalizeCmd) Usage() string {
	return `glm normalize [-f <file>] [-select <jsonpath>] [<file>]

  Prints the source document as indented JSON, with every object key
  rewritten from snake_case or kebab-case to camelCase. Values are left
  untouched and the document is not validated.
`
}

func (c *normalizeCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
}

func (c *normalizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := c.source(f)
	if err != nil {
		return fail(err)
	}
	if file == "" {
		file = LedgerFile()
	}

	raw, err := glmetrics.ReadSource(file)
	if err != nil {
		return fail(err)
	}
	doc, err := glmetrics.Select(raw, c.selectPath)
	if err != nil {
		return fail(err)
	}

	b, err := json.MarshalIndent(glmetrics.Normalize(doc), "", "  ")
	if err != nil {
		return fail(fmt.Errorf("cannot encode %q as JSON: %w", file, err))
	}
	fmt.Fprintln(stdout, string(b))
	return subcommands.ExitSuccess
}
