package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/glmetrics"
	"github.com/google/subcommands"
)

type checkCmd struct {
	ledgerFlags
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validates a ledger against the ledger schema"
}
func (*checkCmd) Usage() string {
	return `glm check [-f <file>] [-select <jsonpath>] [<file>]

  Reads a ledger, rewrites its keys to camelCase and validates it. Every
  schema violation is printed on its own line, as <path>: <problem>.

Usage Examples:
# Checks the default ledger file.
$ glm check

# Checks the ledger embedded in an API response.
$ glm check -select '$.payload.ledger' response.json
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := c.decode(f)
	var verr *glmetrics.ValidationError
	if errors.As(err, &verr) {
		for _, issue := range verr.Issues {
			fmt.Fprintln(stdout, issue)
		}
		return subcommands.ExitFailure
	}
	if err != nil {
		return fail(err)
	}

	fmt.Fprintf(stdout, "valid ledger: %d entries in %s on %s\n", len(ledger.Data), ledger.Currency, ledger.BalanceDate)
	return subcommands.ExitSuccess
}
