// Command glm computes the accounting metrics of a general ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/glmetrics/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.LoadEnvFile()
	cmd.Complete()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogger()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
