// Package cmd implements the glm command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/glmetrics"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// DefaultLedgerFile is the ledger source used when neither -ledger-file nor
// GLM_LEDGER_FILE is set.
const DefaultLedgerFile = "data.json"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Ledger source: a JSON or YAML file, or - for stdin. Defaults to $"+EnvLedgerFile+" or "+DefaultLedgerFile+".")
var Verbose = flag.Bool("v", false, "Log the pipeline steps on stderr. Defaults to $"+EnvVerbose+".")

// Output of the commands, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LoadEnvFile loads a .env file from the working directory into the
// environment. The file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LedgerFile returns the ledger source commands read by default.
func LedgerFile() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if name := os.Getenv(EnvLedgerFile); name != "" {
		return name
	}
	return DefaultLedgerFile
}

// verbose reports whether debug logs are enabled, by flag or by environment.
func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// SetupLogger installs the default logger. Logs go to stderr so they never
// mix with a command output.
func SetupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// DecodeLedger reads, normalizes and validates the ledger of a command.
// An empty file means the application default.
func DecodeLedger(file, path string) (*glmetrics.Ledger, error) {
	if file == "" {
		file = LedgerFile()
	}
	return glmetrics.LoadLedger(file, path)
}

// fail prints the single error line of a failed run.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "An error occurred: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, or prints it as is if it
// cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	slog.Debug("cannot render markdown", "error", err)
	fmt.Fprint(stdout, md)
}

// ledgerFlags are the flags shared by the commands reading a ledger.
type ledgerFlags struct {
	file       string
	selectPath string
}

func (l *ledgerFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&l.file, "f", "", "Ledger source, overrides -ledger-file.")
	f.StringVar(&l.selectPath, "select", "", "JSONPath to the ledger inside the source, e.g. $.payload.ledger.")
}

// decode reads the ledger of a command. A single argument is accepted in place
// of -f.
func (l *ledgerFlags) decode(f *flag.FlagSet) (*glmetrics.Ledger, error) {
	file, err := l.source(f)
	if err != nil {
		return nil, err
	}
	return DecodeLedger(file, l.selectPath)
}

func (l *ledgerFlags) source(f *flag.FlagSet) (string, error) {
	switch {
	case f.NArg() == 0:
		return l.file, nil
	case f.NArg() == 1 && l.file == "":
		return f.Arg(0), nil
	default:
		return "", fmt.Errorf("expected at most one ledger source, got %q", f.Args())
	}
}
