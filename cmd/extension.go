package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables read by glm, and passed to its extensions.
const (
	EnvLedgerFile = "GLM_LEDGER_FILE"
	EnvVerbose    = "GLM_VERBOSE"
)

// ExtensionPrefix prefixes the name of the binaries extending glm.
const ExtensionPrefix = "glm-"

// RunExtension attempts to find and execute an external glm-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("no extension found", "name", name, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// Global flags are resolved and handed over as environment variables.
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+LedgerFile(),
		EnvVerbose+"="+strconv.FormatBool(verbose()),
	)

	slog.Debug("running extension", "path", lp, "args", args)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "An error occurred: cannot run %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
