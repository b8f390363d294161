package cmd

import (
	"github.com/google/subcommands"
)

// Commands are the glm commands working on a ledger, in display order.
var Commands = []subcommands.Command{
	&metricsCmd{},
	&reportCmd{},
	&checkCmd{},
	&normalizeCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "ledger")
	}
	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// IsCommand reports whether name is a glm command, built-in or not.
func IsCommand(name string) bool {
	switch name {
	case "topic", "help", "flags", "commands":
		return true
	}
	for _, cmd := range Commands {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}
