package cmd

import (
	"github.com/etnz/glmetrics/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes glm commands and flags for shell completion.
func Completion() *complete.Command {
	files := predict.Files("*")

	ledgerCmd := func(flags map[string]complete.Predictor) *complete.Command {
		c := &complete.Command{
			Flags: map[string]complete.Predictor{
				"f":      files,
				"select": predict.Something,
			},
			Args: files,
		}
		for name, p := range flags {
			c.Flags[name] = p
		}
		return c
	}

	topics, _ := docs.All()
	topics = append(topics, "readme")

	sub := map[string]*complete.Command{
		"metrics":   ledgerCmd(map[string]complete.Predictor{"json": predict.Nothing}),
		"report":    ledgerCmd(map[string]complete.Predictor{"raw": predict.Nothing}),
		"check":     ledgerCmd(nil),
		"normalize": ledgerCmd(nil),
		"topic": {
			Flags: map[string]complete.Predictor{"list": predict.Nothing, "raw": predict.Nothing},
			Args:  predict.Set(topics),
		},
		"help":     {Args: predict.Set(commandNames())},
		"flags":    {},
		"commands": {},
	}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"ledger-file": files,
			"v":           predict.Nothing,
		},
	}
}

func commandNames() []string {
	names := []string{"topic"}
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	return names
}

// Complete answers a shell completion request and exits when glm is run by
// the shell completion (COMP_LINE is set), or installs the completion with
// COMP_INSTALL=1. Otherwise it returns.
func Complete() {
	Completion().Complete("glm")
}
