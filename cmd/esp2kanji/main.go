package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// knownCommands maps command names to their handlers at dispatch time.
var knownCommands = map[string]bool{
	"convert": true,
	"serve":   true,
	"check":   true,
	"version": true,
	"help":    true,
}

func main() {
	// Honor container CPU quotas; errors only mean the GOMAXPROCS env was
	// invalid, in which case runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches to the selected command and returns the process exit code.
func run(args []string, env *Environment) int {
	command, rest := splitCommand(args)

	switch command {
	case "version":
		fmt.Fprintf(env.Stdout, "esp2kanji %s\n", Version)
		return ExitSuccess
	case "help":
		printUsage(env.Stdout)
		return ExitSuccess
	case "serve":
		return runServeCommand(rest, env)
	case "check":
		return runCheckCommand(rest, env)
	default:
		return runConvertCommand(rest, env)
	}
}

// splitCommand extracts the command name. A first argument that is not a
// known command is treated as a convert positional, so
// "esp2kanji input.txt" works without naming the command.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "help", nil
	}
	if knownCommands[args[0]] {
		return args[0], args[1:]
	}
	return "convert", args
}
