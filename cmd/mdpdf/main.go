package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Parse first so verbose can gate the maxprocs log line.
	flags, positional, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'mdpdf --help' for usage.")
		os.Exit(ExitUsage)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, flags, positional, env)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, flags *cliFlags, positional []string, env *Environment) int {
	switch {
	case flags.help:
		printUsage(env.Stdout, env.Width())
		return ExitSuccess
	case flags.version:
		fmt.Fprintf(env.Stdout, "mdpdf %s\n", Version)
		return ExitSuccess
	}

	err := runConvert(ctx, flags, positional, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "mdpdf: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}
