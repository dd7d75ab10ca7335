package cli

import (
	"io"
	"os"

	"github.com/anacrolix/log"
	"github.com/spf13/cobra"

	"github.com/peppermintpatty5/avl-tree/batch"
	"github.com/peppermintpatty5/avl-tree/internal/config"
	"github.com/peppermintpatty5/avl-tree/set"
)

// endOfCommands is put in front of the user's arguments so cobra stops
// looking for subcommand names (help, completion, __complete) before it
// reaches them. RunE drops it again.
const endOfCommands = "--"

// newRootCommand builds the command. Flag parsing is disabled because every
// argument, including ones like "-5", is a data token. It must be run
// through ExecuteArgs.
func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "avl-tree [N | -N]...",
		Short: "Add and remove integers in a binary search tree and print its shape.",
		Long: `avl-tree builds an ordered set of integers from its arguments.

Each argument N inserts N into the set, each argument -N removes N. Numbers
are read leniently: trailing garbage is ignored and malformed input reads
as 0. When all arguments are processed the structure of the tree is printed
as a single line of JSON.

Set ` + config.LogLevelEnv + `=debug to trace every operation on stderr.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == endOfCommands {
				args = args[1:]
			}

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			logger := log.Default.WithNames("avl-tree").FilterLevel(cfg.LogLevel())
			return Run(args, cmd.OutOrStdout(), logger)
		},
	}
}

// ExecuteArgs runs the command with args as data tokens, writing the dump
// to out and diagnostics to errOut.
func ExecuteArgs(args []string, out, errOut io.Writer) error {
	cmd := newRootCommand()
	cmd.SetArgs(append([]string{endOfCommands}, args...))
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd.Execute()
}

// Run applies tokens to a fresh set, dumps the result to out and releases
// the set.
func Run(tokens []string, out io.Writer, logger log.Logger) error {
	s := set.NewIntSet()
	defer s.Clear()

	b := batch.Parse(tokens)
	modified := b.Apply(s, logger)
	logger.Levelf(log.Debug, "%d of %d operations changed the set, %d elements", modified, b.Len(), s.Len())

	return s.Dump(out)
}

// Execute runs the command on the process arguments and exits non-zero on
// failure. This is called by main.main().
func Execute() {
	if err := ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
