package command

import (
	"context"

	"github.com/blazity/rm/pkg/logging"
	"github.com/blazity/rm/pkg/remover"
	"github.com/blazity/rm/pkg/utils/filesystem"
	"github.com/spf13/cobra"
)

// argsGuard stops cobra from routing a first token such as "__complete" to its
// hidden completion command. Execute prepends it and RunE drops it.
const argsGuard = "--"

func NewRemoveCommand(logger logging.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm [-rf] <path>",
		Short: "Remove a file or directory",
		Long:  "Remove a file or directory, asking for confirmation unless -f is given. Use -r to remove non-empty directories.",
		Args:  cobra.ArbitraryArgs,
		// Flags are tokenized by remover.ParseArgs so that "-rf", "-r -f" and
		// "path -rf" are all accepted.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == argsGuard {
				args = args[1:]
			}

			cfg, err := remover.ParseArgs(args)
			if err != nil {
				return err
			}

			mode := cfg.Mode()
			logger.Debug("Resolved deletion mode", "mode", mode.String(), "path", cfg.Directory)

			prompt := remover.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
			executor := remover.NewExecutor(filesystem.OS{}, prompt, logger)

			return executor.Remove(cfg.Directory, mode)
		},
	}

	return cmd
}

// Execute runs cmd with exactly args, never falling back to os.Args.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{argsGuard}, args...))
	return cmd.ExecuteContext(ctx)
}
