// Package cli wires the lvshape cobra commands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvshape/config"
	"github.com/katalvlaran/lvshape/internal/logging"
	"github.com/katalvlaran/lvshape/rectangle"
)

// AppName is the binary name used in usage lines.
const AppName = "lvshape"

// app carries per-invocation state built by the root pre-run hook.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	reg    *rectangle.Registry
}

// NewRootCommand returns the root command with all subcommands attached.
// Output, farewells included, goes to the command's OutOrStdout; logs go to
// its ErrOrStderr.
func NewRootCommand(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   AppName,
		Short: "Print integer matrices and symbol-drawn rectangles",
		Long: `lvshape prints integer rows as space-separated lines and renders
rectangles with a configurable symbol, reporting area, perimeter and their
canonical Rectangle(W, H) representation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			a.reg = rectangle.NewRegistry(a.cfg.RegistryOptions(cmd.OutOrStdout(), logger)...)
			logger.Debug("registry ready", slog.String("symbol", a.reg.PrintSymbol()))
			return nil
		},
	}

	root.AddCommand(
		newMatrixCommand(a),
		newRectCommand(a),
		newSquareCommand(a),
		newCompareCommand(a),
	)

	return root
}
