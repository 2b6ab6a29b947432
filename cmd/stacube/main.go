// Command stacube inspects and edits datacube metadata in STAC
// documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stacmeta/stacube/internal/cli/config"
)

// Build information, injected via -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cliContext carries the loaded configuration and logger to the
// subcommands. It is populated by the root PersistentPreRunE.
type cliContext struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	var (
		flagOutput  string
		flagNoColor bool
		flagVerbose bool
	)
	ctx := &cliContext{}

	root := &cobra.Command{
		Use:   "stacube",
		Short: "Inspect and edit STAC datacube metadata",
		Long: `stacube works with the datacube extension of STAC Items, Collections
and Assets. It can describe the dimensions and variables of a cube,
check them for structural problems, manage extension declarations and
build new cube documents from NetCDF files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = flagOutput
			}
			if flagNoColor {
				cfg.NoColor = true
			}
			if flagVerbose {
				cfg.Verbose = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx.cfg = cfg
			ctx.logger = zap.NewNop()
			if cfg.Verbose {
				if logger, err := zap.NewDevelopment(); err == nil {
					ctx.logger = logger
				}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: text, json or yaml")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newVersionCmd(),
		newDescribeCmd(ctx),
		newCheckCmd(ctx),
		newExtensionsCmd(ctx),
		newNewCmd(ctx),
		newImportCmd(ctx),
	)
	return root
}
