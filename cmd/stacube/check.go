package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	stacube "github.com/stacmeta/stacube"
)

func newCheckCmd(ctx *cliContext) *cobra.Command {
	var assetKey string
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check cube documents for structural problems",
		Long: `check reads each document, opens its datacube properties and reports
findings such as missing required fields, invalid enum values and
variables that reference undeclared dimensions. The exit status is
non-zero when any finding is reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			okColor := color.New(color.FgGreen)
			pathColor := color.New(color.Bold)
			codeColor := color.New(color.FgYellow)
			if ctx.cfg.NoColor {
				okColor.DisableColor()
				pathColor.DisableColor()
				codeColor.DisableColor()
			}

			total := 0
			for _, path := range args {
				e, _, err := loadExtension(path, assetKey)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				issues := stacube.Check(e)
				ctx.logger.Debug("checked document",
					zap.String("path", path), zap.Int("issues", len(issues)))

				if len(issues) == 0 {
					fmt.Fprintf(out, "%s %s\n", okColor.Sprint("ok"), path)
					continue
				}
				total += len(issues)
				fmt.Fprintf(out, "%s: %d finding(s)\n", path, len(issues))
				for _, issue := range issues {
					fmt.Fprintf(out, "  %s  %s  %s\n",
						pathColor.Sprint(issue.Path), codeColor.Sprint(issue.Code), issue.Message)
					if issue.Hint != "" {
						fmt.Fprintf(out, "        hint: %s\n", issue.Hint)
					}
				}
				if ctx.cfg.FailFast {
					break
				}
			}
			if total > 0 {
				return fmt.Errorf("%d finding(s)", total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&assetKey, "asset", "", "check the named asset of an Item")
	return cmd
}
