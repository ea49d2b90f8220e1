package main

import (
	"github.com/BigRLab/thedom/internal/cli"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Render a template to HTML",
	Long: `Builds the element tree of a template, binds the given variables and
prints the HTML. Without a template, index, main or the template named after
the directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		id, err := templateArg(cmd, eng, args)
		if err != nil {
			return err
		}

		varsSource, _ := cmd.Flags().GetString("vars")
		vars, err := cli.LoadVars(varsSource)
		if err != nil {
			return err
		}
		formatted, _ := cmd.Flags().GetBool("formatted")
		pretty, _ := cmd.Flags().GetBool("pretty")
		opts := cli.RenderOptions{Template: id, Vars: vars, Formatted: formatted, Pretty: pretty}

		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()
			return cli.Watch(ctx, eng, opts, cmd.OutOrStdout())
		}
		return cli.Render(cmd.Context(), eng, opts, cmd.OutOrStdout())
	},
}

func init() {
	renderCmd.Flags().Bool("formatted", false, "Indent the output as it is generated")
	renderCmd.Flags().Bool("pretty", false, "Reindent the whole document after rendering")
	renderCmd.Flags().String("vars", "", "Variables to bind: a query string, inline JSON or @file")
	renderCmd.Flags().Bool("watch", false, "Render again whenever a template changes")
	rootCmd.AddCommand(renderCmd)
}
