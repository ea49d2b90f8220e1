package main

import (
	"fmt"
	"os"

	"github.com/BigRLab/thedom/internal/presentation/graph"
	"github.com/BigRLab/thedom/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [template]",
	Short: "Show the element tree of a template",
	Long: `Prints the elements a template builds, one per line. With --mermaid it
outputs a Mermaid diagram (graph TD) instead.`,
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
		page, err := eng.Load(cmd.Context(), id)
		if err != nil {
			return err
		}

		if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
			selected, _ := cmd.Flags().GetStringSlice("select")
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(page.Root, &graph.Overlay{Selected: selected}))
			return nil
		}

		profile := termenv.Ascii
		if tui.IsTerminal(os.Stdout) {
			profile = termenv.ColorProfile()
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.Tree(page.Root, profile))
		return nil
	},
}

func init() {
	treeCmd.Flags().Bool("mermaid", false, "Output a Mermaid diagram")
	treeCmd.Flags().StringSlice("select", nil, "Element IDs to highlight in the diagram")
	rootCmd.AddCommand(treeCmd)
}
