package main

import (
	"fmt"

	"github.com/BigRLab/thedom/internal/cli"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var bindCmd = &cobra.Command{
	Use:   "bind [template]",
	Short: "Bind variables to a template and print the exported values",
	Long: `Inserts the given variables into the inputs of a template and prints
the values the page would submit back, as JSON.`,
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

		page, err := eng.Load(cmd.Context(), id)
		if err != nil {
			return err
		}
		if vars != nil {
			page.Bind(vars)
		}

		flat, _ := cmd.Flags().GetBool("flat")
		out := map[string]any{"values": page.Export(flat)}
		if validators := page.Validators(); len(validators) > 0 {
			out["validators"] = validators
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	bindCmd.Flags().String("vars", "", "Variables to bind: a query string, inline JSON or @file")
	bindCmd.Flags().Bool("flat", false, "Export full names instead of nesting by key")
	rootCmd.AddCommand(bindCmd)
}
