package main

import (
	"fmt"

	"github.com/BigRLab/thedom/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every template for consistency",
	Long:  `Loads every template and reports unknown products, unknown properties and duplicate accessors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		if err := validator.ValidateTemplates(cmd.Context(), eng.Loader(), eng.Factory()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Templates are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
