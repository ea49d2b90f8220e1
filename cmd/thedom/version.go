package main

import (
	"fmt"
	"strings"

	"github.com/BigRLab/thedom"
	"github.com/BigRLab/thedom/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of thedom",
	Run: func(cmd *cobra.Command, args []string) {
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "thedom version %s\n", strings.TrimSpace(thedom.Version))
	},
}

func init() {
	versionCmd.Flags().Bool("banner", false, "Print the banner first")
	rootCmd.AddCommand(versionCmd)
}
