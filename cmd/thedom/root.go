package main

import (
	"fmt"
	"os"

	"github.com/BigRLab/thedom"
	"github.com/BigRLab/thedom/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thedom",
	Short: "thedom builds HTML pages from element templates",
	Long: `thedom turns YAML, JSON and Markdown templates into trees of HTML
elements, binds request variables to their inputs and renders the result.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the templates")
	rootCmd.PersistentFlags().String("settings", "", "Settings file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
}

func options(cmd *cobra.Command) cli.Options {
	dir, _ := cmd.Flags().GetString("dir")
	settingsPath, _ := cmd.Flags().GetString("settings")
	debug, _ := cmd.Flags().GetBool("debug")
	format, _ := cmd.Flags().GetString("log-format")
	return cli.Options{
		RepoPath:     dir,
		SettingsPath: settingsPath,
		Debug:        debug,
		LogFormat:    format,
	}
}

func newEngine(cmd *cobra.Command) (*thedom.Engine, error) {
	return cli.NewEngine(options(cmd))
}

// templateArg returns the template named on the command line or the
// repository default.
func templateArg(cmd *cobra.Command, eng *thedom.Engine, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	ids, err := eng.Templates(cmd.Context())
	if err != nil {
		return "", err
	}
	id, ok := cli.DefaultTemplate(ids, options(cmd).RepoPath)
	if !ok {
		return "", fmt.Errorf("no template given and no index, main or directory template found")
	}
	return id, nil
}
