package main

import (
	"fmt"
	"path/filepath"

	loamAdapter "github.com/BigRLab/thedom/pkg/adapters/loam"
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/aretw0/loam"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <template>",
	Short: "Create a template in the repository",
	Long: `Writes a new template document whose root element is created from the
given product, after checking that the product exists.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		create, _ := cmd.Flags().GetString("create")
		if _, err := factory.Properties(eng.Factory(), create); err != nil {
			return err
		}

		id := args[0]
		tpl := factory.Template{Create: create, ID: filepath.Base(id)}
		if text, _ := cmd.Flags().GetString("text"); text != "" {
			tpl.Extra = map[string]any{"text": text}
		}

		dir := options(cmd).RepoPath
		// Plain file generation, the repository is not versioned.
		repo, err := loam.Init(dir, loam.WithVersioning(false))
		if err != nil {
			return fmt.Errorf("failed to initialize loam: %w", err)
		}
		loader := loamAdapter.New(loam.NewTypedRepository[loamAdapter.TemplateMetadata](repo))
		if err := loader.Save(cmd.Context(), id, tpl); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s in %s\n", id, dir)
		return nil
	},
}

func init() {
	newCmd.Flags().String("create", "Box", "Product of the root element")
	newCmd.Flags().String("text", "", "Text of the root element")
	rootCmd.AddCommand(newCmd)
}
