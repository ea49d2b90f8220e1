package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BigRLab/thedom/internal/presentation/tui"
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/spf13/cobra"

	json "github.com/goccy/go-json"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [product]",
	Short: "List the products templates can create",
	Long: `Without arguments, lists every HTML tag of the catalog and every widget
product. With a product name, shows the properties it accepts; --json prints
the typed properties as a JSON schema instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			if len(args) == 0 {
				return fmt.Errorf("--json requires a product")
			}
			props, err := factory.Properties(eng.Factory(), args[0])
			if err != nil {
				return err
			}
			return writeSchema(cmd.OutOrStdout(), props)
		}

		var md strings.Builder
		if len(args) == 0 {
			md.WriteString("# Tags\n\n| Name | Tag | Description |\n|---|---|---|\n")
			for _, name := range eng.Catalog().Names() {
				spec, _ := eng.Catalog().Spec(name)
				fmt.Fprintf(&md, "| %s | `<%s>` | %s |\n", spec.Name, spec.Tag, cell(spec.Doc))
			}
			md.WriteString("\n# Widgets\n\n")
			for _, product := range eng.Factory().Products() {
				if strings.HasPrefix(product, "DOM.") {
					continue
				}
				fmt.Fprintf(&md, "- %s\n", product)
			}
		} else {
			props, err := factory.Properties(eng.Factory(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(&md, "# %s\n\n", args[0])
			if spec, ok := eng.Catalog().Spec(args[0]); ok && spec.Doc != "" {
				fmt.Fprintf(&md, "%s\n\n", spec.Doc)
			}
			md.WriteString("| Property | Action | Type |\n|---|---|---|\n")
			for _, p := range props.All() {
				fmt.Fprintf(&md, "| %s | %s | %s |\n", p.Name, p.Action, typeName(p))
			}
		}

		out, err := tui.NewRenderer()(md.String())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// writeSchema prints the types of the typed properties of props.
func writeSchema(w io.Writer, props *node.PropertySet) error {
	data, err := json.MarshalIndent(props.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func typeName(p node.Property) string {
	if p.Type == nil {
		return "any"
	}
	return p.Type.Name()
}

func cell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}

func init() {
	catalogCmd.Flags().Bool("json", false, "Print the property schema of a product as JSON")
	rootCmd.AddCommand(catalogCmd)
}
