package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yourorg/inventory/internal/scaffold"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <Name>",
	Short: "Generate repository or service boilerplate for a queryable entity",
	Args:  cobra.ExactArgs(1),
	RunE:  runScaffold,
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.Flags().String("type", "repository", "Type of structure to create (repository/service)")
	scaffoldCmd.Flags().String("spec", "", "YAML definition of filters, sorts, includes and fields")
	scaffoldCmd.Flags().String("out", "", "Output directory (defaults to internal/<type>)")
	scaffoldCmd.Flags().Bool("force", false, "Overwrite existing files")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")
	specPath, _ := cmd.Flags().GetString("spec")
	outDir, _ := cmd.Flags().GetString("out")
	force, _ := cmd.Flags().GetBool("force")

	kind, err := scaffold.ParseKind(typeFlag)
	if err != nil {
		return err
	}

	def := scaffold.DefaultDefinition(args[0])
	if specPath != "" {
		f, err := os.Open(specPath)
		if err != nil {
			return fmt.Errorf("open definition: %w", err)
		}
		defer f.Close()

		if def, err = scaffold.LoadDefinition(f); err != nil {
			return err
		}
		if def.Name != scaffold.DefaultDefinition(args[0]).Name {
			return fmt.Errorf("definition name %q does not match %q", def.Name, args[0])
		}
	}

	if outDir == "" {
		outDir = filepath.Join("internal", string(kind))
	}

	path, err := scaffold.Generate(def, kind, outDir, force)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s %s at %s\n", def.Name, kind, path)
	return nil
}
