// Copyright Media Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediaintel/whitepaper-engine/pkg/types"
	"github.com/mediaintel/whitepaper-engine/pkg/whitepaper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a whitepaper document",
	Long: `Generate assembles the selected content into one whitepaper and renders
the requested format(s) into <workspace>/generated_whitepapers/. Filenames
carry the product label, document type, industry (business documents only),
and a run timestamp.

If the Word renderer is unavailable the run falls back to Markdown output
and still succeeds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		industry, _ := cmd.Flags().GetString("industry")
		format, _ := cmd.Flags().GetString("format")
		docType, _ := cmd.Flags().GetString("type")
		workspace, _ := cmd.Flags().GetString("workspace")
		catalogPath, _ := cmd.Flags().GetString("catalog")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		g, err := whitepaper.NewGenerator(types.GeneratorConfig{
			Workspace:      workspace,
			OutputDir:      viper.GetString("output_dir"),
			Product:        viper.GetString("product"),
			CatalogPath:    catalogPath,
			DisableHistory: noHistory,
			LogLevel:       viper.GetString("log_level"),
		})
		if err != nil {
			return err
		}
		defer g.Close()

		files, err := g.Generate(types.DocumentSpec{
			Industry: types.Industry(industry),
			DocType:  types.DocType(docType),
			Format:   types.Format(format),
		})
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d file(s):\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("industry", "i", string(types.IndustryGeneralBusiness), "industry: healthcare, media_buying, or general_business")
	generateCmd.Flags().StringP("format", "f", string(types.FormatWord), "output format: markdown, word, or both")
	generateCmd.Flags().StringP("type", "t", string(types.DocTypeBusiness), "document type: business, technical, or premium")
	generateCmd.Flags().StringP("workspace", "w", ".", "workspace directory for output and run history")
	generateCmd.Flags().String("catalog", "", "path to an external content catalog file")
	generateCmd.Flags().Bool("no-history", false, "skip recording the run in the history store")

	rootCmd.AddCommand(generateCmd)
}
