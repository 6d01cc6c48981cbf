// Copyright Media Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediaintel/whitepaper-engine/internal/catalog"
	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the content catalog",
	Long: `Catalog loads the content catalog (embedded by default, or an external
file via --catalog), validates it, and lists the available industries and
document types with their titles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")

		var (
			cat *catalog.Catalog
			err error
		)
		if catalogPath != "" {
			cat, err = catalog.LoadFile(catalogPath)
		} else {
			cat, err = catalog.Load()
		}
		if err != nil {
			return err
		}

		if validate, _ := cmd.Flags().GetBool("validate"); validate {
			// Load already validated; reaching here means the catalog is sound.
			fmt.Println("catalog OK")
			return nil
		}

		fmt.Printf("Product: %s\n", cat.Product)
		fmt.Printf("Company: %s\n\n", cat.Company)
		fmt.Println("Business whitepapers:")
		for _, ind := range types.Industries {
			content := cat.Industries[ind]
			fmt.Printf("  %-17s %s\n", ind, content.Title)
		}
		fmt.Println("\nIndustry-independent whitepapers:")
		fmt.Printf("  %-17s %s\n", types.DocTypePremium, cat.Premium.Title)
		fmt.Printf("  %-17s %s\n", types.DocTypeTechnical, cat.Technical.Title)
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("catalog", "", "path to an external content catalog file")
	catalogCmd.Flags().Bool("validate", false, "only validate the catalog and exit")

	rootCmd.AddCommand(catalogCmd)
}
