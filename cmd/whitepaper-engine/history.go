// Copyright Media Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mediaintel/whitepaper-engine/internal/history"
	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and export past generation runs",
	Long: `History queries the run log kept under the workspace's
.whitepaper_knowledge_graph directory. Runs are listed newest first and can
be filtered by industry and document type, printed as JSON, or exported to
YAML and JSON files next to the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, _ := cmd.Flags().GetString("workspace")
		industry, _ := cmd.Flags().GetString("industry")
		docType, _ := cmd.Flags().GetString("type")
		maxResults, _ := cmd.Flags().GetInt("max-results")
		asJSON, _ := cmd.Flags().GetBool("json")
		export, _ := cmd.Flags().GetBool("export")

		store, err := history.NewStore(types.HistoryConfig{
			HistoryDir: filepath.Join(workspace, ".whitepaper_knowledge_graph"),
			MaxResults: maxResults,
		})
		if err != nil {
			return err
		}
		defer store.Close()

		opts := history.QueryOptions{
			Industry:   types.Industry(industry),
			DocType:    types.DocType(docType),
			MaxResults: maxResults,
		}

		if export {
			if err := store.ExportYAML(cmd.Context(), opts); err != nil {
				return err
			}
			if err := store.ExportJSON(cmd.Context(), opts); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Exported run history to index/export.yaml and index/export.json")
			return nil
		}

		runs, err := store.List(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if asJSON {
			data, err := json.MarshalIndent(runs, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling runs: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}
		for _, run := range runs {
			fmt.Printf("%s  %-16s %-9s %-8s %s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.Industry, run.DocType, run.Format,
				strings.Join(run.Files, ", "))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("workspace", "w", ".", "workspace directory")
	historyCmd.Flags().String("industry", "", "filter by industry")
	historyCmd.Flags().String("type", "", "filter by document type")
	historyCmd.Flags().Int("max-results", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().Bool("export", false, "export the run log to YAML and JSON files")

	rootCmd.AddCommand(historyCmd)
}
