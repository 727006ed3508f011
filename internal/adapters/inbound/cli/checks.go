package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	configAdapter "github.com/aiif/aiifcheck/internal/adapters/outbound/config"
	"github.com/aiif/aiifcheck/internal/adapters/outbound/loader"
	"github.com/aiif/aiifcheck/internal/application"
)

func newChecksCmd() *cobra.Command {
	var (
		checklistPath string
		jsonOutput    bool
		configDir     string
	)

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List the checks defined by a checklist",
		Long:  "Print every check id a checklist defines together with its resolved severity level.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if checklistPath == "" {
				cfg, err := configAdapter.New().Load(configDir)
				if err != nil {
					return ioError(cmd, err)
				}
				checklistPath = cfg.Checklist
			}

			svc := application.NewValidateService(loader.New(), nil)
			entries, err := svc.ListChecks(checklistPath)
			if err != nil {
				return ioError(cmd, err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s\n", entry.Level, entry.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checklistPath, "checklist", "", "Path to the checklist")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&configDir, "path", ".", "Directory containing .aiifcheck.yaml")

	return cmd
}
