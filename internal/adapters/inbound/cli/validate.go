package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	configAdapter "github.com/aiif/aiifcheck/internal/adapters/outbound/config"
	"github.com/aiif/aiifcheck/internal/adapters/outbound/gitinfo"
	"github.com/aiif/aiifcheck/internal/adapters/outbound/loader"
	"github.com/aiif/aiifcheck/internal/adapters/outbound/tui"
	"github.com/aiif/aiifcheck/internal/application"
	"github.com/aiif/aiifcheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		aiifPath      string
		checklistPath string
		strictShould  bool
		jsonOutput    bool
		configDir     string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an AIIF document against a conformance checklist",
		Long:  "Run every checklist rule against an AIIF document and print a PASS/FAIL report. Exits 0 when compliant, 1 on MUST failures (or SHOULD failures with --strict-should), 2 on I/O errors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configAdapter.New().Load(configDir)
			if err != nil {
				return ioError(cmd, err)
			}

			if checklistPath == "" {
				checklistPath = cfg.Checklist
			}
			strict := strictShould || cfg.StrictShould
			asJSON := jsonOutput || cfg.Output == domain.OutputJSON

			svc := application.NewValidateService(loader.New(), gitinfo.New())
			report, err := svc.Validate(aiifPath, checklistPath)
			if err != nil {
				return ioError(cmd, err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			summary := report.Summary
			if code := domain.ExitStatus(summary.MustFailures, summary.ShouldFailures, strict); code != domain.ExitOK {
				return &exitError{
					code: code,
					msg:  fmt.Sprintf("validation failed: %d MUST failure(s), %d SHOULD failure(s)", summary.MustFailures, summary.ShouldFailures),
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&aiifPath, "aiif", "", "Path to the AIIF document to validate")
	cmd.Flags().StringVar(&checklistPath, "checklist", "", "Path to the checklist (default from .aiifcheck.yaml, else "+domain.DefaultChecklistFile+")")
	cmd.Flags().BoolVar(&strictShould, "strict-should", false, "Treat SHOULD failures as non-zero exit status")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVar(&configDir, "path", ".", "Directory containing .aiifcheck.yaml")
	_ = cmd.MarkFlagRequired("aiif")

	return cmd
}

// ioError reports a collaborator failure (missing file, bad syntax) and
// maps it to the reserved I/O exit status. These abort before any rule
// runs, so no partial report is printed.
func ioError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	return &exitError{code: domain.ExitIOError, msg: err.Error()}
}
