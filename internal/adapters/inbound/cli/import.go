package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiif/aiifcheck/internal/adapters/outbound/openapi"
	"github.com/aiif/aiifcheck/internal/application"
)

func newImportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import <openapi-file>",
		Short: "Convert an OpenAPI 3 document into an AIIF skeleton",
		Long:  "Import endpoints, parameters and security schemes from an OpenAPI 3 document and emit an AIIF document ready for validation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewImportService(openapi.New())
			doc, err := svc.ImportOpenAPI(args[0])
			if err != nil {
				return ioError(cmd, err)
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling AIIF document: %w", err)
			}
			data = append(data, '\n')

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return ioError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the AIIF document to this file instead of stdout")

	return cmd
}
