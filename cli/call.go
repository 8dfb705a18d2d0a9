package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/server"
	"github.com/telartis/picqer-ontime/types"
	"github.com/telartis/picqer-ontime/types/shipment"
)

func newCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book one shipment from a Picqer webhook body",
		Long:  "Read a Picqer shipment request (JSON) from --file or stdin, book it with the carrier and print the label response.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file, err)
				}
				defer f.Close()
				in = f
			}

			var req shipment.ShipmentRequest
			if err := json.NewDecoder(in).Decode(&req); err != nil {
				return fmt.Errorf("decoding shipment request: %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			service, client := server.NewService(cfg)

			label, _, err := service.CreateShipment(cmd.Context(), req)
			return printResult(cmd, label, err, client.Redactor())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "shipment request JSON file (default stdin)")
	return cmd
}

func newListCmd(use, short, operation string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := ontime.ParseOperation(operation)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			service, client := server.NewService(cfg)

			listing, _, err := service.List(cmd.Context(), op)
			return printResult(cmd, listing, err, client.Redactor())
		},
	}
}

// printResult writes the outward JSON for a call, the {error} shape included,
// and turns a failed call into a non-zero exit.
func printResult(cmd *cobra.Command, data any, err error, redactor ontime.Redactor) error {
	if err != nil {
		data = types.ErrorResponse{Error: redactor.Redact(err.Error())}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(data); encErr != nil {
		return encErr
	}
	if err != nil {
		return fmt.Errorf("carrier call failed with status %d", ontime.StatusCode(err))
	}
	return nil
}
