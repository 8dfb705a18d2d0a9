package cli

import (
	"github.com/spf13/cobra"

	"github.com/telartis/picqer-ontime/config"
)

var (
	version = "dev"
	commit  = "none"
)

// loadConfig is swapped in tests.
var loadConfig = config.Load

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ontime",
		Short:         "Picqer custom shipping method for OnTime",
		Long:          "ontime translates Picqer shipment webhooks into OnTime carrier orders and returns shipping labels.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newListCmd("products", "List the carrier products of this account", "PRODUCT"))
	cmd.AddCommand(newListCmd("countries", "List the countries the carrier delivers to", "LANDEN"))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
