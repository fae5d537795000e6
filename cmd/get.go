package cmd

import (
	"fmt"
	"strings"

	"cdn-manager/core/api"
	"cdn-manager/feature/inventory"

	"github.com/spf13/cobra"
)

// getCmd reads a StrikeTracker collection.
var getCmd = &cobra.Command{
	Use:   "get <kind>",
	Short: "Read an inventory collection",
	Long: fmt.Sprintf(`Reads one StrikeTracker collection and prints its decoded projection.

Kinds: %s

Examples:
  get pops -o yaml
  get origins --jq '.[] | select(.port == 80) | .hostname'`, strings.Join(api.InventoryKinds(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: api.InventoryKinds(),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		client, err := rt.apiClient()
		if err != nil {
			return err
		}

		svc := inventory.NewService(client, api.InventoryKinds(), rt.logger)
		value, err := svc.Get(ctx, args[0])
		if err != nil {
			return err
		}
		return rt.render(ctx, value)
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
}
