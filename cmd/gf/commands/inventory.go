package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// NewInventoryCommand creates the Steam inventory command
func NewInventoryCommand() *cobra.Command {
	var (
		appID     string
		contextID string
		count     int
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "inventory STEAM_ID",
		Short: "Read a Steam inventory",
		Long:  "Read a public Steam inventory through the community inventory API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			query := &gfapi.InventoryQuery{
				SteamID:   args[0],
				AppID:     appID,
				ContextID: contextID,
				Count:     count,
			}

			var assets []gfapi.InventoryAsset

			for {
				page, err := client.Steam().Inventory(ctx, query)
				if err != nil {
					if errors.Is(err, gfapi.ErrNoMoreItems) {
						break
					}

					return fmt.Errorf("failed to read inventory: %w", err)
				}

				assets = append(assets, page.Assets...)

				if !all || !page.MoreItems {
					break
				}
			}

			if structuredOutput() {
				return renderObject(assets)
			}

			table := newTable("Asset ID", "App", "Class", "Amount")
			for _, asset := range assets {
				_ = table.Append(asset.AssetID, fmt.Sprintf("%d", asset.AppID), asset.ClassID, asset.Amount)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&appID, "app", "", "Steam app ID (default CS:GO)")
	cmd.Flags().StringVar(&contextID, "context", "", "inventory context ID")
	cmd.Flags().IntVar(&count, "count", 0, "page size")
	cmd.Flags().BoolVar(&all, "all", false, "walk every page of the inventory")

	return cmd
}
