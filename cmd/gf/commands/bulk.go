package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// NewBulkCommand creates the bulk trade command group
func NewBulkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Manage bulk Steam trades",
	}

	cmd.AddCommand(newBulkCreateCommand())
	cmd.AddCommand(newBulkGetCommand())

	return cmd
}

func newBulkCreateCommand() *cobra.Command {
	request := &gfapi.BulkCreateRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a bulk Steam trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			if request.TradeURL == "" {
				return ErrTradeURLRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			order, err := client.Bulk().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create bulk order: %w", err)
			}

			return renderBulkOrder(order)
		},
	}

	cmd.Flags().StringVar(&request.TradeURL, "trade-url", "", "Steam trade offer URL")
	cmd.Flags().StringSliceVar(&request.AssetIDs, "asset", nil, "asset ID to include (repeatable)")
	cmd.Flags().IntVar(&request.Price, "price", 0, "price per listing in cents")

	return cmd
}

func newBulkGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Show one bulk order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			order, err := client.Bulk().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get bulk order: %w", err)
			}

			return renderBulkOrder(order)
		},
	}
}

func renderBulkOrder(order *gfapi.BulkOrder) error {
	if structuredOutput() {
		return renderObject(order)
	}

	table := newTable("Property", "Value")
	_ = table.Append("ID", order.ID)
	_ = table.Append("Status", order.Status)
	_ = table.Append("Trade URL", order.TradeURL)
	_ = table.Append("Created", formatTime(order.Created))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
