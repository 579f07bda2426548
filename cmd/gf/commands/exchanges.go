package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// NewExchangesCommand creates the exchanges command group
func NewExchangesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exchanges",
		Short: "Inspect escrowed transactions",
	}

	cmd.AddCommand(newExchangesListCommand())
	cmd.AddCommand(newExchangesGetCommand())

	return cmd
}

func newExchangesListCommand() *cobra.Command {
	var (
		role string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			query := gfapi.NewQuery()

			if role != "" {
				query.WithFilter("role", role)
			}

			var exchanges []gfapi.Exchange

			if all {
				iterator := gfapi.NewCursorIterator(ctx, client.Exchanges().List, query)

				exchanges, err = iterator.All()
				if err != nil {
					return fmt.Errorf("failed to list exchanges: %w", err)
				}
			} else {
				exchanges, err = client.Exchanges().List(ctx, query)
				if err != nil {
					return fmt.Errorf("failed to list exchanges: %w", err)
				}
			}

			if structuredOutput() {
				return renderObject(exchanges)
			}

			table := newTable("ID", "Listing", "Price", "Status", "Created")
			for _, exchange := range exchanges {
				_ = table.Append(exchange.ID, exchange.ListingID,
					formatPrice(exchange.Price), exchange.Status, formatTime(exchange.Created))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "filter by role (bought, sold)")
	cmd.Flags().BoolVar(&all, "all", false, "walk every page of results")

	return cmd
}

func newExchangesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EXCHANGE_ID",
		Short: "Show one exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			exchange, err := client.Exchanges().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get exchange: %w", err)
			}

			if structuredOutput() {
				return renderObject(exchange)
			}

			table := newTable("Property", "Value")
			_ = table.Append("ID", exchange.ID)
			_ = table.Append("Listing", exchange.ListingID)
			_ = table.Append("Buyer", exchange.Buyer)
			_ = table.Append("Seller", exchange.Seller)
			_ = table.Append("Price", formatPrice(exchange.Price))
			_ = table.Append("Status", exchange.Status)
			_ = table.Append("Created", formatTime(exchange.Created))
			_ = table.Append("Completed", formatTime(exchange.Completed))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
