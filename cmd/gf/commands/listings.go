package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// NewListingsCommand creates the listings command group
func NewListingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Manage marketplace listings",
		Long:  "Search, inspect and manage Gameflip marketplace listings",
	}

	cmd.AddCommand(newListingsListCommand())
	cmd.AddCommand(newListingsGetCommand())
	cmd.AddCommand(newListingsCreateCommand())
	cmd.AddCommand(newListingsPriceCommand())
	cmd.AddCommand(newListingsStatusCommand())

	return cmd
}

func newListingsListCommand() *cobra.Command {
	var (
		status   string
		platform string
		limit    int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			query := gfapi.NewQuery().WithLimit(limit)

			if status != "" {
				query.WithFilter("status", status)
			}

			if platform != "" {
				query.WithFilter("platform", platform)
			}

			var listings []gfapi.Listing

			if all {
				iterator := gfapi.NewCursorIterator(ctx, client.Listings().Search, query)

				listings, err = iterator.All()
				if err != nil {
					return fmt.Errorf("failed to search listings: %w", err)
				}
			} else {
				listings, err = client.Listings().Search(ctx, query)
				if err != nil {
					return fmt.Errorf("failed to search listings: %w", err)
				}
			}

			return renderListings(listings)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, ready, onsale, sold)")
	cmd.Flags().StringVar(&platform, "platform", "", "filter by platform")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().BoolVar(&all, "all", false, "walk every page of results")

	return cmd
}

func renderListings(listings []gfapi.Listing) error {
	if structuredOutput() {
		return renderObject(listings)
	}

	table := newTable("ID", "Name", "Price", "Status", "Category")
	for _, listing := range listings {
		_ = table.Append(listing.ID, listing.Name, formatPrice(listing.Price), listing.Status, listing.Category)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newListingsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LISTING_ID",
		Short: "Show one listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			listing, err := client.Listings().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get listing: %w", err)
			}

			return renderListing(listing)
		},
	}
}

func renderListing(listing *gfapi.Listing) error {
	if structuredOutput() {
		return renderObject(listing)
	}

	table := newTable("Property", "Value")
	_ = table.Append("ID", listing.ID)
	_ = table.Append("Name", listing.Name)
	_ = table.Append("Price", formatPrice(listing.Price))
	_ = table.Append("Status", listing.Status)
	_ = table.Append("Category", listing.Category)
	_ = table.Append("Platform", listing.Platform)
	_ = table.Append("Digital", strconv.FormatBool(listing.DigitalGood))
	_ = table.Append("Created", formatTime(listing.Created))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newListingsCreateCommand() *cobra.Command {
	request := &gfapi.ListingCreateRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			listing, err := client.Listings().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create listing: %w", err)
			}

			return renderListing(listing)
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "listing name")
	cmd.Flags().StringVar(&request.Description, "description", "", "listing description")
	cmd.Flags().StringVar(&request.Category, "category", "", "listing category")
	cmd.Flags().StringVar(&request.Platform, "platform", "", "platform tag")
	cmd.Flags().IntVar(&request.Price, "price", 0, "price in cents")
	cmd.Flags().BoolVar(&request.DigitalGood, "digital", true, "digital good")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newListingsPriceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "price LISTING_ID CENTS",
		Short: "Change a listing's price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing price: %w", err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			listing, err := client.Listings().UpdatePrice(context.Background(), args[0], price)
			if err != nil {
				return fmt.Errorf("failed to update price: %w", err)
			}

			return renderListing(listing)
		},
	}
}

func newListingsStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status LISTING_ID STATUS",
		Short: "Move a listing between draft, ready and onsale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			listing, err := client.Listings().UpdateStatus(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}

			return renderListing(listing)
		},
	}
}
