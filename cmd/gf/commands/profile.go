package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// NewProfileCommand creates the profile command group
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the account profile",
	}

	cmd.AddCommand(newProfileShowCommand())
	cmd.AddCommand(newProfileUpdateCommand())

	return cmd
}

func newProfileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the authenticated account's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			profile, err := client.Account().Profile(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}

			return renderProfile(profile)
		},
	}
}

func renderProfile(profile *gfapi.Profile) error {
	if structuredOutput() {
		return renderObject(profile)
	}

	table := newTable("Property", "Value")
	_ = table.Append("Owner", profile.Owner)
	_ = table.Append("Display name", profile.DisplayName)
	_ = table.Append("About", profile.About)
	_ = table.Append("Rating", strconv.Itoa(profile.Rating))
	_ = table.Append("Sold", strconv.Itoa(profile.Sold))
	_ = table.Append("Bought", strconv.Itoa(profile.Bought))
	_ = table.Append("Verified", strconv.FormatBool(profile.Verified))
	_ = table.Append("Registered", formatTime(profile.Registered))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newProfileUpdateCommand() *cobra.Command {
	request := &gfapi.ProfileUpdateRequest{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update mutable profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			profile, err := client.Account().UpdateProfile(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}

			return renderProfile(profile)
		},
	}

	cmd.Flags().StringVar(&request.DisplayName, "display-name", "", "display name")
	cmd.Flags().StringVar(&request.About, "about", "", "about text")

	return cmd
}

// NewWalletCommand creates the wallet command
func NewWalletCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Show wallet history",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			query := gfapi.NewQuery()

			var entries []gfapi.WalletEntry

			if all {
				iterator := gfapi.NewCursorIterator(ctx, client.Account().WalletHistory, query)

				entries, err = iterator.All()
				if err != nil {
					return fmt.Errorf("failed to list wallet history: %w", err)
				}
			} else {
				entries, err = client.Account().WalletHistory(ctx, query)
				if err != nil {
					return fmt.Errorf("failed to list wallet history: %w", err)
				}
			}

			if structuredOutput() {
				return renderObject(entries)
			}

			table := newTable("ID", "Kind", "Amount", "Balance", "Created")
			for _, entry := range entries {
				_ = table.Append(entry.ID, entry.Kind,
					formatPrice(entry.Amount), formatPrice(entry.Balance), formatTime(entry.Created))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "walk every page of results")

	return cmd
}
