package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
	"github.com/spf13/cobra"
)

type biddersListOptions struct {
	PageSize int `validate:"gte=0"`
}

type biddersGetOptions struct {
	AccountID int64 `validate:"gt=0"`
}

// NewBiddersCommand creates the bidders command group.
func NewBiddersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bidders",
		Aliases: []string{"bidder"},
		Short:   "Inspect bidder accounts",
		Long:    "List the bidder accounts the credentials can access and display their settings",
	}

	cmd.AddCommand(newBiddersListCommand())
	cmd.AddCommand(newBiddersGetCommand())

	return cmd
}

func newBiddersListCommand() *cobra.Command {
	opts := &biddersListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bidders",
		Long:  "Lists all bidder accounts available to the authenticated service account",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.PageSize = pageSize(cmd, opts.PageSize)

			err := validateOptions(opts)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			return runBiddersList(cmd.Context(), client, cmd.OutOrStdout(), outputFormat(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.PageSize, "page_size", "p", constants.MaximumPageSize,
		"the number of rows to return per page, the server may return fewer rows than specified")

	return cmd
}

func runBiddersList(ctx context.Context, client rtb.Client, out io.Writer, format string, opts *biddersListOptions) error {
	p, err := newPrinter(out, format, bidderView())
	if err != nil {
		return err
	}

	p.Banner("Listing bidders:")

	// Bidders are top-level, so the parent is ignored.
	lister := rtb.ListerFunc[rtb.Bidder](func(ctx context.Context, _ string, params *rtb.ListParams) (*rtb.BiddersList, error) {
		return client.Bidders().List(ctx, params)
	})

	err = printAll(rtb.ListAll[rtb.Bidder](ctx, lister, "", rtb.NewListParams().WithPageSize(opts.PageSize)), p)
	if err != nil {
		return fmt.Errorf("failed to list bidders: %w", err)
	}

	return nil
}

func newBiddersGetCommand() *cobra.Command {
	opts := &biddersGetOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a bidder",
		Long:  "Display the settings of a single bidder account",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateOptions(opts)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			return runBiddersGet(cmd.Context(), client, cmd.OutOrStdout(), outputFormat(), opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.AccountID, "account_id", "a", 0, "the resource ID of the bidders resource")
	_ = cmd.MarkFlagRequired("account_id")

	return cmd
}

func runBiddersGet(ctx context.Context, client rtb.Client, out io.Writer, format string, opts *biddersGetOptions) error {
	p, err := newPrinter(out, format, bidderView())
	if err != nil {
		return err
	}

	bidder, err := client.Bidders().Get(ctx, rtb.BidderName(opts.AccountID))
	if err != nil {
		return fmt.Errorf("failed to get bidder: %w", err)
	}

	return printOne(bidder, p)
}
