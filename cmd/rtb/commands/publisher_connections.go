package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
	"github.com/spf13/cobra"
)

type publisherConnectionsListOptions struct {
	AccountID int64 `validate:"gt=0"`
	PageSize  int   `validate:"gte=0"`
	Filter    string
	OrderBy   string
}

type publisherConnectionsGetOptions struct {
	AccountID             int64  `validate:"gt=0"`
	PublisherConnectionID string `validate:"required"`
}

type publisherConnectionsBatchOptions struct {
	AccountID              int64    `validate:"gt=0"`
	PublisherConnectionIDs []string `validate:"min=1,dive,required"`
}

// NewPublisherConnectionsCommand creates the publisher-connections command group.
func NewPublisherConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "publisher-connections",
		Aliases: []string{"publisher-connection", "pc"},
		Short:   "Manage publisher connections",
		Long:    "List, inspect, approve and reject the connections between a bidder and its publishers",
	}

	cmd.AddCommand(newPublisherConnectionsListCommand())
	cmd.AddCommand(newPublisherConnectionsGetCommand())
	cmd.AddCommand(newPublisherConnectionsBatchCommand(batchReject))
	cmd.AddCommand(newPublisherConnectionsBatchCommand(batchApprove))

	return cmd
}

func newPublisherConnectionsListCommand() *cobra.Command {
	opts := &publisherConnectionsListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List publisher connections",
		Long:  "Lists publisher connections for the given bidder account, optionally filtered and ordered",
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

			return runPublisherConnectionsList(cmd.Context(), client, cmd.OutOrStdout(), outputFormat(), opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.AccountID, "account_id", "a", 0,
		"the resource ID of the bidders resource under which the publisher connections exist")
	cmd.Flags().IntVarP(&opts.PageSize, "page_size", "p", constants.MaximumPageSize,
		"the number of rows to return per page, the server may return fewer rows than specified")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "query string to filter publisher connections, e.g. \"publisherPlatform = GOOGLE_AD_MANAGER\"")
	cmd.Flags().StringVar(&opts.OrderBy, "order_by", "", "field to order results by, e.g. \"createTime DESC\"")
	_ = cmd.MarkFlagRequired("account_id")

	return cmd
}

func runPublisherConnectionsList(ctx context.Context, client rtb.Client, out io.Writer, format string, opts *publisherConnectionsListOptions) error {
	p, err := newPrinter(out, format, publisherConnectionView())
	if err != nil {
		return err
	}

	p.Banner("Listing publisher connections for bidder account '%d':", opts.AccountID)

	params := rtb.NewListParams().
		WithPageSize(opts.PageSize).
		WithFilter(opts.Filter).
		WithOrderBy(opts.OrderBy)
	connections := rtb.ListAll[rtb.PublisherConnection](ctx, client.PublisherConnections(), rtb.BidderName(opts.AccountID), params)

	err = printAll(connections, p)
	if err != nil {
		return fmt.Errorf("failed to list publisher connections: %w", err)
	}

	return nil
}

func newPublisherConnectionsGetCommand() *cobra.Command {
	opts := &publisherConnectionsGetOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a publisher connection",
		Long:  "Display a single publisher connection of a bidder account",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateOptions(opts)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			return runPublisherConnectionsGet(cmd.Context(), client, cmd.OutOrStdout(), outputFormat(), opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.AccountID, "account_id", "a", 0, "the resource ID of the bidders resource")
	cmd.Flags().StringVar(&opts.PublisherConnectionID, "publisher_connection_id", "", "the publisher ID of the connection")
	_ = cmd.MarkFlagRequired("account_id")
	_ = cmd.MarkFlagRequired("publisher_connection_id")

	return cmd
}

func runPublisherConnectionsGet(ctx context.Context, client rtb.Client, out io.Writer, format string, opts *publisherConnectionsGetOptions) error {
	p, err := newPrinter(out, format, publisherConnectionView())
	if err != nil {
		return err
	}

	name := rtb.PublisherConnectionName(opts.AccountID, opts.PublisherConnectionID)

	connection, err := client.PublisherConnections().Get(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get publisher connection: %w", err)
	}

	return printOne(connection, p)
}

// batchAction describes one of the batch state changes.
type batchAction struct {
	use    string
	short  string
	banner string
	verb   string
	call   func(rtb.PublisherConnectionsClient, context.Context, string, []string) (*rtb.BatchPublisherConnectionsResponse, error)
}

//nolint:gochecknoglobals // fixed command descriptions
var (
	batchReject = batchAction{
		use:    "batch-reject",
		short:  "Reject publisher connections",
		banner: "Batch rejecting publisher connections for bidder with name: '%s'",
		verb:   "reject",
		call:   rtb.PublisherConnectionsClient.BatchReject,
	}
	batchApprove = batchAction{
		use:    "batch-approve",
		short:  "Approve publisher connections",
		banner: "Batch approving publisher connections for bidder with name: '%s'",
		verb:   "approve",
		call:   rtb.PublisherConnectionsClient.BatchApprove,
	}
)

func newPublisherConnectionsBatchCommand(action batchAction) *cobra.Command {
	opts := &publisherConnectionsBatchOptions{}

	cmd := &cobra.Command{
		Use:   action.use,
		Short: action.short,
		Long:  fmt.Sprintf("Batch %s one or more publisher connections of a bidder account", action.verb),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateOptions(opts)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			return runPublisherConnectionsBatch(cmd.Context(), client, cmd.OutOrStdout(), outputFormat(), action, opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.AccountID, "account_id", "a", 0,
		"the resource ID of the bidders resource under which the publisher connections exist")
	cmd.Flags().StringSliceVarP(&opts.PublisherConnectionIDs, "publisher_connection_ids", "p", nil,
		fmt.Sprintf("one or more resource IDs of publisher connections to %s", action.verb))
	_ = cmd.MarkFlagRequired("account_id")
	_ = cmd.MarkFlagRequired("publisher_connection_ids")

	return cmd
}

func runPublisherConnectionsBatch(
	ctx context.Context,
	client rtb.Client,
	out io.Writer,
	format string,
	action batchAction,
	opts *publisherConnectionsBatchOptions,
) error {
	p, err := newPrinter(out, format, publisherConnectionView())
	if err != nil {
		return err
	}

	parent := rtb.BidderName(opts.AccountID)
	names := rtb.PublisherConnectionNames(opts.AccountID, opts.PublisherConnectionIDs)

	p.Banner(action.banner, parent)

	resp, err := action.call(client.PublisherConnections(), ctx, parent, names)
	if err != nil {
		return fmt.Errorf("failed to %s publisher connections: %w", action.verb, err)
	}

	for _, connection := range resp.PublisherConnections {
		p.Print(connection)
	}

	return p.Flush()
}
