package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
	"github.com/spf13/cobra"
)

type endpointsListOptions struct {
	AccountID int64 `validate:"gt=0"`
	PageSize  int   `validate:"gte=0"`
}

type endpointsGetOptions struct {
	AccountID  int64 `validate:"gt=0"`
	EndpointID int64 `validate:"gt=0"`
}

type endpointsPatchOptions struct {
	AccountID       int64  `validate:"gt=0"`
	EndpointID      int64  `validate:"gt=0"`
	URL             string `validate:"omitempty,url"`
	MaximumQPS      int64  `validate:"gte=0"`
	TradingLocation string `validate:"omitempty,oneof=US_WEST US_EAST EUROPE ASIA"`
	BidProtocol     string `validate:"omitempty,oneof=GOOGLE_RTB OPENRTB_JSON OPENRTB_PROTOBUF"`
	UpdateMask      []string
}

// NewEndpointsCommand creates the endpoints command group.
func NewEndpointsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"endpoint"},
		Short:   "Manage bidder endpoints",
		Long:    "List, inspect and update the endpoints that receive bid requests for a bidder account",
	}

	cmd.AddCommand(newEndpointsListCommand())
	cmd.AddCommand(newEndpointsGetCommand())
	cmd.AddCommand(newEndpointsPatchCommand())

	return cmd
}

func newEndpointsListCommand() *cobra.Command {
	opts := &endpointsListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List endpoints",
		Long:  "Lists endpoints for the given bidder account. The server may return fewer endpoints per page than requested.",
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

			return runEndpointsList(cmd.Context(), client, cmd.OutOrStdout(), outputFormat(), opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.AccountID, "account_id", "a", 0,
		"the resource ID of the bidders resource under which the endpoints exist")
	cmd.Flags().IntVarP(&opts.PageSize, "page_size", "p", constants.MaximumPageSize,
		"the number of rows to return per page, the server may return fewer rows than specified")
	_ = cmd.MarkFlagRequired("account_id")

	return cmd
}

func runEndpointsList(ctx context.Context, client rtb.Client, out io.Writer, format string, opts *endpointsListOptions) error {
	p, err := newPrinter(out, format, endpointView())
	if err != nil {
		return err
	}

	p.Banner("Listing endpoints for bidder account '%d':", opts.AccountID)

	params := rtb.NewListParams().WithPageSize(opts.PageSize)
	endpoints := rtb.ListAll[rtb.Endpoint](ctx, client.Endpoints(), rtb.BidderName(opts.AccountID), params)

	err = printAll(endpoints, p)
	if err != nil {
		return fmt.Errorf("failed to list endpoints: %w", err)
	}

	return nil
}

func newEndpointsGetCommand() *cobra.Command {
	opts := &endpointsGetOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an endpoint",
		Long:  "Display a single endpoint of a bidder account",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateOptions(opts)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			return runEndpointsGet(cmd.Context(), client, cmd.OutOrStdout(), outputFormat(), opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.AccountID, "account_id", "a", 0, "the resource ID of the bidders resource")
	cmd.Flags().Int64VarP(&opts.EndpointID, "endpoint_id", "e", 0, "the resource ID of the endpoint")
	_ = cmd.MarkFlagRequired("account_id")
	_ = cmd.MarkFlagRequired("endpoint_id")

	return cmd
}

func runEndpointsGet(ctx context.Context, client rtb.Client, out io.Writer, format string, opts *endpointsGetOptions) error {
	p, err := newPrinter(out, format, endpointView())
	if err != nil {
		return err
	}

	endpoint, err := client.Endpoints().Get(ctx, rtb.EndpointName(opts.AccountID, opts.EndpointID))
	if err != nil {
		return fmt.Errorf("failed to get endpoint: %w", err)
	}

	return printOne(endpoint, p)
}

func newEndpointsPatchCommand() *cobra.Command {
	opts := &endpointsPatchOptions{}

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Update an endpoint",
		Long:  "Update the fields of an endpoint given as flags; fields without a flag are left unchanged",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.UpdateMask = endpointUpdateMask(cmd)

			err := validateOptions(opts)
			if err != nil {
				return err
			}

			if len(opts.UpdateMask) == 0 {
				return ErrNothingToUpdate
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			return runEndpointsPatch(cmd.Context(), client, cmd.OutOrStdout(), outputFormat(), opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.AccountID, "account_id", "a", 0, "the resource ID of the bidders resource")
	cmd.Flags().Int64VarP(&opts.EndpointID, "endpoint_id", "e", 0, "the resource ID of the endpoint")
	cmd.Flags().StringVar(&opts.URL, "url", "", "the URL that bid requests are sent to")
	cmd.Flags().Int64Var(&opts.MaximumQPS, "maximum_qps", 0, "the maximum number of queries per second sent to the endpoint")
	cmd.Flags().StringVar(&opts.TradingLocation, "trading_location", "", "the trading location (US_WEST, US_EAST, EUROPE, ASIA)")
	cmd.Flags().StringVar(&opts.BidProtocol, "bid_protocol", "", "the bid protocol (GOOGLE_RTB, OPENRTB_JSON, OPENRTB_PROTOBUF)")
	_ = cmd.MarkFlagRequired("account_id")
	_ = cmd.MarkFlagRequired("endpoint_id")

	return cmd
}

// endpointUpdateMask names the endpoint fields whose flags were set.
func endpointUpdateMask(cmd *cobra.Command) []string {
	fields := []struct {
		flag  string
		field string
	}{
		{"url", "url"},
		{"maximum_qps", "maximumQps"},
		{"trading_location", "tradingLocation"},
		{"bid_protocol", "bidProtocol"},
	}

	mask := make([]string, 0, len(fields))

	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			mask = append(mask, f.field)
		}
	}

	return mask
}

func runEndpointsPatch(ctx context.Context, client rtb.Client, out io.Writer, format string, opts *endpointsPatchOptions) error {
	p, err := newPrinter(out, format, endpointView())
	if err != nil {
		return err
	}

	name := rtb.EndpointName(opts.AccountID, opts.EndpointID)

	p.Banner("Updating endpoint with name: '%s'", name)

	endpoint, err := client.Endpoints().Patch(ctx, name, &rtb.EndpointPatchRequest{
		Endpoint: rtb.Endpoint{
			URL:             opts.URL,
			MaximumQPS:      opts.MaximumQPS,
			TradingLocation: opts.TradingLocation,
			BidProtocol:     opts.BidProtocol,
		},
		UpdateMask: opts.UpdateMask,
	})
	if err != nil {
		return fmt.Errorf("failed to update endpoint: %w", err)
	}

	return printOne(endpoint, p)
}
