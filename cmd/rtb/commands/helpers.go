package commands

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/internal/logging"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
	"github.com/fivetwenty-io/rtb-client/pkg/rtbclient"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrNothingToUpdate  = errors.New("nothing to update, set at least one field flag")
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var optionsValidator = validator.New(validator.WithRequiredStructEnabled())

// validateOptions checks parsed flag values before any client is created.
func validateOptions(opts interface{}) error {
	err := optionsValidator.Struct(opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	return nil
}

// CreateClient builds an API client from the viper configuration.
func CreateClient(ctx context.Context) (rtb.Client, error) {
	config, err := newClientConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}

	return rtbclient.New(ctx, config)
}

// newClientConfig maps the CLI settings in v onto a client configuration.
func newClientConfig(v *viper.Viper) (*rtb.Config, error) {
	keyFile := v.GetString("key_file")
	if keyFile == "" {
		return nil, constants.ErrNoCredentials
	}

	logger, err := logging.New(&logging.Config{
		Level: logging.LevelFor(v.GetBool("verbose"), v.GetBool("debug")),
	})
	if err != nil {
		return nil, err
	}

	return &rtb.Config{
		Endpoint:     v.GetString("endpoint"),
		KeyFile:      keyFile,
		QuotaProject: v.GetString("user_project"),
		Debug:        v.GetBool("debug"),
		Logger:       logger,
		RetryMax:     constants.LowRetryMax,
	}, nil
}

// outputFormat returns the configured output format.
func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// pageSize prefers an explicit --page_size, then the page_size config key.
func pageSize(cmd *cobra.Command, flagValue int) int {
	if !cmd.Flags().Changed("page_size") && viper.IsSet("page_size") {
		return viper.GetInt("page_size")
	}

	return flagValue
}

// printAll drains items into p. Items received before an error stay
// displayed; the error is returned after the printer is flushed.
func printAll[T any](items iter.Seq2[T, error], p *printer[T]) error {
	var listErr error

	for item, err := range items {
		if err != nil {
			listErr = err

			break
		}

		p.Print(item)
	}

	flushErr := p.Flush()
	if listErr != nil {
		return listErr
	}

	if flushErr != nil {
		return flushErr
	}

	if p.Count() == 0 {
		p.PrintEmpty()
	}

	return nil
}

// printOne displays a single resource.
func printOne[T any](item *T, p *printer[T]) error {
	if item == nil {
		return p.Flush()
	}

	return p.PrintOne(*item)
}
