package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentials       = errors.New("no credentials configured, set --key-file or key_file in the config")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

