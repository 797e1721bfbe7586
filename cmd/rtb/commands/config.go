package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	KeyFile     string `json:"key_file,omitempty"     yaml:"key_file,omitempty"`
	Endpoint    string `json:"endpoint,omitempty"     yaml:"endpoint,omitempty"`
	UserProject string `json:"user_project,omitempty" yaml:"user_project,omitempty"`
	Output      string `json:"output,omitempty"       yaml:"output,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"      yaml:"verbose,omitempty"`
	Debug       bool   `json:"debug,omitempty"        yaml:"debug,omitempty"`
	PageSize    int    `json:"page_size,omitempty"    yaml:"page_size,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the rtb configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the configuration stored in the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			config, err := loadConfigFile(path)
			if err != nil {
				return err
			}

			return showConfig(cmd.OutOrStdout(), outputFormat(), path, config)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: key_file, endpoint, user_project, output, verbose, debug, page_size",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			return setConfigValue(cmd.OutOrStdout(), path, args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			return unsetConfigValue(cmd.OutOrStdout(), path, args[0])
		},
	}
}

// configPath returns the configuration file in use, falling back to
// ~/.rtb/config.yml.
func configPath() (string, error) {
	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}

	return filepath.Join(home, ".rtb", "config.yml"), nil
}

// loadConfigFile reads path. A missing file yields an empty configuration.
func loadConfigFile(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's own config file
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setConfigValue(out io.Writer, path, key, value string) error {
	config, err := loadConfigFile(path)
	if err != nil {
		return err
	}

	err = applyConfigValue(config, key, value)
	if err != nil {
		return err
	}

	err = saveConfigFile(path, config)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Set %s to %s\n", key, value)

	return nil
}

func unsetConfigValue(out io.Writer, path, key string) error {
	config, err := loadConfigFile(path)
	if err != nil {
		return err
	}

	err = applyConfigValue(config, key, "")
	if err != nil {
		return err
	}

	err = saveConfigFile(path, config)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Unset %s\n", key)

	return nil
}

// applyConfigValue sets key on config. An empty value resets it.
func applyConfigValue(config *Config, key, value string) error {
	var err error

	switch key {
	case "key_file":
		config.KeyFile = value
	case "endpoint":
		config.Endpoint = value
	case "user_project":
		config.UserProject = value
	case "output":
		if value != "" {
			_, err = newPrinter(io.Discard, value, view[Config]{})
		}

		config.Output = value
	case "verbose":
		config.Verbose, err = parseConfigBool(key, value)
	case "debug":
		config.Debug, err = parseConfigBool(key, value)
	case "page_size":
		config.PageSize, err = parseConfigInt(key, value)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return err
}

func parseConfigBool(key, value string) (bool, error) {
	if value == "" {
		return false, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidArguments, key)
	}

	return parsed, nil
}

func parseConfigInt(key, value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidArguments, key)
	}

	return parsed, nil
}

func showConfig(out io.Writer, format, path string, config *Config) error {
	switch format {
	case constants.FormatJSON, constants.FormatYAML:
		return encode(out, format, config)
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")
		_ = table.Append("Config File", path)
		_ = table.Append("Key File", orNotAvailable(config.KeyFile))
		_ = table.Append("Endpoint", orNotAvailable(config.Endpoint))
		_ = table.Append("User Project", orNotAvailable(config.UserProject))
		_ = table.Append("Output", orNotAvailable(config.Output))
		_ = table.Append("Verbose", strconv.FormatBool(config.Verbose))
		_ = table.Append("Debug", strconv.FormatBool(config.Debug))

		pageSize := constants.NotAvailable
		if config.PageSize > 0 {
			pageSize = strconv.Itoa(config.PageSize)
		}

		_ = table.Append("Page Size", pageSize)

		return table.Render()
	}
}
