package commands

import (
	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// VersionInfo describes the build of the CLI.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the rtb CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{Version: version, Commit: commit, Built: date}
			out := cmd.OutOrStdout()

			format := outputFormat()
			if format == constants.FormatJSON || format == constants.FormatYAML {
				return encode(out, format, info)
			}

			table := tablewriter.NewWriter(out)
			table.Header("Property", "Value")
			_ = table.Append("Version", info.Version)
			_ = table.Append("Commit", info.Commit)
			_ = table.Append("Built", info.Built)

			return table.Render()
		},
	}
}
