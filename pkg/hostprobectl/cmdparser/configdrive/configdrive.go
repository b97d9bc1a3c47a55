package configdrive

import (
	"github.com/spf13/cobra"
)

var ConfigDrive = &cobra.Command{
	Use:   "configdrive",
	Args:  cobra.ExactArgs(0),
	Short: "Manage staged config drives.",
	Long:  "Manage staged config drives.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// ConfigDrive sub commands
	ConfigDrive.AddCommand(configDriveBuild)
}
