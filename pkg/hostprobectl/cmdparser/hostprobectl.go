package cmdparser

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hostprobe/hostprobe/pkg/hostprobectl/cmdparser/configdrive"
	"github.com/hostprobe/hostprobe/pkg/hostprobectl/cmdparser/definitions"
	"github.com/hostprobe/hostprobe/pkg/hostprobectl/cmdparser/fibrechannel"
)

var Hostprobectl = &cobra.Command{
	Use:   "hostprobectl",
	Args:  cobra.ExactArgs(0),
	Short: "Hostprobectl is the command-line tool for hypervisor host introspection.",
	Long: "Hostprobectl discovers Fibre Channel adapter identities on a hypervisor\n" +
		"host and stages config drive payloads for its instances.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if definitions.Debug {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// Hostprobectl flags
	Hostprobectl.PersistentFlags().BoolVar(&definitions.Debug, "debug", false, "Enable debug mode")
	Hostprobectl.PersistentFlags().BoolVar(&definitions.Direct, "direct", false, "Run host tools directly instead of through nsenter")
	Hostprobectl.PersistentFlags().IntVar(&definitions.Timeout, "timeout", 0, "Timeout in seconds for each host tool invocation (0 uses the executor default)")

	// Sub commands
	Hostprobectl.AddCommand(fibrechannel.FC, configdrive.ConfigDrive)
}
