package fibrechannel

import (
	"github.com/spf13/cobra"

	"github.com/hostprobe/hostprobe/pkg/exechelper"
	"github.com/hostprobe/hostprobe/pkg/exechelper/basicexecutor"
	"github.com/hostprobe/hostprobe/pkg/exechelper/nsexecutor"
	fc "github.com/hostprobe/hostprobe/pkg/fibrechannel"
	"github.com/hostprobe/hostprobe/pkg/hostprobectl/cmdparser/definitions"
)

var FC = &cobra.Command{
	Use:   "fc",
	Args:  cobra.ExactArgs(0),
	Short: "Inspect the Fibre Channel adapters.",
	Long:  "Inspect the Fibre Channel adapters.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// FC sub commands
	FC.AddCommand(fcList, fcWWPN, fcWWNN)
}

func newDiscoverer() fc.HBADiscoverer {
	var cmdExec exechelper.Executor = nsexecutor.New()
	if definitions.Direct {
		cmdExec = basicexecutor.New()
	}
	return fc.NewDiscovererWithTimeout(cmdExec, definitions.Timeout)
}
