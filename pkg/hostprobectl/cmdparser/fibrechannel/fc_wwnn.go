package fibrechannel

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fcWWNN = &cobra.Command{
	Use:   "wwnn",
	Args:  cobra.ExactArgs(0),
	Short: "Print the WWNNs of the online adapters.",
	Long: "Print the World Wide Node Name of every online Fibre Channel adapter,\n" +
		"one per line, without the 0x prefix.",
	Example: "hostprobectl fc wwnn",
	RunE:    fcWWNNRunE,
}

func fcWWNNRunE(_ *cobra.Command, _ []string) error {
	wwnns, err := newDiscoverer().GetWWNNs()
	if err != nil {
		return err
	}
	for _, wwnn := range wwnns {
		fmt.Println(wwnn)
	}
	return nil
}
