package fibrechannel

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fcWWPN = &cobra.Command{
	Use:   "wwpn",
	Args:  cobra.ExactArgs(0),
	Short: "Print the WWPNs of the online adapters.",
	Long: "Print the World Wide Port Name of every online Fibre Channel adapter,\n" +
		"one per line, without the 0x prefix.",
	Example: "hostprobectl fc wwpn",
	RunE:    fcWWPNRunE,
}

func fcWWPNRunE(_ *cobra.Command, _ []string) error {
	wwpns, err := newDiscoverer().GetWWPNs()
	if err != nil {
		return err
	}
	for _, wwpn := range wwpns {
		fmt.Println(wwpn)
	}
	return nil
}
