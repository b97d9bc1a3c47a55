package fibrechannel

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hostprobe/hostprobe/pkg/hostprobectl/formatter"
)

var fcList = &cobra.Command{
	Use:   "list",
	Args:  cobra.ExactArgs(0),
	Short: "List the host's Fibre Channel adapters.",
	Long: "You can use 'hostprobectl fc list' to obtain the identity and state\n" +
		"of every fc_host entry on this host.",
	Example: "hostprobectl fc list",
	RunE:    fcListRunE,
}

func fcListRunE(_ *cobra.Command, _ []string) error {
	hbas, err := newDiscoverer().DiscoverHBAs()
	if err != nil {
		return err
	}

	hbasHeader := table.Row{"#", "ClassDevice", "PortName", "NodeName", "PortState", "Speed"}
	var hbasRows []table.Row
	for i, hba := range hbas {
		hbasRows = append(hbasRows, table.Row{i + 1, hba["ClassDevice"], hba["port_name"],
			hba["node_name"], hba["port_state"], hba["speed"]})
	}

	formatter.PrintTable("Fibre Channel Adapters", hbasHeader, hbasRows)
	return nil
}
