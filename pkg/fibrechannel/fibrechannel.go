package fibrechannel

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hostprobe/hostprobe/pkg/exechelper"
	"github.com/hostprobe/hostprobe/pkg/exechelper/nsexecutor"
	log "github.com/sirupsen/logrus"
)

// HBA holds the attributes of a single fc_host entry as reported by
// systool, keyed by attribute name with internal spaces removed.
type HBA map[string]string

const (
	systoolCommand  = "systool"
	portStateOnline = "Online"

	attrPortState = "port_state"
	attrPortName  = "port_name"
	attrNodeName  = "node_name"
)

// ErrNoAdaptersFound indicates that systool ran successfully but produced
// no output at all, so not even an empty adapter list can be trusted.
var ErrNoAdaptersFound = errors.New("cannot find any Fibre Channel HBAs")

// MissingFieldError indicates an online fc_host record without an
// attribute the sysfs class guarantees for well-formed entries.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("fc_host record has no %q attribute", e.Field)
}

// HBADiscoverer interface
type HBADiscoverer interface {
	DiscoverHBAs() ([]HBA, error)

	GetWWPNs() ([]string, error)

	GetWWNNs() ([]string, error)
}

type systoolDiscoverer struct {
	cmdExec exechelper.Executor

	cmdName string

	// seconds per systool invocation, 0 uses the executor's default
	timeout int
}

// NewDiscoverer creates a discoverer which inspects the host's fc_host
// class through the privileged executor.
func NewDiscoverer() HBADiscoverer {
	return NewDiscovererWithExecutor(nsexecutor.New())
}

// NewDiscovererWithExecutor creates a discoverer running systool through
// the given executor.
func NewDiscovererWithExecutor(cmdExec exechelper.Executor) HBADiscoverer {
	return NewDiscovererWithTimeout(cmdExec, 0)
}

// NewDiscovererWithTimeout creates a discoverer whose systool invocations
// are bounded by the given timeout in seconds.
func NewDiscovererWithTimeout(cmdExec exechelper.Executor, timeout int) HBADiscoverer {
	return &systoolDiscoverer{
		cmdName: systoolCommand,
		cmdExec: cmdExec,
		timeout: timeout,
	}
}

// ParseHBAInfo parses the output of 'systool -c fc_host -v' into one
// attribute map per fc_host entry. Entries are separated by two
// consecutive blank lines. Lines that are not a 'key = "value"' pair are
// dropped, as is a trailing entry not closed by a separator.
func ParseHBAInfo(raw string) []HBA {
	lines := strings.Split(raw, "\n")
	// the first two lines are a header, not data
	if len(lines) <= 2 {
		return []HBA{}
	}
	lines = lines[2:]

	hbas := []HBA{}
	hba := HBA{}
	lastLine := ""
	haveLastLine := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" && haveLastLine && lastLine == "" {
			if len(hba) > 0 {
				hbas = append(hbas, hba)
				hba = HBA{}
			}
		} else if kv := strings.Split(line, "="); len(kv) == 2 {
			key := strings.ReplaceAll(strings.TrimSpace(kv[0]), " ", "")
			value := strings.ReplaceAll(strings.TrimSpace(kv[1]), "\"", "")
			hba[key] = value
		}
		lastLine = line
		haveLastLine = true
	}

	return hbas
}

// DiscoverHBAs returns the attribute maps of all fc_host entries on the
// host. A host without the systool utility is treated as a host without
// adapters.
func (d *systoolDiscoverer) DiscoverHBAs() ([]HBA, error) {
	result := d.cmdExec.RunCommand(exechelper.ExecParams{
		CmdName: d.cmdName,
		CmdArgs: []string{"-c", "fc_host", "-v"},
		Timeout: d.timeout,
	})
	if result.Error != nil {
		// covers both the privileged wrapper reporting its sentinel code
		// and a direct invocation failing on a missing binary
		if result.ExitCode == exechelper.ExitCodeToolNotFound || errors.Is(result.Error, exec.ErrNotFound) {
			log.Warn("systool is not installed")
			return []HBA{}, nil
		}
		return nil, result.Error
	}

	if result.OutBuf == nil || result.OutBuf.Len() == 0 {
		return nil, ErrNoAdaptersFound
	}

	return ParseHBAInfo(result.OutBuf.String()), nil
}

// GetWWPNs returns the World Wide Port Names of all online adapters,
// without their 0x prefix.
func (d *systoolDiscoverer) GetWWPNs() ([]string, error) {
	return d.onlinePortAttr(attrPortName)
}

// GetWWNNs returns the World Wide Node Names of all online adapters,
// without their 0x prefix.
func (d *systoolDiscoverer) GetWWNNs() ([]string, error) {
	return d.onlinePortAttr(attrNodeName)
}

func (d *systoolDiscoverer) onlinePortAttr(attr string) ([]string, error) {
	hbas, err := d.DiscoverHBAs()
	if err != nil {
		return nil, err
	}

	wwns := []string{}
	for _, hba := range hbas {
		if hba[attrPortState] != portStateOnline {
			continue
		}
		value, exists := hba[attr]
		if !exists {
			return nil, &MissingFieldError{Field: attr}
		}
		wwns = append(wwns, strings.TrimPrefix(value, "0x"))
	}

	return wwns, nil
}
