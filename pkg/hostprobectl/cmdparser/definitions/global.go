package definitions

// Global settings, read from hostprobectl flags
var (
	Debug  bool
	Direct bool

	// Timeout bounds each host tool invocation, in seconds
	Timeout int
)
