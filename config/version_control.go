package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	MainVersion = "v1.0.0"

	// Modular tools
	GxfScan       = "v1.0.0"
	FastaOverview = "v1.0.0"
	RanSeq        = "v1.0.0"
	SanityCheck   = "v1.0.0"
	Benchmark     = "v1.0.0"
)
