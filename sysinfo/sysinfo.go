// Package sysinfo gathers the facts shown on the dashboard: battery level,
// memory and storage usage, public IP, environment details and the weather.
//
// Every fact is produced as a Fact value that is either the gathered value or
// a fixed placeholder, so a failing source never prevents the dashboard from
// rendering.
package sysinfo

import (
	"errors"
	"fmt"
)

// Placeholders shown when a fact cannot be gathered.
const (
	// FallbackUnknown is shown for a missing battery or SHELL.
	FallbackUnknown = "Unknown"
	// FallbackNA is shown when a battery capacity file exists but is unreadable.
	FallbackNA = "N/A"
	// FallbackOffline is shown when the public IP lookup fails.
	FallbackOffline = "Offline"
	// FallbackWeather is shown when the weather lookup fails.
	FallbackWeather = "Weather unavailable"
	// FallbackHome is shown when HOME is not set.
	FallbackHome = "?"
	// FallbackUnavailable is shown when a memory or storage query fails.
	FallbackUnavailable = "Unavailable"
)

var (
	// ErrNoBattery reports that none of the battery capacity paths exist.
	ErrNoBattery = errors.New("no battery capacity file found")

	// ErrNetworkDisabled reports that a lookup was skipped because networking
	// is turned off.
	ErrNetworkDisabled = errors.New("network lookups disabled")
)

// MemoryStats is the physical memory usage in whole mebibytes.
type MemoryStats struct {
	UsedMB  uint64
	TotalMB uint64
	Percent float64
}

func (m MemoryStats) String() string {
	return fmt.Sprintf("%.1f%% (%dMB / %dMB)", m.Percent, m.UsedMB, m.TotalMB)
}

// DiskStats is the storage usage in whole gibibytes.
type DiskStats struct {
	UsedGB  uint64
	TotalGB uint64
}

func (d DiskStats) String() string {
	return fmt.Sprintf("%dGB used / %dGB total", d.UsedGB, d.TotalGB)
}

// SystemSnapshot holds the device state facts.
type SystemSnapshot struct {
	Battery  Fact[string]
	Memory   Fact[MemoryStats]
	Disk     Fact[DiskStats]
	PublicIP Fact[string]
}

// EnvironmentSnapshot holds details about the OS and the user's environment.
// Every field is always populated, with placeholders where needed.
type EnvironmentSnapshot struct {
	// OSName is the platform name followed by the kernel release (e.g. "Android 5.10.157").
	OSName string

	// ShellPath is the value of SHELL.
	ShellPath string

	// RuntimeVersion is the Go runtime version without the "go" prefix.
	RuntimeVersion string

	// HomeDir is the value of HOME.
	HomeDir string
}

// Snapshot is everything gathered for a single dashboard run.
type Snapshot struct {
	System      SystemSnapshot
	Environment EnvironmentSnapshot
	Weather     Fact[string]
}
