package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Battery returns the charge level as "<n>%" from the first battery capacity
// file that exists. It degrades to "Unknown" when no file exists and to "N/A"
// when the file cannot be read or does not hold a non-negative integer.
func (c *Collector) Battery() Fact[string] {
	for _, path := range c.BatteryPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		level, err := readCapacity(path)
		if err != nil {
			c.Log.Debug("battery: %v", err)
			return Degraded[string](FallbackNA, err)
		}
		return Known(fmt.Sprintf("%d%%", level))
	}

	c.Log.Debug("battery: none of %d capacity paths exist", len(c.BatteryPaths))
	return Degraded[string](FallbackUnknown, ErrNoBattery)
}

func readCapacity(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	level, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return level, nil
}
