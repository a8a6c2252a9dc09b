package sysinfo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"tdash/logger"
)

// newTestCollector returns a collector with fake OS queries, no battery and
// unroutable lookup URLs.
func newTestCollector(t *testing.T, env map[string]string) *Collector {
	t.Helper()

	c := NewCollector(logger.Noop())
	c.BatteryPaths = []string{filepath.Join(t.TempDir(), "missing", "capacity")}
	c.StoragePath = "/storage/emulated/0"
	c.IPURL = "http://127.0.0.1:1/ip"
	c.WeatherURL = "http://127.0.0.1:1/weather"
	c.IPTimeout = time.Second
	c.WeatherTimeout = time.Second
	c.Getenv = func(key string) string { return env[key] }
	c.Memory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 4096 * mib, Used: 1536 * mib, UsedPercent: 37.5}, nil
	}
	c.Usage = func(_ context.Context, path string) (*disk.UsageStat, error) {
		return &disk.UsageStat{Path: path, Total: 128 * gib, Used: 42*gib + 512*mib}, nil
	}
	c.Release = func() string { return "5.10.157" }
	c.GOOS = "linux"
	return c
}
