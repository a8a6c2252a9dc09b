package sysinfo

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/sync/errgroup"

	"tdash/logger"
)

// DefaultBatteryPaths lists the battery capacity files in probing order. The
// generic Android path is preferred over the named BAT0 supply.
var DefaultBatteryPaths = []string{
	"/sys/class/power_supply/battery/capacity",
	"/sys/class/power_supply/BAT0/capacity",
}

// Collector gathers dashboard facts. Each method is independent of the others
// and may be called in any order.
type Collector struct {
	// BatteryPaths is consulted in order; the first existing path wins.
	BatteryPaths []string

	// StoragePath is the filesystem root whose usage is reported.
	StoragePath string

	IPURL          string
	WeatherURL     string
	IPTimeout      time.Duration
	WeatherTimeout time.Duration

	// NoNetwork skips the HTTP lookups entirely.
	NoNetwork bool

	// Strict makes memory and storage failures fatal.
	Strict bool

	Client *http.Client
	Getenv func(string) string
	Log    logger.Logger

	// Memory and Usage query the OS; Release returns the kernel release.
	Memory  MemoryFunc
	Usage   UsageFunc
	Release func() string

	// GOOS names the platform for the OS row.
	GOOS string
}

// MemoryFunc queries physical memory usage.
type MemoryFunc func(ctx context.Context) (*mem.VirtualMemoryStat, error)

// UsageFunc queries filesystem usage for a path.
type UsageFunc func(ctx context.Context, path string) (*disk.UsageStat, error)

// NewCollector returns a Collector that reads the real system. Callers fill in
// the source URLs, timeouts and storage path before use.
//
// Parameters:
//   - log: Receives debug output for degraded facts; nil discards it
//
// Returns:
//   - A Collector using DefaultBatteryPaths, gopsutil for memory and storage,
//     and a plain http.Client for the network lookups
func NewCollector(log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{
		BatteryPaths: append([]string(nil), DefaultBatteryPaths...),
		Client:       &http.Client{},
		Getenv:       os.Getenv,
		Log:          log,
		Memory:       mem.VirtualMemoryWithContext,
		Usage:        disk.UsageWithContext,
		Release:      kernelRelease,
		GOOS:         runtime.GOOS,
	}
}

// Collect gathers every fact for one dashboard run. The two network lookups
// run concurrently while the local facts are read. The only error returned is
// a memory or storage failure in strict mode.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	netCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	snap := &Snapshot{}

	var g errgroup.Group
	g.Go(func() error {
		snap.System.PublicIP = c.PublicIP(netCtx)
		return nil
	})
	g.Go(func() error {
		snap.Weather = c.Weather(netCtx)
		return nil
	})

	snap.System.Battery = c.Battery()

	memory, err := c.MemoryStats(ctx)
	if err != nil {
		cancel()
		_ = g.Wait()
		return nil, err
	}
	snap.System.Memory = memory

	storage, err := c.DiskStats(ctx)
	if err != nil {
		cancel()
		_ = g.Wait()
		return nil, err
	}
	snap.System.Disk = storage

	snap.Environment = c.Environment()

	_ = g.Wait()
	return snap, nil
}
