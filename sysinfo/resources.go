package sysinfo

import (
	"context"
	"fmt"
)

// MemoryStats reports physical memory usage. A failed query degrades to
// "Unavailable", or is returned as an error when the collector is strict.
func (c *Collector) MemoryStats(ctx context.Context) (Fact[MemoryStats], error) {
	vm, err := c.Memory(ctx)
	if err != nil {
		err = fmt.Errorf("memory query: %w", err)
		if c.Strict {
			return Fact[MemoryStats]{}, err
		}
		c.Log.Debug("%v", err)
		return Degraded[MemoryStats](FallbackUnavailable, err), nil
	}

	c.Log.Debug("memory: %s used of %s", FormatBytes(vm.Used), FormatBytes(vm.Total))
	return Known(MemoryStats{
		UsedMB:  vm.Used / mib,
		TotalMB: vm.Total / mib,
		Percent: vm.UsedPercent,
	}), nil
}

// DiskStats reports usage of the storage path. A failed query degrades to
// "Unavailable", or is returned as an error when the collector is strict.
func (c *Collector) DiskStats(ctx context.Context) (Fact[DiskStats], error) {
	usage, err := c.Usage(ctx, c.StoragePath)
	if err != nil {
		err = fmt.Errorf("storage query for %s: %w", c.StoragePath, err)
		if c.Strict {
			return Fact[DiskStats]{}, err
		}
		c.Log.Debug("%v", err)
		return Degraded[DiskStats](FallbackUnavailable, err), nil
	}

	c.Log.Debug("storage %s: %s used of %s", c.StoragePath, FormatBytes(usage.Used), FormatBytes(usage.Total))
	return Known(DiskStats{
		UsedGB:  usage.Used / gib,
		TotalGB: usage.Total / gib,
	}), nil
}
