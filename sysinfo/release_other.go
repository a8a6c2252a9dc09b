//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

import "github.com/shirou/gopsutil/v3/host"

func kernelRelease() string {
	v, err := host.KernelVersion()
	if err != nil {
		return ""
	}
	return v
}
