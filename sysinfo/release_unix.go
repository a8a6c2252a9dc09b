//go:build linux || darwin || freebsd || netbsd || openbsd

package sysinfo

import "golang.org/x/sys/unix"

// kernelRelease returns the kernel release from uname(2), e.g. "5.10.157-android13".
func kernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}
