//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package sysinfo

import "golang.org/x/sys/unix"

// nativeUname calls uname(2).
func nativeUname() (Uname, bool) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Uname{}, false
	}
	return Uname{
		Sysname:  unix.ByteSliceToString(u.Sysname[:]),
		Nodename: unix.ByteSliceToString(u.Nodename[:]),
		Release:  unix.ByteSliceToString(u.Release[:]),
		Machine:  unix.ByteSliceToString(u.Machine[:]),
	}, true
}
