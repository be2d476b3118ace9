//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package sysinfo

// nativeUname is unavailable here; identification falls back to Unknown.
func nativeUname() (Uname, bool) {
	return Uname{}, false
}
