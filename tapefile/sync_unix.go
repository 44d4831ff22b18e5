//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build darwin dragonfly freebsd linux netbsd openbsd solaris

package tapefile

import (
	"os"

	"golang.org/x/sys/unix"
)

func sync(file *os.File) error {
	for {
		err := unix.Fsync(int(file.Fd()))
		if err != unix.EINTR {
			return err
		}
	}
}
