//go:build unix

package repr

import (
	"golang.org/x/sys/unix"
)

// accessMode spells the open flags of fd the way fopen modes are written.
func accessMode(fd uintptr) string {
	flags, err := unix.FcntlInt(fd, unix.F_GETFL, 0)
	if err != nil {
		return ""
	}

	appending := flags&unix.O_APPEND != 0
	switch flags & unix.O_ACCMODE {
	case unix.O_RDONLY:
		return "r"
	case unix.O_WRONLY:
		if appending {
			return "a"
		}
		return "w"
	case unix.O_RDWR:
		if appending {
			return "a+"
		}
		return "r+"
	}
	return ""
}
