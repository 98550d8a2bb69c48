package repr

import (
	"fmt"
	"net"
	"os"
	"reflect"
	"syscall"
)

var (
	fileType        = reflect.TypeFor[*os.File]()
	netConnType     = reflect.TypeFor[net.Conn]()
	syscallConnType = reflect.TypeFor[syscall.Conn]()
)

func isHandle(t reflect.Type) bool {
	return t == fileType || t.Implements(netConnType) || t.Implements(syscallConnType)
}

// renderHandle describes an open file or socket without touching its data.
// Descriptors that cannot be read, closed files for instance, show as #-1.
func renderHandle(v reflect.Value) string {
	h := v.Interface()

	subtype := "socket"
	_, stream := h.(*os.File)
	if stream {
		subtype = "stream"
	}

	fd, mode := probe(h, stream)
	if mode != "" {
		return fmt.Sprintf("<resource: %s #%d %s>", subtype, fd, mode)
	}
	return fmt.Sprintf("<resource: %s #%d>", subtype, fd)
}

// probe reads the descriptor of h, and its access mode when withMode is set.
// It goes through SyscallConn rather than os.File.Fd, which would switch the
// file to blocking mode.
func probe(h any, withMode bool) (fd int, mode string) {
	fd = -1
	sc, ok := h.(syscall.Conn)
	if !ok {
		return fd, ""
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return fd, ""
	}
	err = raw.Control(func(d uintptr) {
		fd = int(d)
		if withMode {
			mode = accessMode(d)
		}
	})
	if err != nil {
		return -1, ""
	}
	return fd, mode
}
