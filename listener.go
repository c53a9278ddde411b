package edge

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// reusePort marks the socket SO_REUSEPORT before bind so several
// listeners can share one address, letting the kernel spread accepted
// connections across them.
func reusePort(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}

// listenGroup binds n TCP listeners to the same address. The first bind
// resolves a ":0" port; the rest attach to the resolved address. On any
// failure the already-bound listeners are closed.
func listenGroup(addr string, n int) ([]net.Listener, error) {
	lc := net.ListenConfig{Control: reusePort}

	listeners := make([]net.Listener, 0, n)
	for i := 0; i < n; i++ {
		ln, err := lc.Listen(context.Background(), "tcp", addr)
		if err != nil {
			for _, prev := range listeners {
				prev.Close()
			}
			return nil, fmt.Errorf("listener %d: %w", i, err)
		}
		listeners = append(listeners, ln)
		if i == 0 {
			addr = ln.Addr().String()
		}
	}
	return listeners, nil
}
