package devctl

import (
	"fmt"
	"net"
	"time"
)

func isPortBusy(port int) (bool, string) {
	// Try connecting; if succeeds, someone is listening.
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), 200*time.Millisecond)
	if err == nil {
		_ = conn.Close()
		return true, "tcp listener detected"
	}
	return false, ""
}

// warnBusyPorts logs ports that already have a listener. It never fails the session.
func warnBusyPorts(ports map[string]int) {
	for name, p := range ports {
		if busy, desc := isPortBusy(p); busy {
			warn("[ports] %s port %d is busy (%s); the %s may fail to bind", name, p, desc, name)
		}
	}
}
