package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock. A second timer instance
// would double-fire notifications, so startup binds a deterministic
// localhost port derived from the app name.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance attempts to take the single-instance lock.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", derivePort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the single-instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// derivePort maps the app name onto a fixed private port span so every
// launch of the same app contends for the same address.
func derivePort(appName string) int {
	const (
		basePort = 34200
		span     = 4096
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(strings.ToLower(strings.TrimSpace(appName))))
	return basePort + int(hash.Sum32()%span)
}
