package common

import (
	"os"
	"sync"
)

const DefaultServiceName = "turnaround"

var (
	instanceOnce sync.Once
	instance     string
)

// GetServiceName is SERVICE_NAME, or DefaultServiceName when unset.
func GetServiceName() string {
	if name := os.Getenv("SERVICE_NAME"); name != "" {
		return name
	}
	return DefaultServiceName
}

// GetServiceInstance is the host name of the running process.
func GetServiceInstance() string {
	instanceOnce.Do(func() {
		host, err := os.Hostname()
		if err != nil {
			host = "unknown"
		}
		instance = host
	})
	return instance
}
