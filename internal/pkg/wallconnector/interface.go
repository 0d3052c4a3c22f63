package wallconnector

import (
	"context"
	"time"
)

// StatusAPI is the wall connector's local status interface. Each call
// performs a single request and returns the decoded record together
// with the raw response body.
type StatusAPI interface {
	WithTimeout(d time.Duration) StatusAPI
	Vitals(ctx context.Context) (*VitalsSnapshot, []byte, error)
	Lifetime(ctx context.Context) (*LifetimeStats, []byte, error)
	Version(ctx context.Context) (*VersionInfo, []byte, error)
	WifiStatus(ctx context.Context) (*WifiStatus, []byte, error)
}
