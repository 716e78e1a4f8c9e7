package server

import (
	"fmt"
	"time"
)

// SchedulerConfiguration sets the tunables of a scheduler instance. The
// zero value of any field falls back to the listed default rather than
// erroring.
type SchedulerConfiguration struct {
	// HeartbeatInterval is the rate executors are told to heartbeat at.
	// Default 3s.
	HeartbeatInterval time.Duration

	// SweepInterval is how often the monitor scans for timed-out
	// executors. Must be <= HeartbeatInterval. Default 1s.
	SweepInterval time.Duration

	// EvictionMultiplier k sets the liveness timeout to
	// k * HeartbeatInterval. Default 3.
	EvictionMultiplier int

	// MaxTaskAttempts is the per-task retry budget; on the attempt that
	// reaches it the task goes Failed and the job fails. Default 3.
	MaxTaskAttempts int

	// LeaseKey names the cluster; all instances sharing a store contend on
	// the same key. Default "default".
	LeaseKey string

	// LeaseTTL bounds how long a crashed leader blocks failover.
	// Default 10s.
	LeaseTTL time.Duration

	// LeaseRenewInterval is how often the leader extends its lease.
	// Default 3s.
	LeaseRenewInterval time.Duration

	// Retention is how long terminal jobs stay in the store before GC.
	// Default 24h.
	Retention time.Duration

	// DebugMode disables the background loop; the owner drives the
	// scheduler by calling step() directly. Tests only.
	DebugMode bool
}

func (c SchedulerConfiguration) String() string {
	return fmt.Sprintf(
		"SchedulerConfiguration: {heartbeat: %v, sweep: %v, k: %d, maxAttempts: %d, leaseKey: %s, leaseTTL: %v, renew: %v, retention: %v}",
		c.HeartbeatInterval, c.SweepInterval, c.EvictionMultiplier, c.MaxTaskAttempts,
		c.LeaseKey, c.LeaseTTL, c.LeaseRenewInterval, c.Retention)
}

func (c SchedulerConfiguration) withDefaults() SchedulerConfiguration {
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = 3 * time.Second
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = time.Second
	}
	if c.EvictionMultiplier == 0 {
		c.EvictionMultiplier = 3
	}
	if c.MaxTaskAttempts == 0 {
		c.MaxTaskAttempts = 3
	}
	if c.LeaseKey == "" {
		c.LeaseKey = "default"
	}
	if c.LeaseTTL == 0 {
		c.LeaseTTL = 10 * time.Second
	}
	if c.LeaseRenewInterval == 0 {
		c.LeaseRenewInterval = 3 * time.Second
	}
	if c.Retention == 0 {
		c.Retention = 24 * time.Hour
	}
	return c
}

// evictionTimeout is how stale a heartbeat may be before the executor is
// declared dead.
func (c SchedulerConfiguration) evictionTimeout() time.Duration {
	return time.Duration(c.EvictionMultiplier) * c.HeartbeatInterval
}
