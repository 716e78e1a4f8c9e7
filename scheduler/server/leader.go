package server

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

// leaseCoordinator runs leader election over the store's lease primitive.
// It is driven by the scheduler loop calling tick; no background goroutine
// of its own, which keeps elections deterministic in tests.
type leaseCoordinator struct {
	store  store.Store
	key    string
	holder string
	ttl    time.Duration
	renew  time.Duration

	// mu guards leader; tick runs on the loop goroutine while isLeader is
	// read from RPC goroutines.
	mu        sync.Mutex
	leader    bool
	lastRenew time.Time
}

func newLeaseCoordinator(s store.Store, cfg SchedulerConfiguration, holderID string) *leaseCoordinator {
	return &leaseCoordinator{
		store:  s,
		key:    cfg.LeaseKey,
		holder: holderID,
		ttl:    cfg.LeaseTTL,
		renew:  cfg.LeaseRenewInterval,
	}
}

// tick acquires or renews the lease. Returns elected=true on the tick that
// wins the lease; the scheduler uses that edge to rebuild its views from
// the store.
func (c *leaseCoordinator) tick(now time.Time) (elected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.leader {
		if _, err := c.store.AcquireLease(c.key, c.holder, c.ttl, now); err != nil {
			if err != store.ErrLeaseHeld {
				log.WithFields(log.Fields{"key": c.key, "err": err}).Error("Lease acquire failed")
			}
			return false
		}
		c.leader = true
		c.lastRenew = now
		log.WithFields(log.Fields{"key": c.key, "holder": c.holder}).Info("Acquired leader lease")
		return true
	}

	if now.Sub(c.lastRenew) < c.renew {
		return false
	}
	if _, err := c.store.RenewLease(c.key, c.holder, c.ttl, now); err != nil {
		// Lost the lease; stop scheduling until re-elected.
		c.leader = false
		log.WithFields(log.Fields{"key": c.key, "holder": c.holder, "err": err}).Warn("Lost leader lease")
		return false
	}
	c.lastRenew = now
	return false
}

func (c *leaseCoordinator) isLeader() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.leader
}

// release gives up the lease on shutdown so a standby takes over without
// waiting out the TTL.
func (c *leaseCoordinator) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.leader {
		return
	}
	c.leader = false
	if err := c.store.ReleaseLease(c.key, c.holder); err != nil {
		log.WithFields(log.Fields{"key": c.key, "err": err}).Warn("Lease release failed")
	}
}
