package server

import (
	"testing"
	"time"

	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

func Test_LeaseCoordinator_SingleLeader(t *testing.T) {
	st := store.NewMemory()
	cfg := SchedulerConfiguration{}.withDefaults()
	a := newLeaseCoordinator(st, cfg, "a")
	b := newLeaseCoordinator(st, cfg, "b")
	now := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	if elected := a.tick(now); !elected {
		t.Fatalf("first contender not elected")
	}
	if elected := b.tick(now.Add(time.Second)); elected {
		t.Fatalf("second contender elected while lease held")
	}
	if !a.isLeader() || b.isLeader() {
		t.Fatalf("leader flags wrong: a=%v b=%v", a.isLeader(), b.isLeader())
	}
}

func Test_LeaseCoordinator_RenewalKeepsLease(t *testing.T) {
	st := store.NewMemory()
	cfg := SchedulerConfiguration{}.withDefaults()
	a := newLeaseCoordinator(st, cfg, "a")
	b := newLeaseCoordinator(st, cfg, "b")
	now := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	a.tick(now)
	// Renew at every interval; the standby keeps losing even far past the
	// original TTL.
	for i := 1; i <= 10; i++ {
		ts := now.Add(time.Duration(i) * cfg.LeaseRenewInterval)
		a.tick(ts)
		if b.tick(ts.Add(time.Millisecond)) {
			t.Fatalf("standby stole a renewed lease at tick %d", i)
		}
	}
	if !a.isLeader() {
		t.Errorf("renewing leader lost the lease")
	}
}

func Test_LeaseCoordinator_ExpiryFailsOver(t *testing.T) {
	st := store.NewMemory()
	cfg := SchedulerConfiguration{}.withDefaults()
	a := newLeaseCoordinator(st, cfg, "a")
	b := newLeaseCoordinator(st, cfg, "b")
	now := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	a.tick(now)

	// a stops ticking; once the TTL lapses b takes over.
	after := now.Add(cfg.LeaseTTL + time.Second)
	if elected := b.tick(after); !elected {
		t.Fatalf("standby not elected after lease expiry")
	}

	// The old leader discovers the loss on its next renewal.
	a.tick(after.Add(cfg.LeaseRenewInterval))
	if a.isLeader() {
		t.Errorf("expired leader still thinks it leads")
	}
}

func Test_LeaseCoordinator_ReleaseHandsOverImmediately(t *testing.T) {
	st := store.NewMemory()
	cfg := SchedulerConfiguration{}.withDefaults()
	a := newLeaseCoordinator(st, cfg, "a")
	b := newLeaseCoordinator(st, cfg, "b")
	now := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	a.tick(now)
	a.release()
	if elected := b.tick(now.Add(time.Second)); !elected {
		t.Fatalf("standby not elected after release")
	}
}
