package executor

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Heartbeater keeps one executor alive in the scheduler's registry. It
// runs independently of task execution; a fragment blocking a slot must
// not cost the executor its membership.
type Heartbeater struct {
	executor *Executor
	interval time.Duration
	stopCh   chan struct{}
}

func NewHeartbeater(e *Executor, interval time.Duration) *Heartbeater {
	if interval == 0 {
		interval = 3 * time.Second
	}
	return &Heartbeater{executor: e, interval: interval, stopCh: make(chan struct{})}
}

// Start runs the heartbeat loop until Stop.
func (h *Heartbeater) Start() {
	go h.loop()
}

func (h *Heartbeater) Stop() {
	close(h.stopCh)
}

func (h *Heartbeater) loop() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-h.stopCh:
			return
		case <-ticker.C:
		}
		reregister, err := h.executor.sched.Heartbeat(h.executor.id)
		if err != nil {
			log.WithFields(log.Fields{"executor": h.executor.id, "err": err}).Warn("Heartbeat failed")
			continue
		}
		if reregister {
			// The scheduler dropped us (eviction or failover); come back
			// as a fresh registration.
			log.WithFields(log.Fields{"executor": h.executor.id}).Warn("Scheduler requested re-registration")
			if err := h.executor.Register(); err != nil {
				log.WithFields(log.Fields{"executor": h.executor.id, "err": err}).Error("Re-registration failed")
			}
		}
	}
}
