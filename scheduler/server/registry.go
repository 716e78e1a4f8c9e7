package server

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/trebuchetdev/trebuchet/common/stats"
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

// executorRegistry tracks cluster membership through the store. Heartbeats
// arrive on RPC goroutines; the sweep runs on the scheduler loop. All state
// lives in the store, so a failed-over leader sees the same membership.
type executorRegistry struct {
	store store.Store
	cfg   SchedulerConfiguration
	stat  stats.StatsReceiver
}

func newExecutorRegistry(s store.Store, cfg SchedulerConfiguration, stat stats.StatsReceiver) *executorRegistry {
	return &executorRegistry{store: s, cfg: cfg, stat: stat}
}

// register admits an executor. A re-registration under a known id replaces
// the record's address and capacity; a previously evicted id comes back as
// a brand-new executor with no prior state.
func (r *executorRegistry) register(meta *domain.ExecutorMetadata, now time.Time) error {
	meta.LastHeartbeat = now
	meta.Status = domain.ExecutorActive

	cur, err := r.store.GetExecutor(meta.ID)
	if err == store.ErrNotFound {
		if err := r.store.CreateExecutor(meta); err != nil {
			return err
		}
		log.WithFields(log.Fields{"executor": meta.ID, "addr": meta.Addr, "slots": meta.Slots}).Info("Executor registered")
		return nil
	}
	if err != nil {
		return err
	}
	cur.Addr = meta.Addr
	cur.Slots = meta.Slots
	cur.LastHeartbeat = now
	cur.Status = domain.ExecutorActive
	if err := r.store.UpdateExecutor(cur); err != nil {
		return err
	}
	log.WithFields(log.Fields{"executor": meta.ID, "addr": meta.Addr}).Info("Executor re-registered")
	return nil
}

// heartbeat refreshes liveness. Returns false for an unknown executor,
// which the RPC layer translates into a re-register request.
func (r *executorRegistry) heartbeat(executorID string, now time.Time) (bool, error) {
	cur, err := r.store.GetExecutor(executorID)
	if err == store.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	cur.LastHeartbeat = now
	if err := r.store.UpdateExecutor(cur); err != nil {
		return false, err
	}
	return true, nil
}

// deregister removes an executor on graceful shutdown and requeues its
// in-flight tasks immediately instead of waiting for the timeout.
func (r *executorRegistry) deregister(executorID string) error {
	if err := r.requeueTasks(executorID, domain.ErrKindExecutorLost, "executor deregistered"); err != nil {
		return err
	}
	if err := r.store.RemoveExecutor(executorID); err != nil && err != store.ErrNotFound {
		return err
	}
	log.WithFields(log.Fields{"executor": executorID}).Info("Executor deregistered")
	return nil
}

// sweep evicts every executor whose heartbeat is older than the liveness
// timeout, requeuing its tasks. Eviction is authoritative: the CAS to
// Queued bars the assignment loop from resurrecting the old assignment,
// and late reports from the evicted executor fail the ownership check.
func (r *executorRegistry) sweep(now time.Time) ([]string, error) {
	executors, err := r.store.ListExecutors()
	if err != nil {
		return nil, err
	}
	timeout := r.cfg.evictionTimeout()
	var evicted []string
	for _, e := range executors {
		if now.Sub(e.LastHeartbeat) <= timeout {
			continue
		}
		e.Status = domain.ExecutorDead
		if err := r.store.UpdateExecutor(e); err != nil {
			// Raced with a heartbeat; the executor is alive after all.
			continue
		}
		if err := r.requeueTasks(e.ID, domain.ErrKindExecutorLost, "executor heartbeat timed out"); err != nil {
			return evicted, err
		}
		if err := r.store.RemoveExecutor(e.ID); err != nil && err != store.ErrNotFound {
			return evicted, err
		}
		r.stat.Counter(stats.SchedExecutorsEvictedCounter).Inc(1)
		log.WithFields(log.Fields{
			"executor":      e.ID,
			"lastHeartbeat": e.LastHeartbeat,
			"timeout":       timeout,
		}).Warn("Executor evicted")
		evicted = append(evicted, e.ID)
	}
	return evicted, nil
}

func (r *executorRegistry) requeueTasks(executorID, errKind, msg string) error {
	tasks, err := tasksOnExecutor(r.store, executorID)
	if err != nil {
		return err
	}
	cause := &domain.ErrorSummary{Kind: errKind, Message: msg}
	for _, t := range tasks {
		if _, err := requeueOrFailTask(r.store, t.ID, t.Status, cause, r.cfg.MaxTaskAttempts); err != nil {
			if err == domain.ErrStaleTransition {
				continue
			}
			return err
		}
		r.stat.Counter(stats.SchedTasksRequeuedCounter).Inc(1)
	}
	return nil
}
