package store

import (
	"sort"
	"sync"
	"time"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

// Memory is an in-process Store. It upholds the full contract except
// durability, which makes it the backing for tests and the state container
// for the durable file store.
type Memory struct {
	mu        sync.Mutex
	jobs      map[string]*domain.Job
	stages    map[string]*domain.Stage
	tasks     map[string]*domain.Task
	executors map[string]*domain.ExecutorMetadata
	leases    map[string]*Lease
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		jobs:      map[string]*domain.Job{},
		stages:    map[string]*domain.Stage{},
		tasks:     map[string]*domain.Task{},
		executors: map[string]*domain.ExecutorMetadata{},
		leases:    map[string]*Lease{},
	}
}

func (m *Memory) CreateJob(j *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[j.ID]; ok {
		return ErrAlreadyExists
	}
	j.Version = 1
	m.jobs[j.ID] = copyJob(j)
	return nil
}

func (m *Memory) UpdateJob(j *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.jobs[j.ID]
	if !ok {
		return ErrNotFound
	}
	if cur.Version != j.Version {
		return domain.ErrStaleTransition
	}
	if cur.Status != j.Status && !domain.ValidJobTransition(cur.Status, j.Status) {
		return domain.ErrStaleTransition
	}
	j.Version++
	m.jobs[j.ID] = copyJob(j)
	return nil
}

func (m *Memory) GetJob(id string) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyJob(j), nil
}

func (m *Memory) ListJobs() ([]*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Job
	for _, j := range m.jobs {
		out = append(out, copyJob(j))
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (m *Memory) RemoveJob(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(m.jobs, id)
	for sid, s := range m.stages {
		if s.JobID == id {
			delete(m.stages, sid)
		}
	}
	for tid, t := range m.tasks {
		if t.JobID == id {
			delete(m.tasks, tid)
		}
	}
	return nil
}

func (m *Memory) AppendStages(stages []*domain.Stage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range stages {
		if _, ok := m.stages[s.ID]; ok {
			return ErrAlreadyExists
		}
	}
	for _, s := range stages {
		s.Version = 1
		m.stages[s.ID] = copyStage(s)
	}
	return nil
}

func (m *Memory) UpdateStage(s *domain.Stage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.stages[s.ID]
	if !ok {
		return ErrNotFound
	}
	if cur.Version != s.Version {
		return domain.ErrStaleTransition
	}
	if cur.Status != s.Status && !domain.ValidStageTransition(cur.Status, s.Status) {
		return domain.ErrStaleTransition
	}
	s.Version++
	m.stages[s.ID] = copyStage(s)
	return nil
}

func (m *Memory) GetStage(id string) (*domain.Stage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyStage(s), nil
}

func (m *Memory) ListStages(jobID string) ([]*domain.Stage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Stage
	for _, s := range m.stages {
		if s.JobID == jobID {
			out = append(out, copyStage(s))
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (m *Memory) CreateTasks(tasks []*domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range tasks {
		if _, ok := m.tasks[t.ID]; ok {
			return ErrAlreadyExists
		}
	}
	for _, t := range tasks {
		t.Version = 1
		m.tasks[t.ID] = copyTask(t)
	}
	return nil
}

func (m *Memory) UpdateTask(t *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateTaskLocked(t)
}

func (m *Memory) updateTaskLocked(t *domain.Task) error {
	cur, ok := m.tasks[t.ID]
	if !ok {
		return ErrNotFound
	}
	if cur.Version != t.Version {
		return domain.ErrStaleTransition
	}
	if cur.Status != t.Status && !domain.ValidTaskTransition(cur.Status, t.Status) {
		return domain.ErrStaleTransition
	}
	t.Version++
	m.tasks[t.ID] = copyTask(t)
	return nil
}

func (m *Memory) GetTask(id string) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyTask(t), nil
}

func (m *Memory) ListTasks(jobID string) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Task
	for _, t := range m.tasks {
		if t.JobID == jobID {
			out = append(out, copyTask(t))
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (m *Memory) CASTaskStatus(id string, from, to domain.TaskStatus, apply func(*domain.Task)) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	if cur.Status != from {
		return nil, domain.ErrStaleTransition
	}
	if from != to && !domain.ValidTaskTransition(from, to) {
		return nil, domain.ErrStaleTransition
	}
	next := copyTask(cur)
	next.Status = to
	if apply != nil {
		apply(next)
	}
	next.Status = to // apply must not override the transition
	next.Version++
	m.tasks[id] = next
	return copyTask(next), nil
}

func (m *Memory) ListReadyTasks() ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Task
	for _, t := range m.tasks {
		if t.Status != domain.TaskQueued {
			continue
		}
		s, ok := m.stages[t.StageID]
		if !ok || (s.Status != domain.StageReady && s.Status != domain.StageRunning) {
			continue
		}
		out = append(out, copyTask(t))
	}
	submitted := func(jobID string) time.Time {
		if j, ok := m.jobs[jobID]; ok {
			return j.SubmittedAt
		}
		return time.Time{}
	}
	sort.Slice(out, func(i, k int) bool {
		a, b := out[i], out[k]
		at, bt := submitted(a.JobID), submitted(b.JobID)
		if !at.Equal(bt) {
			return at.Before(bt)
		}
		if a.StageID != b.StageID {
			return a.StageID < b.StageID
		}
		return a.Partition < b.Partition
	})
	return out, nil
}

func (m *Memory) CreateExecutor(e *domain.ExecutorMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.executors[e.ID]; ok {
		return ErrAlreadyExists
	}
	e.Version = 1
	m.executors[e.ID] = copyExecutor(e)
	return nil
}

func (m *Memory) UpdateExecutor(e *domain.ExecutorMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.executors[e.ID]
	if !ok {
		return ErrNotFound
	}
	if cur.Version != e.Version {
		return domain.ErrStaleTransition
	}
	e.Version++
	m.executors[e.ID] = copyExecutor(e)
	return nil
}

func (m *Memory) GetExecutor(id string) (*domain.ExecutorMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.executors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyExecutor(e), nil
}

func (m *Memory) ListExecutors() ([]*domain.ExecutorMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.ExecutorMetadata
	for _, e := range m.executors {
		out = append(out, copyExecutor(e))
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (m *Memory) RemoveExecutor(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.executors[id]; !ok {
		return ErrNotFound
	}
	delete(m.executors, id)
	return nil
}

func (m *Memory) AcquireLease(key, holder string, ttl time.Duration, now time.Time) (*Lease, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.leases[key]
	if ok && cur.Holder != holder && cur.Expires.After(now) {
		return nil, ErrLeaseHeld
	}
	next := &Lease{Key: key, Holder: holder, Expires: now.Add(ttl)}
	if ok {
		next.Version = cur.Version + 1
	} else {
		next.Version = 1
	}
	m.leases[key] = next
	cp := *next
	return &cp, nil
}

func (m *Memory) RenewLease(key, holder string, ttl time.Duration, now time.Time) (*Lease, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.leases[key]
	// A holder may renew past expiry: if anyone else had claimed the key in
	// the meantime the holder check fails, so this never steals a lease.
	if !ok || cur.Holder != holder {
		return nil, ErrLeaseHeld
	}
	cur.Expires = now.Add(ttl)
	cur.Version++
	cp := *cur
	return &cp, nil
}

func (m *Memory) ReleaseLease(key, holder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.leases[key]
	if !ok {
		return nil
	}
	if cur.Holder != holder {
		return ErrLeaseHeld
	}
	delete(m.leases, key)
	return nil
}

func (m *Memory) GetLease(key string) (*Lease, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.leases[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *cur
	return &cp, nil
}

// listLeases snapshots all leases; the file store's compaction uses it.
func (m *Memory) listLeases() []*Lease {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Lease
	for _, l := range m.leases {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Key < out[k].Key })
	return out
}

func (m *Memory) Close() error { return nil }

// restore loads a record snapshot without version or transition checks.
// Only the file store's log replay uses it.
func (m *Memory) restore(e logEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case e.Job != nil:
		m.jobs[e.Job.ID] = e.Job
	case e.Stage != nil:
		m.stages[e.Stage.ID] = e.Stage
	case e.Task != nil:
		m.tasks[e.Task.ID] = e.Task
	case e.Executor != nil:
		m.executors[e.Executor.ID] = e.Executor
	case e.Lease != nil:
		m.leases[e.Lease.Key] = e.Lease
	case e.RemoveJobID != "":
		delete(m.jobs, e.RemoveJobID)
		for sid, s := range m.stages {
			if s.JobID == e.RemoveJobID {
				delete(m.stages, sid)
			}
		}
		for tid, t := range m.tasks {
			if t.JobID == e.RemoveJobID {
				delete(m.tasks, tid)
			}
		}
	case e.RemoveExecutorID != "":
		delete(m.executors, e.RemoveExecutorID)
	case e.RemoveLeaseKey != "":
		delete(m.leases, e.RemoveLeaseKey)
	}
}

func copyJob(j *domain.Job) *domain.Job {
	cp := *j
	if j.Result != nil {
		cp.Result = append([]domain.PartitionLocation(nil), j.Result...)
	}
	if j.Error != nil {
		e := *j.Error
		cp.Error = &e
	}
	return &cp
}

func copyStage(s *domain.Stage) *domain.Stage {
	cp := *s
	if s.Producers != nil {
		cp.Producers = append([]string(nil), s.Producers...)
	}
	return &cp
}

func copyTask(t *domain.Task) *domain.Task {
	cp := *t
	if t.Output != nil {
		o := *t.Output
		cp.Output = &o
	}
	if t.Error != nil {
		e := *t.Error
		cp.Error = &e
	}
	return &cp
}

func copyExecutor(e *domain.ExecutorMetadata) *domain.ExecutorMetadata {
	cp := *e
	return &cp
}
