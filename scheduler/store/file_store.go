package store

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

// logEntry is one record snapshot in the append-only log. Exactly one field
// is set per entry.
type logEntry struct {
	Job              *domain.Job              `json:"job,omitempty"`
	Stage            *domain.Stage            `json:"stage,omitempty"`
	Task             *domain.Task             `json:"task,omitempty"`
	Executor         *domain.ExecutorMetadata `json:"executor,omitempty"`
	Lease            *Lease                   `json:"lease,omitempty"`
	RemoveJobID      string                   `json:"rm_job,omitempty"`
	RemoveExecutorID string                   `json:"rm_executor,omitempty"`
	RemoveLeaseKey   string                   `json:"rm_lease,omitempty"`
}

// FileStore is a Store whose mutations are appended to a newline-delimited
// JSON log and fsynced before success is returned. On open the log is
// replayed into memory and compacted. A record therefore survives process
// crashes from the moment its write returned.
//
// The log holds full record snapshots, so replay is a blind last-write-wins
// pass; no transition checks rerun during recovery.
type FileStore struct {
	mu  sync.Mutex // serializes mutate-then-append so log order matches apply order
	mem *Memory
	f   *os.File
	w   *bufio.Writer

	// set on the first failed append; every later mutation fails fast
	// rather than letting memory and disk diverge silently.
	broken error
}

const logFileName = "state.log"

// OpenFileStore opens (creating if needed) the store rooted at dir.
func OpenFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "creating store directory")
	}
	path := filepath.Join(dir, logFileName)
	mem := NewMemory()
	n, err := replay(path, mem)
	if err != nil {
		return nil, err
	}

	fs := &FileStore{mem: mem}
	if err := fs.compact(path); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"dir": dir, "entries": n}).Info("Opened scheduling state store")
	return fs, nil
}

// replay loads every parsable entry. A torn final line from a crash mid
// append is tolerated and dropped; that entry never returned success.
func replay(path string, mem *Memory) (int, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "opening state log")
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		var e logEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			log.WithFields(log.Fields{"entry": n, "err": err}).Warn("Dropping unparsable state log tail")
			break
		}
		mem.restore(e)
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, errors.Wrap(err, "reading state log")
	}
	return n, nil
}

// compact rewrites the log as one snapshot per live record and swaps it in.
func (fs *FileStore) compact(path string) error {
	tmp, err := os.Create(path + ".tmp")
	if err != nil {
		return errors.Wrap(err, "creating compacted state log")
	}
	w := bufio.NewWriter(tmp)

	var entries []logEntry
	jobs, _ := fs.mem.ListJobs()
	for _, j := range jobs {
		entries = append(entries, logEntry{Job: j})
		stages, _ := fs.mem.ListStages(j.ID)
		for _, s := range stages {
			entries = append(entries, logEntry{Stage: s})
		}
		tasks, _ := fs.mem.ListTasks(j.ID)
		for _, t := range tasks {
			entries = append(entries, logEntry{Task: t})
		}
	}
	executors, _ := fs.mem.ListExecutors()
	for _, e := range executors {
		entries = append(entries, logEntry{Executor: e})
	}
	for _, l := range fs.mem.listLeases() {
		entries = append(entries, logEntry{Lease: l})
	}
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			tmp.Close()
			return errors.Wrap(err, "encoding state log entry")
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			tmp.Close()
			return errors.Wrap(err, "writing compacted state log")
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		return errors.Wrap(err, "swapping compacted state log")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "reopening state log")
	}
	fs.f = f
	fs.w = bufio.NewWriter(f)
	return nil
}

// append logs e durably. Called only after the in-memory apply succeeded.
func (fs *FileStore) append(e logEntry) error {
	if fs.broken != nil {
		return fs.broken
	}
	b, err := json.Marshal(e)
	if err == nil {
		_, err = fs.w.Write(append(b, '\n'))
	}
	if err == nil {
		err = fs.w.Flush()
	}
	if err == nil {
		err = fs.f.Sync()
	}
	if err != nil {
		fs.broken = errors.Wrap(err, "state log write failed, store is read-only")
		log.WithFields(log.Fields{"err": err}).Error("State log write failed")
		return fs.broken
	}
	return nil
}

func (fs *FileStore) CreateJob(j *domain.Job) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.CreateJob(j); err != nil {
		return err
	}
	return fs.append(logEntry{Job: j})
}

func (fs *FileStore) UpdateJob(j *domain.Job) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.UpdateJob(j); err != nil {
		return err
	}
	return fs.append(logEntry{Job: j})
}

func (fs *FileStore) GetJob(id string) (*domain.Job, error) { return fs.mem.GetJob(id) }

func (fs *FileStore) ListJobs() ([]*domain.Job, error) { return fs.mem.ListJobs() }

func (fs *FileStore) GetStage(id string) (*domain.Stage, error) { return fs.mem.GetStage(id) }

func (fs *FileStore) RemoveJob(id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.RemoveJob(id); err != nil {
		return err
	}
	return fs.append(logEntry{RemoveJobID: id})
}

func (fs *FileStore) AppendStages(stages []*domain.Stage) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.AppendStages(stages); err != nil {
		return err
	}
	for _, s := range stages {
		if err := fs.append(logEntry{Stage: s}); err != nil {
			return err
		}
	}
	return nil
}

func (fs *FileStore) UpdateStage(s *domain.Stage) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.UpdateStage(s); err != nil {
		return err
	}
	return fs.append(logEntry{Stage: s})
}

func (fs *FileStore) ListStages(jobID string) ([]*domain.Stage, error) {
	return fs.mem.ListStages(jobID)
}

func (fs *FileStore) CreateTasks(tasks []*domain.Task) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.CreateTasks(tasks); err != nil {
		return err
	}
	for _, t := range tasks {
		if err := fs.append(logEntry{Task: t}); err != nil {
			return err
		}
	}
	return nil
}

func (fs *FileStore) UpdateTask(t *domain.Task) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.UpdateTask(t); err != nil {
		return err
	}
	return fs.append(logEntry{Task: t})
}

func (fs *FileStore) GetTask(id string) (*domain.Task, error) { return fs.mem.GetTask(id) }

func (fs *FileStore) ListTasks(jobID string) ([]*domain.Task, error) {
	return fs.mem.ListTasks(jobID)
}

func (fs *FileStore) CASTaskStatus(id string, from, to domain.TaskStatus, apply func(*domain.Task)) (*domain.Task, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return nil, fs.broken
	}
	t, err := fs.mem.CASTaskStatus(id, from, to, apply)
	if err != nil {
		return nil, err
	}
	if err := fs.append(logEntry{Task: t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (fs *FileStore) ListReadyTasks() ([]*domain.Task, error) { return fs.mem.ListReadyTasks() }

func (fs *FileStore) CreateExecutor(e *domain.ExecutorMetadata) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.CreateExecutor(e); err != nil {
		return err
	}
	return fs.append(logEntry{Executor: e})
}

func (fs *FileStore) UpdateExecutor(e *domain.ExecutorMetadata) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.UpdateExecutor(e); err != nil {
		return err
	}
	return fs.append(logEntry{Executor: e})
}

func (fs *FileStore) GetExecutor(id string) (*domain.ExecutorMetadata, error) {
	return fs.mem.GetExecutor(id)
}

func (fs *FileStore) ListExecutors() ([]*domain.ExecutorMetadata, error) {
	return fs.mem.ListExecutors()
}

func (fs *FileStore) RemoveExecutor(id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.RemoveExecutor(id); err != nil {
		return err
	}
	return fs.append(logEntry{RemoveExecutorID: id})
}

func (fs *FileStore) AcquireLease(key, holder string, ttl time.Duration, now time.Time) (*Lease, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return nil, fs.broken
	}
	l, err := fs.mem.AcquireLease(key, holder, ttl, now)
	if err != nil {
		return nil, err
	}
	if err := fs.append(logEntry{Lease: l}); err != nil {
		return nil, err
	}
	return l, nil
}

func (fs *FileStore) RenewLease(key, holder string, ttl time.Duration, now time.Time) (*Lease, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return nil, fs.broken
	}
	l, err := fs.mem.RenewLease(key, holder, ttl, now)
	if err != nil {
		return nil, err
	}
	if err := fs.append(logEntry{Lease: l}); err != nil {
		return nil, err
	}
	return l, nil
}

func (fs *FileStore) ReleaseLease(key, holder string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.broken != nil {
		return fs.broken
	}
	if err := fs.mem.ReleaseLease(key, holder); err != nil {
		return err
	}
	return fs.append(logEntry{RemoveLeaseKey: key})
}

func (fs *FileStore) GetLease(key string) (*Lease, error) { return fs.mem.GetLease(key) }

func (fs *FileStore) Close() error {
	if fs.f == nil {
		return nil
	}
	fs.w.Flush()
	return fs.f.Close()
}
