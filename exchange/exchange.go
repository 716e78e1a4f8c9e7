// Package exchange moves completed partition bytes between executors. The
// control plane only ever handles location descriptors; the bytes
// themselves go through a ShuffleStore.
package exchange

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// PartitionWriter streams one output partition. Close makes the partition
// visible at Path; an abandoned writer leaves no visible partition.
type PartitionWriter interface {
	io.WriteCloser

	// Path is the descriptor consumers pass to Open.
	Path() string
}

// ShuffleStore produces and consumes partition byte streams keyed by
// location path.
type ShuffleStore interface {
	Create(jobID, stageID string, partition uint32) (PartitionWriter, error)
	Open(path string) (io.ReadCloser, error)

	// RemoveJob drops all partitions written for a job.
	RemoveJob(jobID string) error
}

// LocalStore keeps partitions on the executor's local filesystem, laid out
// root/<job>/<stage>/p<partition>. Writes go to a temp file and rename
// into place on Close, so readers never see a torn partition.
type LocalStore struct {
	root string
}

// NewLocalStore returns a store rooted at dir, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "creating shuffle root")
	}
	return &LocalStore{root: dir}, nil
}

func (s *LocalStore) Create(jobID, stageID string, partition uint32) (PartitionWriter, error) {
	dir := filepath.Join(s.root, jobID, stageID)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "creating partition directory")
	}
	path := filepath.Join(dir, partitionFileName(partition))
	f, err := os.Create(path + ".tmp")
	if err != nil {
		return nil, errors.Wrap(err, "creating partition file")
	}
	return &localWriter{f: f, path: path}, nil
}

func (s *LocalStore) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening partition %s", path)
	}
	return f, nil
}

func (s *LocalStore) RemoveJob(jobID string) error {
	return os.RemoveAll(filepath.Join(s.root, jobID))
}

type localWriter struct {
	f    *os.File
	path string
}

func (w *localWriter) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

func (w *localWriter) Close() error {
	if err := w.f.Sync(); err != nil {
		w.f.Close()
		return err
	}
	if err := w.f.Close(); err != nil {
		return err
	}
	return os.Rename(w.path+".tmp", w.path)
}

func (w *localWriter) Path() string {
	return w.path
}

func partitionFileName(partition uint32) string {
	return fmt.Sprintf("p%d", partition)
}
