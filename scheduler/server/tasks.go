package server

import (
	log "github.com/sirupsen/logrus"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

// requeueOrFailTask moves a task out of `from` after a retriable failure:
// back to Queued with the attempt counted, or to Failed once the budget is
// spent. Returns the updated task, or ErrStaleTransition if the task moved
// under us (in which case whoever moved it owns the outcome).
func requeueOrFailTask(s store.Store, taskID string, from domain.TaskStatus, cause *domain.ErrorSummary, maxAttempts int) (*domain.Task, error) {
	cur, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	to := domain.TaskQueued
	if cur.Attempts+1 >= maxAttempts {
		to = domain.TaskFailed
	}
	t, err := s.CASTaskStatus(taskID, from, to, func(t *domain.Task) {
		t.ExecutorID = ""
		t.Attempts++
		t.Error = cause
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"task":     t.ID,
		"status":   t.Status,
		"attempts": t.Attempts,
		"cause":    cause.Kind,
	}).Info("Task attempt failed")
	return t, nil
}

// tasksOnExecutor returns the tasks currently Assigned or Running on the
// given executor, across all jobs.
func tasksOnExecutor(s store.Store, executorID string) ([]*domain.Task, error) {
	jobs, err := s.ListJobs()
	if err != nil {
		return nil, err
	}
	var out []*domain.Task
	for _, j := range jobs {
		tasks, err := s.ListTasks(j.ID)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			if t.ExecutorID != executorID {
				continue
			}
			if t.Status == domain.TaskAssigned || t.Status == domain.TaskRunning {
				out = append(out, t)
			}
		}
	}
	return out, nil
}
