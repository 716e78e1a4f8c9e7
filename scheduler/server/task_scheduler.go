package server

import (
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

// taskAssignment pairs one ready task with the executor that will run it.
type taskAssignment struct {
	task     *domain.Task
	executor *domain.ExecutorMetadata
}

// getTaskAssignments computes the assignment set for one scheduling pass:
// ready tasks FIFO by job submission time (stage id, partition as
// tie-break) greedily paired with free slots, executors visited in id
// order. Pure planning; the caller claims each task with a CAS and a lost
// race simply drops that pairing.
func getTaskAssignments(s store.Store) ([]taskAssignment, error) {
	ready, err := s.ListReadyTasks()
	if err != nil {
		return nil, err
	}
	if len(ready) == 0 {
		return nil, nil
	}
	executors, err := s.ListExecutors()
	if err != nil {
		return nil, err
	}
	busy, err := inFlightCounts(s)
	if err != nil {
		return nil, err
	}

	var slots []*domain.ExecutorMetadata
	for _, e := range executors {
		if e.Status != domain.ExecutorActive {
			continue
		}
		for free := int(e.Slots) - busy[e.ID]; free > 0; free-- {
			slots = append(slots, e)
		}
	}

	var assignments []taskAssignment
	for i := 0; i < len(ready) && i < len(slots); i++ {
		assignments = append(assignments, taskAssignment{task: ready[i], executor: slots[i]})
	}
	return assignments, nil
}

// inFlightCounts returns, per executor, the number of tasks currently
// Assigned or Running on it.
func inFlightCounts(s store.Store) (map[string]int, error) {
	jobs, err := s.ListJobs()
	if err != nil {
		return nil, err
	}
	busy := map[string]int{}
	for _, j := range jobs {
		if j.Status.Terminal() {
			continue
		}
		tasks, err := s.ListTasks(j.ID)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			if t.Status == domain.TaskAssigned || t.Status == domain.TaskRunning {
				busy[t.ExecutorID]++
			}
		}
	}
	return busy, nil
}

// gatherStageInputs returns the output locations of a stage's producers,
// the shuffle partitions its tasks will read.
func gatherStageInputs(s store.Store, stage *domain.Stage) ([]domain.PartitionLocation, error) {
	if len(stage.Producers) == 0 {
		return nil, nil
	}
	producers := map[string]bool{}
	for _, p := range stage.Producers {
		producers[p] = true
	}
	tasks, err := s.ListTasks(stage.JobID)
	if err != nil {
		return nil, err
	}
	var inputs []domain.PartitionLocation
	for _, t := range tasks {
		if producers[t.StageID] && t.Output != nil {
			inputs = append(inputs, *t.Output)
		}
	}
	return inputs, nil
}
