package planner

import (
	"testing"

	"github.com/luci/go-render/render"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

func node(id string, partitions uint32, inputs ...domain.PlanInput) *domain.PlanNode {
	return &domain.PlanNode{ID: id, Fragment: []byte("frag-" + id), Partitions: partitions, Inputs: inputs}
}

func shuffle(from string) domain.PlanInput { return domain.PlanInput{NodeID: from, Shuffle: true} }
func pipe(from string) domain.PlanInput    { return domain.PlanInput{NodeID: from, Shuffle: false} }

func Test_BuildStages_TwoStagePlan(t *testing.T) {
	// scan -> (pipelined) filter -> (shuffle) aggregate
	plan := &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		node("scan", 2),
		node("filter", 2, pipe("scan")),
		node("agg", 1, shuffle("filter")),
	}}
	stages, err := BuildStages("job1", plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d: %s", len(stages), render.Render(stages))
	}

	first, second := stages[0], stages[1]
	if len(first.Producers) != 0 {
		t.Errorf("first stage should have no producers, got %v", first.Producers)
	}
	if first.Partitions != 2 {
		t.Errorf("first stage should take filter's partitioning 2, got %d", first.Partitions)
	}
	if string(first.Fragment) != "frag-filter" {
		t.Errorf("first stage fragment should be the sink's (filter), got %q", first.Fragment)
	}
	if len(second.Producers) != 1 || second.Producers[0] != first.ID {
		t.Errorf("second stage should consume the first, got %v", second.Producers)
	}
	if second.Partitions != 1 {
		t.Errorf("second stage partitions = %d, want 1", second.Partitions)
	}
	for _, st := range stages {
		if st.Status != domain.StagePending {
			t.Errorf("stage %s should start Pending, got %v", st.ID, st.Status)
		}
		if st.JobID != "job1" {
			t.Errorf("stage %s owned by %q, want job1", st.ID, st.JobID)
		}
	}
}

func Test_BuildStages_DiamondOrdersProducersFirst(t *testing.T) {
	plan := &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		node("src", 4),
		node("left", 4, shuffle("src")),
		node("right", 4, shuffle("src")),
		node("join", 2, shuffle("left"), shuffle("right")),
	}}
	stages, err := BuildStages("j", plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stages) != 4 {
		t.Fatalf("expected 4 stages, got %d", len(stages))
	}
	ordinal := map[string]int{}
	for i, st := range stages {
		ordinal[st.ID] = i
	}
	for _, st := range stages {
		for _, p := range st.Producers {
			if ordinal[p] >= ordinal[st.ID] {
				t.Errorf("producer %s ordered after consumer %s", p, st.ID)
			}
		}
	}
	last := stages[len(stages)-1]
	if len(last.Producers) != 2 {
		t.Errorf("join stage should have 2 producers, got %v", last.Producers)
	}
}

func Test_BuildStages_Deterministic(t *testing.T) {
	plan := &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		node("b", 2),
		node("a", 2),
		node("c", 1, shuffle("a"), shuffle("b")),
	}}
	first, err := BuildStages("j", plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := BuildStages("j", plan)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if render.Render(again) != render.Render(first) {
			t.Fatalf("build %d differs:\n%s\nvs\n%s", i, render.Render(again), render.Render(first))
		}
	}
}

func Test_BuildStages_CycleRejected(t *testing.T) {
	plan := &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		node("a", 1, shuffle("b")),
		node("b", 1, shuffle("a")),
	}}
	_, err := BuildStages("j", plan)
	if !domain.IsInvalidPlan(err) {
		t.Fatalf("expected InvalidPlanError for cyclic plan, got %v", err)
	}
}

func Test_BuildStages_PipelinedCycleRejected(t *testing.T) {
	plan := &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		node("a", 1, pipe("b")),
		node("b", 1, pipe("a")),
	}}
	_, err := BuildStages("j", plan)
	if !domain.IsInvalidPlan(err) {
		t.Fatalf("expected InvalidPlanError for pipelined cycle, got %v", err)
	}
}

func Test_BuildStages_IntraStageShuffleRejected(t *testing.T) {
	// b consumes a both pipelined and shuffled: the contraction puts them
	// in one stage while the shuffle demands a boundary.
	plan := &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		node("a", 1),
		node("b", 1, pipe("a"), shuffle("a")),
	}}
	_, err := BuildStages("j", plan)
	if !domain.IsInvalidPlan(err) {
		t.Fatalf("expected InvalidPlanError for unresolvable shuffle boundary, got %v", err)
	}
}

func Test_BuildStages_AmbiguousSinkRejected(t *testing.T) {
	// One pipelined component with two nodes nobody consumes internally.
	plan := &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		node("src", 1),
		node("outA", 1, pipe("src")),
		node("outB", 1, pipe("src")),
	}}
	_, err := BuildStages("j", plan)
	if !domain.IsInvalidPlan(err) {
		t.Fatalf("expected InvalidPlanError for ambiguous sinks, got %v", err)
	}
}

func Test_BuildStages_InvalidPlansRejected(t *testing.T) {
	cases := []struct {
		name string
		plan *domain.PhysicalPlan
	}{
		{"empty", &domain.PhysicalPlan{}},
		{"duplicate ids", &domain.PhysicalPlan{Nodes: []*domain.PlanNode{node("a", 1), node("a", 1)}}},
		{"dangling input", &domain.PhysicalPlan{Nodes: []*domain.PlanNode{node("a", 1, shuffle("ghost"))}}},
		{"zero partitions", &domain.PhysicalPlan{Nodes: []*domain.PlanNode{node("a", 0)}}},
	}
	for _, c := range cases {
		if _, err := BuildStages("j", c.plan); !domain.IsInvalidPlan(err) {
			t.Errorf("%s: expected InvalidPlanError, got %v", c.name, err)
		}
	}
}

func Test_TaskID_DerivedFromStage(t *testing.T) {
	if got := TaskID("job1-s0", 3); got != "job1-s0-p3" {
		t.Errorf("TaskID = %q, want job1-s0-p3", got)
	}
}
