// Package planner turns a physical plan into a DAG of stages split at
// shuffle boundaries. Building is deterministic and side effect free: the
// same plan always yields an isomorphic stage graph with identical ordering.
package planner

import (
	"fmt"
	"sort"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

// BuildStages decomposes plan into an ordered list of stages for the given
// job. Nodes connected by non-shuffle edges are contracted into a single
// stage; shuffle edges become producer/consumer edges between stages.
//
// Stage IDs are assigned in topological order (producers first) with a
// deterministic tie-break, so repeated builds of the same plan agree.
// Returns an InvalidPlanError if the plan contains a cycle, a stage with an
// ambiguous sink, or mixed shuffle/non-shuffle paths between the same pair
// of stages.
func BuildStages(jobID string, plan *domain.PhysicalPlan) ([]*domain.Stage, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	nodes := map[string]*domain.PlanNode{}
	for _, n := range plan.Nodes {
		nodes[n.ID] = n
	}

	if err := checkAcyclic(plan); err != nil {
		return nil, err
	}

	comp := contract(plan)

	groups := map[string][]string{} // component root -> member node ids, sorted
	for _, n := range plan.Nodes {
		root := comp.find(n.ID)
		groups[root] = append(groups[root], n.ID)
	}
	for _, members := range groups {
		sort.Strings(members)
	}

	// Producer edges between components come only from shuffle edges. An
	// intra-component shuffle edge means the plan both pipelines and
	// repartitions between the same nodes, which cannot be satisfied.
	producers := map[string]map[string]bool{}
	for _, n := range plan.Nodes {
		cons := comp.find(n.ID)
		for _, in := range n.Inputs {
			prod := comp.find(in.NodeID)
			if !in.Shuffle {
				continue
			}
			if prod == cons {
				return nil, domain.NewInvalidPlanError(
					"unresolvable shuffle boundary between %s and %s", in.NodeID, n.ID)
			}
			if producers[cons] == nil {
				producers[cons] = map[string]bool{}
			}
			producers[cons][prod] = true
		}
	}

	sinks, err := findSinks(plan, comp, groups)
	if err != nil {
		return nil, err
	}

	order, err := topoOrder(groups, producers)
	if err != nil {
		return nil, err
	}

	ordinal := map[string]int{}
	for i, root := range order {
		ordinal[root] = i
	}

	var stages []*domain.Stage
	for i, root := range order {
		sink := nodes[sinks[root]]
		var prods []string
		for prod := range producers[root] {
			prods = append(prods, stageID(jobID, ordinal[prod]))
		}
		sort.Strings(prods)
		stages = append(stages, &domain.Stage{
			ID:         stageID(jobID, i),
			JobID:      jobID,
			Producers:  prods,
			Partitions: sink.Partitions,
			Fragment:   sink.Fragment,
			Status:     domain.StagePending,
		})
	}
	return stages, nil
}

// TaskID names the task executing one partition of a stage.
func TaskID(stageID string, partition uint32) string {
	return fmt.Sprintf("%s-p%d", stageID, partition)
}

func stageID(jobID string, ordinal int) string {
	return fmt.Sprintf("%s-s%d", jobID, ordinal)
}

// checkAcyclic runs Kahn's algorithm over the node graph. Cycles hidden
// inside a pipelined component would otherwise survive contraction.
func checkAcyclic(plan *domain.PhysicalPlan) error {
	indeg := map[string]int{}
	consumers := map[string][]string{}
	for _, n := range plan.Nodes {
		indeg[n.ID] += 0
		for _, in := range n.Inputs {
			indeg[n.ID]++
			consumers[in.NodeID] = append(consumers[in.NodeID], n.ID)
		}
	}
	var frontier []string
	for id, d := range indeg {
		if d == 0 {
			frontier = append(frontier, id)
		}
	}
	visited := 0
	for len(frontier) > 0 {
		id := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		visited++
		for _, c := range consumers[id] {
			indeg[c]--
			if indeg[c] == 0 {
				frontier = append(frontier, c)
			}
		}
	}
	if visited != len(plan.Nodes) {
		return domain.NewInvalidPlanError("plan contains a cycle")
	}
	return nil
}

// findSinks locates, per component, the single node whose output leaves the
// component (or leaves the plan). That node's fragment and partitioning
// describe the whole stage.
func findSinks(plan *domain.PhysicalPlan, comp *unionFind, groups map[string][]string) (map[string]string, error) {
	internalConsumer := map[string]bool{}
	for _, n := range plan.Nodes {
		for _, in := range n.Inputs {
			if !in.Shuffle {
				internalConsumer[in.NodeID] = true
			}
		}
	}
	sinks := map[string]string{}
	for root, members := range groups {
		for _, id := range members {
			if internalConsumer[id] {
				continue
			}
			if prev, ok := sinks[root]; ok {
				return nil, domain.NewInvalidPlanError(
					"stage containing %s has ambiguous sinks %s and %s", id, prev, id)
			}
			sinks[root] = id
		}
		if _, ok := sinks[root]; !ok {
			// Every member is piped into another member; unreachable
			// given the acyclic check, kept as a guard.
			return nil, domain.NewInvalidPlanError("stage rooted at %s has no sink", root)
		}
	}
	return sinks, nil
}

// topoOrder orders components producers-first. Among ready components the
// one with the smallest member node ID goes first, making the ordering
// reproducible.
func topoOrder(groups map[string][]string, producers map[string]map[string]bool) ([]string, error) {
	indeg := map[string]int{}
	consumers := map[string][]string{}
	for root := range groups {
		indeg[root] = len(producers[root])
		for prod := range producers[root] {
			consumers[prod] = append(consumers[prod], root)
		}
	}
	var order []string
	for len(order) < len(groups) {
		var ready []string
		for root, d := range indeg {
			if d == 0 {
				ready = append(ready, root)
			}
		}
		if len(ready) == 0 {
			return nil, domain.NewInvalidPlanError("plan contains a cycle across shuffle boundaries")
		}
		sort.Slice(ready, func(i, j int) bool { return groups[ready[i]][0] < groups[ready[j]][0] })
		next := ready[0]
		order = append(order, next)
		delete(indeg, next)
		for _, c := range consumers[next] {
			indeg[c]--
		}
	}
	return order, nil
}

type unionFind struct {
	parent map[string]string
}

func (u *unionFind) find(id string) string {
	if u.parent[id] != id {
		u.parent[id] = u.find(u.parent[id])
	}
	return u.parent[id]
}

func (u *unionFind) union(a, b string) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		// Smaller root wins so component identity is order independent.
		if rb < ra {
			ra, rb = rb, ra
		}
		u.parent[rb] = ra
	}
}

// contract merges nodes joined by non-shuffle edges into components.
func contract(plan *domain.PhysicalPlan) *unionFind {
	u := &unionFind{parent: map[string]string{}}
	for _, n := range plan.Nodes {
		u.parent[n.ID] = n.ID
	}
	for _, n := range plan.Nodes {
		for _, in := range n.Inputs {
			if !in.Shuffle {
				u.union(n.ID, in.NodeID)
			}
		}
	}
	return u
}
