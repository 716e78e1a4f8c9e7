package domain

import "fmt"

// PhysicalPlan is a DAG of pipeline fragments with shuffle boundary markers.
// The fragment bytes are opaque to the scheduler; only the compute engine
// interprets them. The scheduler consumes the DAG structure and the declared
// output partitioning to build the stage graph.
type PhysicalPlan struct {
	Nodes []*PlanNode
}

// PlanNode is one pipeline fragment of a physical plan.
type PlanNode struct {
	ID string

	// Fragment is the engine-specific encoding of this pipeline.
	Fragment []byte

	// Partitions is the declared output partition count of this fragment.
	Partitions uint32

	Inputs []PlanInput
}

// PlanInput is an edge from a producer node. Shuffle marks a boundary where
// the producer's output is redistributed across partitions before this node
// can consume it; stages are split exactly at these edges.
type PlanInput struct {
	NodeID  string
	Shuffle bool
}

func (p *PhysicalPlan) String() string {
	return fmt.Sprintf("plan with %d nodes", len(p.Nodes))
}

// Validate rejects structurally invalid plans: no nodes, duplicate or empty
// node IDs, dangling input references, or zero output partitions.
// Cycle detection happens during stage graph construction.
func (p *PhysicalPlan) Validate() error {
	if p == nil || len(p.Nodes) == 0 {
		return NewInvalidPlanError("plan has no nodes")
	}
	seen := map[string]bool{}
	for _, n := range p.Nodes {
		if n.ID == "" {
			return NewInvalidPlanError("plan node with empty id")
		}
		if seen[n.ID] {
			return NewInvalidPlanError("duplicate plan node id %s", n.ID)
		}
		seen[n.ID] = true
		if n.Partitions == 0 {
			return NewInvalidPlanError("plan node %s declares zero output partitions", n.ID)
		}
	}
	for _, n := range p.Nodes {
		for _, in := range n.Inputs {
			if !seen[in.NodeID] {
				return NewInvalidPlanError("plan node %s references unknown input %s", n.ID, in.NodeID)
			}
		}
	}
	return nil
}
