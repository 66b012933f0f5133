package search

// Expand generates the children of id, adds them to t and returns their ids
// in the order the problem produced the successor states. It does not
// deduplicate; the driver handles repeated states.
func Expand[S comparable](t *Tree[S], id NodeID, p Problem[S]) []NodeID {
	parent := t.Node(id)
	succ := p.Successors(parent.State)
	children := make([]NodeID, 0, len(succ))
	for _, s := range succ {
		children = append(children, t.Add(Node[S]{
			State:  s,
			Parent: id,
			Depth:  parent.Depth + 1,
			Cost:   parent.Cost + StepCost(p, parent.State, s),
		}))
	}
	return children
}
