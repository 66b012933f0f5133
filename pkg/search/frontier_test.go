package search

import (
	"slices"
	"testing"
)

// drain pops every node and returns their states.
func drain(f Frontier[int], tr *Tree[int]) []int {
	var out []int
	for f.Len() > 0 {
		out = append(out, tr.Node(f.Pop()).State)
	}
	return out
}

func addChildren(tr *Tree[int], costs ...float64) []NodeID {
	root := tr.AddRoot(0)
	ids := make([]NodeID, len(costs))
	for i, c := range costs {
		ids[i] = tr.Add(Node[int]{State: i + 1, Parent: root, Depth: 1, Cost: c})
	}
	return ids
}

func TestFrontierOrder(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy[int]
		costs    []float64
		want     []int
	}{
		{"breadth-first keeps insertion order", BreadthFirst[int](), []float64{3, 1, 2}, []int{1, 2, 3}},
		{"depth-first keeps expansion order", DepthFirst[int](), []float64{3, 1, 2}, []int{1, 2, 3}},
		{"uniform-cost by g", UniformCost[int](), []float64{3, 1, 2}, []int{2, 3, 1}},
		{"uniform-cost ties by insertion", UniformCost[int](), []float64{1, 1, 1}, []int{1, 2, 3}},
		{"a-star by g+h", AStar(func(s int) float64 { return float64(10 - 3*s) }), []float64{0, 0, 0}, []int{3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTree[int]()
			f := tt.strategy.NewFrontier()
			f.Queue(tr, addChildren(tr, tt.costs...))
			if got := drain(f, tr); !slices.Equal(got, tt.want) {
				t.Errorf("pop order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDepthFirstPrependsBatches(t *testing.T) {
	tr := NewTree[int]()
	f := DepthFirst[int]().NewFrontier()
	ids := addChildren(tr, 1, 1, 1, 1)
	f.Queue(tr, ids[:2])
	f.Queue(tr, ids[2:])
	// The newest batch goes in front, each batch in its own order.
	if got := drain(f, tr); !slices.Equal(got, []int{3, 4, 1, 2}) {
		t.Errorf("pop order = %v, want [3 4 1 2]", got)
	}
}

func TestBreadthFirstAppendsBatches(t *testing.T) {
	tr := NewTree[int]()
	f := BreadthFirst[int]().NewFrontier()
	ids := addChildren(tr, 1, 1, 1, 1)
	f.Queue(tr, ids[:2])
	f.Queue(tr, ids[2:])
	if got := drain(f, tr); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("pop order = %v, want [1 2 3 4]", got)
	}
}

func TestCostFrontierSetsEval(t *testing.T) {
	tr := NewTree[int]()
	ids := addChildren(tr, 2, 5)

	UniformCost[int]().NewFrontier().Queue(tr, ids)
	if e := tr.Node(ids[1]).Eval; e != 5 {
		t.Errorf("uniform-cost Eval = %v, want 5", e)
	}

	AStar(func(int) float64 { return 10 }).NewFrontier().Queue(tr, ids)
	if e := tr.Node(ids[0]).Eval; e != 12 {
		t.Errorf("a-star Eval = %v, want 12", e)
	}
}

func TestSeedLeavesEvalZero(t *testing.T) {
	tr := NewTree[int]()
	root := tr.AddRoot(7)
	f := AStar(func(int) float64 { return 100 }).NewFrontier()
	f.Seed(root)
	if f.Len() != 1 || tr.Node(root).Eval != 0 {
		t.Errorf("Seed() len=%d eval=%v, want 1, 0", f.Len(), tr.Node(root).Eval)
	}
	if f.Pop() != root {
		t.Error("Pop() should return the seeded root")
	}
}

func TestDequeGrowsAcrossWrap(t *testing.T) {
	var d deque
	for i := 0; i < 10; i++ {
		d.pushBack(NodeID(i))
	}
	for i := 0; i < 8; i++ {
		d.popFront()
	}
	for i := 10; i < 40; i++ {
		d.pushBack(NodeID(i))
	}
	d.pushFront(NodeID(-5))
	want := []NodeID{-5, 8, 9}
	for i := 10; i < 40; i++ {
		want = append(want, NodeID(i))
	}
	var got []NodeID
	for d.len() > 0 {
		got = append(got, d.popFront())
	}
	if !slices.Equal(got, want) {
		t.Errorf("deque order = %v, want %v", got, want)
	}
}

func TestDequePopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("popFront() on empty deque should panic")
		}
	}()
	var d deque
	d.popFront()
}
