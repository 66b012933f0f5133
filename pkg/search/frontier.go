package search

import "container/heap"

// Frontier is the collection of generated but not yet expanded nodes.
type Frontier[S comparable] interface {
	// Seed inserts the root without assigning it a priority.
	Seed(id NodeID)
	// Queue inserts freshly expanded nodes; this is the queueing function
	// that distinguishes one strategy from another.
	Queue(t *Tree[S], ids []NodeID)
	// Pop removes and returns the next node to explore.
	Pop() NodeID
	Len() int
}

// Strategy creates the frontier for a run. Strategies hold no run state and
// can be reused across runs.
type Strategy[S comparable] interface {
	Name() string
	NewFrontier() Frontier[S]
}

// Strategy names.
const (
	NameBreadthFirst = "breadth-first"
	NameDepthFirst   = "depth-first"
	NameUniformCost  = "uniform-cost"
	NameAStar        = "a-star"
)

// =============================================================================
// FIFO / LIFO
// =============================================================================

type fifoStrategy[S comparable] struct{}

// BreadthFirst appends new nodes to the tail and pops from the head.
func BreadthFirst[S comparable]() Strategy[S] { return fifoStrategy[S]{} }

func (fifoStrategy[S]) Name() string             { return NameBreadthFirst }
func (fifoStrategy[S]) NewFrontier() Frontier[S] { return &fifo[S]{} }

type fifo[S comparable] struct{ q deque }

func (f *fifo[S]) Seed(id NodeID) { f.q.pushBack(id) }
func (f *fifo[S]) Pop() NodeID    { return f.q.popFront() }
func (f *fifo[S]) Len() int       { return f.q.len() }

func (f *fifo[S]) Queue(_ *Tree[S], ids []NodeID) {
	for _, id := range ids {
		f.q.pushBack(id)
	}
}

type lifoStrategy[S comparable] struct{}

// DepthFirst prepends new nodes to the head, keeping their expansion order,
// so the first child generated is the next node explored.
func DepthFirst[S comparable]() Strategy[S] { return lifoStrategy[S]{} }

func (lifoStrategy[S]) Name() string             { return NameDepthFirst }
func (lifoStrategy[S]) NewFrontier() Frontier[S] { return &lifo[S]{} }

type lifo[S comparable] struct{ q deque }

func (f *lifo[S]) Seed(id NodeID) { f.q.pushFront(id) }
func (f *lifo[S]) Pop() NodeID    { return f.q.popFront() }
func (f *lifo[S]) Len() int       { return f.q.len() }

func (f *lifo[S]) Queue(_ *Tree[S], ids []NodeID) {
	for i := len(ids) - 1; i >= 0; i-- {
		f.q.pushFront(ids[i])
	}
}

// deque is a growable ring buffer of node ids.
type deque struct {
	buf  []NodeID
	head int
	n    int
}

func (d *deque) len() int { return d.n }

func (d *deque) grow() {
	if d.n < len(d.buf) {
		return
	}
	size := 2 * len(d.buf)
	if size == 0 {
		size = 16
	}
	buf := make([]NodeID, size)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf, d.head = buf, 0
}

func (d *deque) pushBack(id NodeID) {
	d.grow()
	d.buf[(d.head+d.n)%len(d.buf)] = id
	d.n++
}

func (d *deque) pushFront(id NodeID) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = id
	d.n++
}

func (d *deque) popFront() NodeID {
	if d.n == 0 {
		panic("search: pop from empty frontier")
	}
	id := d.buf[d.head]
	d.head = (d.head + 1) % len(d.buf)
	d.n--
	return id
}

// =============================================================================
// Cost-ordered
// =============================================================================

type costStrategy[S comparable] struct {
	name string
	eval func(Node[S]) float64
}

// UniformCost orders nodes by path cost: Eval = g.
func UniformCost[S comparable]() Strategy[S] {
	return costStrategy[S]{
		name: NameUniformCost,
		eval: func(n Node[S]) float64 { return n.Cost },
	}
}

// AStar orders nodes by Eval = g + h(state).
func AStar[S comparable](h Heuristic[S]) Strategy[S] {
	return costStrategy[S]{
		name: NameAStar,
		eval: func(n Node[S]) float64 { return n.Cost + h(n.State) },
	}
}

func (s costStrategy[S]) Name() string { return s.name }

func (s costStrategy[S]) NewFrontier() Frontier[S] {
	return &priority[S]{eval: s.eval}
}

// priority is a min-heap on (Eval, insertion sequence). Equal priorities pop
// in insertion order, which keeps runs deterministic.
type priority[S comparable] struct {
	eval  func(Node[S]) float64
	items entries
	seq   uint64
}

func (p *priority[S]) push(id NodeID, f float64) {
	heap.Push(&p.items, entry{id: id, eval: f, seq: p.seq})
	p.seq++
}

func (p *priority[S]) Seed(id NodeID) { p.push(id, 0) }

func (p *priority[S]) Queue(t *Tree[S], ids []NodeID) {
	for _, id := range ids {
		f := p.eval(t.Node(id))
		t.SetEval(id, f)
		p.push(id, f)
	}
}

func (p *priority[S]) Pop() NodeID { return heap.Pop(&p.items).(entry).id }
func (p *priority[S]) Len() int    { return p.items.Len() }

type entry struct {
	id   NodeID
	eval float64
	seq  uint64
}

type entries []entry

func (e entries) Len() int { return len(e) }
func (e entries) Less(i, j int) bool {
	if e[i].eval != e[j].eval {
		return e[i].eval < e[j].eval
	}
	return e[i].seq < e[j].seq
}
func (e entries) Swap(i, j int) { e[i], e[j] = e[j], e[i] }
func (e *entries) Push(x any)   { *e = append(*e, x.(entry)) }
func (e *entries) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	*e = old[:n-1]
	return item
}
