package gridpath

import (
	"container/heap"

	"github.com/pdrpinto/gridpath/grid"
)

// searchNode lives in either the frontier or the closed set. Parent links are
// linear indices into the closed set.
type searchNode struct {
	cell   grid.Cell
	index  int
	g      int
	h      int
	f      int
	parent int

	indexInQueue int
}

// nodeQueue orders by f, then g, then index so equal inputs always pop in the same order.
type nodeQueue []*searchNode

func (queue nodeQueue) Len() int { return len(queue) }
func (queue nodeQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.index < b.index
}
func (queue nodeQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *nodeQueue) Push(x any) {
	node := x.(*searchNode)
	node.indexInQueue = len(*queue)
	*queue = append(*queue, node)
}

func (queue *nodeQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	node := oldQueue[n-1]
	oldQueue[n-1] = nil
	node.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return node
}

// frontier is the open set. The heap and the index lookup are only touched
// through push, remove and popMin, which always update both.
type frontier struct {
	queue   nodeQueue
	byIndex map[int]*searchNode
}

func newFrontier() *frontier {
	return &frontier{byIndex: make(map[int]*searchNode)}
}

func (f *frontier) Len() int { return len(f.queue) }

func (f *frontier) lookup(index int) (*searchNode, bool) {
	node, ok := f.byIndex[index]
	return node, ok
}

// push inserts node, replacing any entry already queued for the same cell.
func (f *frontier) push(node *searchNode) {
	f.remove(node.index)
	heap.Push(&f.queue, node)
	f.byIndex[node.index] = node
}

func (f *frontier) remove(index int) bool {
	node, ok := f.byIndex[index]
	if !ok {
		return false
	}
	heap.Remove(&f.queue, node.indexInQueue)
	delete(f.byIndex, index)
	return true
}

func (f *frontier) popMin() (*searchNode, bool) {
	if len(f.queue) == 0 {
		return nil, false
	}
	node := heap.Pop(&f.queue).(*searchNode)
	delete(f.byIndex, node.index)
	return node, true
}

func (f *frontier) peekMin() (*searchNode, bool) {
	if len(f.queue) == 0 {
		return nil, false
	}
	return f.queue[0], true
}
