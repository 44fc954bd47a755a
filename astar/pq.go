package astar

type PriorityQueueItem[NodeType comparable] struct {
	Node   NodeType
	GScore int
	FCost  int
}

// PriorityQueue is a min-heap on FCost for container/heap. Among equal FCost
// items the one with the larger GScore comes first, which favours nodes closer
// to a goal.
type PriorityQueue[NodeType comparable] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].GScore > queue[j].GScore
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue[NodeType]) Push(x any) {
	*queue = append(*queue, x.(*PriorityQueueItem[NodeType]))
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
