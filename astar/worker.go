package astar

import "context"

// ExpandTask represents a request from the orchestrator to the workers.
type ExpandTask[NodeType comparable] struct {
	FromNode      NodeType
	Neighbor      Neighbor[NodeType]
	CurrentGScore int
}

// RelaxProposal is the worker's suggestion for updating a path
type RelaxProposal[NodeType comparable] struct {
	FromNode NodeType
	ToNode   NodeType
	GScore   int
	FCost    int
}

func propose[NodeType comparable](task ExpandTask[NodeType], heuristic Heuristic[NodeType]) RelaxProposal[NodeType] {
	tentativeG := task.CurrentGScore + task.Neighbor.Cost
	return RelaxProposal[NodeType]{
		FromNode: task.FromNode,
		ToNode:   task.Neighbor.ID,
		GScore:   tentativeG,
		FCost:    tentativeG + heuristic(task.Neighbor.ID),
	}
}

// workerPool scores neighbors on several goroutines. Only the orchestrator
// reads proposals, so the frontier never leaves its goroutine.
type workerPool[NodeType comparable] struct {
	tasks     chan ExpandTask[NodeType]
	proposals chan RelaxProposal[NodeType]
}

func startWorkers[NodeType comparable](
	contextObject context.Context,
	numberOfWorkers int,
	heuristic Heuristic[NodeType],
) *workerPool[NodeType] {
	pool := &workerPool[NodeType]{
		tasks:     make(chan ExpandTask[NodeType]),
		proposals: make(chan RelaxProposal[NodeType], numberOfWorkers),
	}
	for i := 0; i < numberOfWorkers; i++ {
		go func() {
			for {
				select {
				case <-contextObject.Done():
					return
				case task := <-pool.tasks:
					select {
					case pool.proposals <- propose(task, heuristic):
					case <-contextObject.Done():
						return
					}
				}
			}
		}()
	}
	return pool
}

// score sends one task per neighbor and collects exactly as many proposals.
// Dispatch runs on its own goroutine so workers never block on a full
// proposal channel while the orchestrator is still sending.
func (pool *workerPool[NodeType]) score(
	contextObject context.Context,
	fromNode NodeType,
	currentGScore int,
	neighbors []Neighbor[NodeType],
) ([]RelaxProposal[NodeType], error) {
	go func() {
		for _, neighbor := range neighbors {
			task := ExpandTask[NodeType]{
				FromNode:      fromNode,
				Neighbor:      neighbor,
				CurrentGScore: currentGScore,
			}
			select {
			case pool.tasks <- task:
			case <-contextObject.Done():
				return
			}
		}
	}()

	proposals := make([]RelaxProposal[NodeType], 0, len(neighbors))
	for range neighbors {
		select {
		case <-contextObject.Done():
			return nil, contextObject.Err()
		case proposal := <-pool.proposals:
			proposals = append(proposals, proposal)
		}
	}
	return proposals, nil
}
