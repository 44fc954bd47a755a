package internal

import "slices"

// ReconstructPath follows predecessors back from goal and returns the nodes
// from start to goal. The walk stops early at a node with no predecessor, so
// the result then begins there instead of at start.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	goal NodeType,
	start NodeType,
) []NodeType {
	path := make([]NodeType, 0, 16)
	for node, ok := goal, true; ok; node, ok = cameFrom[node] {
		path = append(path, node)
		if node == start {
			break
		}
	}
	slices.Reverse(path)
	return path
}
