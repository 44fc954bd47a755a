// Package astar provides a generic A* search over implicit graphs.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive tracing or debugging tools.
//
// The search is generic over node type and stops at the first node accepted by a
// goal predicate. Costs are integers. The frontier keeps stale entries and drops
// them when they are popped, so the best-cost map is the only source of truth.
// Successor scoring can optionally be spread over a worker pool while a single
// orchestrator keeps ownership of the frontier.
package astar
