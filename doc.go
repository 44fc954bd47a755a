// Package amphipod sorts amphipods into their rooms at the lowest total energy.
//
// A burrow is a hallway with one room per amphipod kind hanging below it. Each
// kind belongs in its own room and pays 1, 10, 100, 1000, ... energy per step.
// The package parses the puzzle diagram into a Burrow and a start State,
// enumerates legal moves, estimates the remaining cost and hands both to the
// generic A* search in package astar.
//
// Room count and depth are read from the diagram; a state holds up to MaxCells
// cells and up to MaxKinds kinds.
package amphipod
