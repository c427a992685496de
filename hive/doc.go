// Package hive implements the rule engine for the board game Hive.
//
// It maintains game state on an unbounded hexagonal grid, enumerates
// the exact set of legal moves for the player to move, applies a move,
// and detects terminal conditions. The package is synchronous and does
// no I/O: rendering, input handling, persistence, networked play,
// search/AI and undo history are all left to external collaborators.
package hive
