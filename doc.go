// Package lvpuzzle is a collection of search and simulation solvers for
// small, self-contained logic puzzles, plus the kernels they share.
//
// 🚀 What is in here?
//
//	Kernels over implicit state spaces:
//		• bfs       – breadth-first search over any comparable state
//		• dijkstra  – uniform-cost search with a goal predicate
//		• gridgraph – ASCII grids as graphs, with connected components
//
//	Puzzle solvers:
//		• runlength – marker-based decompression length, flat or recursive
//		• rtg       – generators and microchips carried up a facility
//		• keyvault  – robots collecting keys behind doors in a maze
//		• combat    – the card game Combat and its recursive variant
//		• cupgame   – the crab's cup shuffle on a successor array
//
//	Runner surface:
//		• puzzle          – catalog binding each solver to an ID and its parts
//		• internal/config – YAML (or JSONC) run configuration
//		• internal/runner – bounded concurrent solving with structured logs
//		• cmd/lvpuzzle    – the command-line entry point
//
// ✨ Conventions
//
//   - Parsers return wrapped sentinel errors instead of panicking on bad input.
//   - Long searches take a context.Context and check it once per iteration.
//   - Solver packages do not log; hooks (OnVisit, OnRound) expose progress.
//
// Quick start:
//
//	lvpuzzle list
//	lvpuzzle solve 2020-23 --input cups.txt
//	lvpuzzle run --config lvpuzzle.yaml
package lvpuzzle
