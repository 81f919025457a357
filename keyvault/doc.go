// Package keyvault computes the fewest steps a team of robots needs to
// collect every key in a vault maze.
//
// Cells:
//
//	#      wall
//	.      open floor
//	@      entrance; one robot starts on each, open floor otherwise
//	a..z   key, collected by walking onto it
//	A..Z   door, passable once the matching key is held by any robot;
//	       always open if the vault has no such key
//
// Robots move one orthogonal step per unit of cost and one robot moves at a
// time, so the cost of a plan is the total number of steps taken.
//
// Search:
//
//	The outer search is Dijkstra over (robot positions, held keys). Its arcs
//	are "robot r walks to uncollected key k", found by a door-gated BFS from
//	the robot's cell that stops at the first uncollected key on each route.
//	Those reachability scans are memoized per (cell, held keys) because many
//	outer states share them.
//
// Split turns a single-entrance vault into the four-robot variant.
package keyvault
