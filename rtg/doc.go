// Package rtg finds the fewest elevator moves needed to carry every
// generator and microchip of a multi-floor facility to the top floor.
//
// Rules:
//
//   - The elevator starts on the bottom floor and moves one floor per step,
//     always carrying one or two items.
//   - A microchip is fried if it shares a floor with another element's
//     generator while its own generator is elsewhere. Every floor must be
//     safe after each step.
//
// Search:
//
//	A breadth-first search over canonical layouts. Element names never matter,
//	only where each (generator, microchip) pair sits, so a layout is the
//	elevator floor plus the sorted multiset of pair floors, packed into a
//	uint64. This collapses the state space by up to n! for n pairs.
//
//	Moving items down into a facility whose lower floors are already empty
//	can never help and is pruned.
//
// Limits:
//
//	At most MaxFloors floors and MaxPairs element pairs fit the packed key.
//	MinSteps checks these limits again for facilities built by hand.
package rtg
