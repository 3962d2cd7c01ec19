// Package simulate fires one trigger in a throwaway in-memory world and
// reports what the recipes did.
//
// A scenario is YAML (JSON works too):
//
//	seed: 7
//	blocks:
//	  - {at: {x: 0, y: 0, z: 0}, block: stone}
//	pickups:
//	  - {at: {x: 0.5, y: 1, z: 0.5}, item: coal, count: 5}
//	trigger:
//	  explosion: {center: {x: 0, y: 0, z: 0}, radius: 1}
//
// The trigger is one of explosion, lightning (a block position) or anvil
// ({at, falling}). Runs use the dispatcher's current registry through a
// private dispatcher, so a seed never affects live dispatch.
package simulate
