// Package recipes loads recipe definitions into a registry and serves it.
//
// # Definitions
//
// A definition is a JSON document whose location names it:
// <category>/<name>.json gives the recipe ID "<category>/<name>".
//
//	{
//	  "input":   {"block": "stone"},
//	  "inputs":  [{"item": "coal", "count": 2}, {"tag": "ores"}],
//	  "surface": {"block": "iron_block"},
//	  "output":  {"items": [{"item": "diamond", "count": 1}]},
//	  "scatter": {"pickup_delay": 40}
//	}
//
// "input" and "inputs" are mutually exclusive. An empty or missing output
// consumes the inputs without producing anything. Identities and tags are
// checked against a Resolver (the material catalog).
//
// # Sources
//
//   - DirSource: a directory tree on any afero filesystem.
//   - BucketSource: objects under a prefix in the storage bucket.
//   - TableSource: rows of the recipe_definitions table.
//
// Build never fails on a single bad definition. The recipe is dropped, a
// warning is logged and the error is collected in Result.Dropped.
//
// # Publishing
//
// Service.Reload builds a fresh registry and swaps it into the dispatcher.
// Concurrent reloads share one build. The HTTP feature exposes counts,
// listings, a reload endpoint and the wire-encoded registry at /recipes/sync.
package recipes
