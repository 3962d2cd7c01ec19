// Package dispatch bridges world trigger events to the recipe registry.
//
// A Dispatcher is built once per world session and handed to the world
// engine through Hooks. Every entry point is a synchronous, one-shot reaction:
// it extracts candidates, scans the relevant categories and lets matching
// recipes mutate the world before returning.
//
// Dispatch is not safe for concurrent use. The registry pointer, however, may
// be swapped from another goroutine at any time; a dispatch keeps the
// registry it loaded at entry until it returns.
package dispatch
