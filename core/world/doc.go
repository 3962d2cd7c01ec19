// Package world provides an in-memory world implementing the crafting
// mutation surface. It backs the scenario simulator and the engine tests.
package world
