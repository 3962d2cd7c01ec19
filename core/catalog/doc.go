// Package catalog resolves material identities and tag groups while recipe
// definitions are loaded.
//
// A catalog file is YAML:
//
//	materials:
//	  - stone
//	  - iron_ore
//	tags:
//	  ores: [iron_ore, gold_ore]
//
// A nil *Catalog is permissive: every identity is known and no tag exists.
package catalog
