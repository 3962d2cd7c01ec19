// Package wire encodes recipes for replication between processes.
//
// A recipe is written as a fixed sequence of MessagePack primitives:
//
//	id, category,
//	output: kind, block, items (count, then id/count pairs), scatter (7 fields),
//	inputs: count, then per ingredient kind, key, members, count,
//	surface: present flag, then one ingredient when present.
//
// Reading consumes the primitives in exactly the same order. The format has
// no field tags, so the encoder and decoder in this package are the only
// supported pair.
//
// A registry is a count followed by that many recipes, in category order and
// then registration order, so decoding rebuilds an identical scan order.
package wire
