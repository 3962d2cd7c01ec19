// Package utils provides small conversion helpers shared by the definition
// loaders. Definition documents come from JSON files, object storage and
// database rows, so numeric fields may arrive as numbers or strings.
package utils
