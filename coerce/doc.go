// Package coerce converts edited values back into declared member types.
// Every scalar rendered with Format parses back to an equal value with To.
package coerce
