// Package word provides word-boundary segmentation for cursor motion.
//
// Boundaries are word starts: the first rune of a maximal run of word
// runes (letters, digits, underscore). A Cursor seeded at an offset steps
// to the previous or next boundary; both directions report absence at the
// respective document edge so callers can apply their own defaults.
package word
