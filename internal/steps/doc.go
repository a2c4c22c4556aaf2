// Package steps defines the content of the "How It Works" section: the
// ordered step records, the section header and the compiled-in defaults.
//
// A Sequence is immutable once constructed. NewSequence copies its input and
// every accessor hands out copies, so a Sequence can be shared between any
// number of concurrent renders without synchronization.
//
// The position of a record decides which side of the connector its card is
// placed on:
//
//	index 0 -> Left
//	index 1 -> Right
//	index 2 -> Left
//	...
package steps
