// Package visitor enumerates the elements of inspected containers.
//
// Slices, arrays and linked lists are visited in index order, maps in
// ascending order of their formatted key text so that tree labels stay stable
// between rebuilds.
//
// SyncMap is the concurrent cache behind the member registry.
package visitor
