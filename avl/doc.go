// Package avl implements a height-balanced binary search tree holding a set
// of unique keys.
//
// Insertion rebalances on the way back up from the new leaf, so the height
// of a tree with n keys stays below 1.44*log2(n+2). Nodes own their children
// exclusively and keep no parent pointers; every query is a single walk down
// from the root.
//
// A Tree is not safe for concurrent mutation. Any number of goroutines may
// run the read-only queries (Predecessor, Contains, Len, Height, Check,
// Print) at once, but an Insert must be serialized against all other calls,
// for example with a sync.RWMutex held around the tree.
package avl
