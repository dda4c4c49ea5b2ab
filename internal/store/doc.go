// Package store provides in-memory state holders for calcpad.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking. Nothing is written
// to disk: history lives exactly as long as the calculator that owns it.
//
// The package includes stores for:
//   - Evaluation history (HistoryMemoryStore)
//   - Server-side calculator sessions (SessionMemoryStore)
package store
