// Package calculator implements the keypad controller.
//
// A Service owns one display and one history. Evaluate runs the expression
// shown on the display through the normalizer and the evaluator, then either
// records the result (display shows it, history gains an entry at index 0) or
// shows the error indicator and leaves history untouched.
//
// A Service is not safe for concurrent use; callers that share one across
// goroutines serialize access themselves (see store.SessionMemoryStore).
package calculator
