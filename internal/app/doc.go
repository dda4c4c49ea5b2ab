// Package app wires application dependencies for the calcpad and calcd
// commands.
//
// It builds the normalizer, evaluator, per-calculator stores and the optional
// calcd client from Config, exposing them via the Wire struct. App adds the
// calculator used by interactive commands.
package app
