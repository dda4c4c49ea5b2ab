// Package display holds the text a calculator shows: the expression being
// typed and the expression that produced the current result.
package display
