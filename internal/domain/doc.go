// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keypad, display, history) and contracts (interfaces) only.
package domain
