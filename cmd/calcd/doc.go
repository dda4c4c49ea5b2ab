// Package main runs calcd, the HTTP backend for the calculator widget.
//
// Each browser widget creates a session and sends keypad events to it; the
// server holds the display and history and answers every event with a
// snapshot. A stateless evaluate endpoint serves one-off expressions. See
// package internal/web for the routes.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Sessions idle for longer than server.session_ttl are dropped.
//   - Session tokens are signed with server.session_secret; without one a
//     random key is used and tokens die with the process.
//   - SIGINT and SIGTERM trigger a graceful shutdown.
//   - The default listen address is 127.0.0.1:8080 (server.addr, CALCPAD_ADDR).
package main
