// Package web serves calculators over HTTP for the browser widget.
//
// Routes
//
//	POST   /v1/evaluate                        stateless normalize + evaluate
//	POST   /v1/sessions                        new session, returns a token
//	GET    /v1/sessions/:token                 snapshot
//	DELETE /v1/sessions/:token                 end session
//	POST   /v1/sessions/:token/keys            one keypad event
//	POST   /v1/sessions/:token/evaluate        press "="
//	POST   /v1/sessions/:token/clear           press "C"
//	POST   /v1/sessions/:token/history/select  put a past result on the display
//	DELETE /v1/sessions/:token/history         drop history
//	GET    /v1/sessions/:token/ws              websocket keypad
//	GET    /healthz
//
// Errors are JSON bodies of the form {"error": "...", "kind": "..."}, where
// kind is one of the evaluation kinds (syntax, arithmetic, unsupported) or a
// transport kind such as invalid_token or not_found.
//
// Sessions are held in memory and dropped after an idle period by Janitor.
package web
