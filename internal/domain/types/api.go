package types

// EvaluateRequest is the body of a stateless evaluate call.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// SelectRequest picks a history entry by index, newest first.
type SelectRequest struct {
	Index int `json:"index"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	Token    string   `json:"token"`
	Snapshot Snapshot `json:"snapshot"`
}

// SessionResult carries a session's state after an event. Result is set
// only by a successful evaluation.
type SessionResult struct {
	Result   string   `json:"result,omitempty"`
	Snapshot Snapshot `json:"snapshot"`
}

// ErrorResponse is the body of every non-2xx response. Snapshot is set when
// the failed request still changed the session (a failed evaluation shows
// the error indicator).
type ErrorResponse struct {
	Error    string    `json:"error"`
	Kind     string    `json:"kind"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
}

// SocketReply answers one key event received over a session websocket.
type SocketReply struct {
	Result   string   `json:"result,omitempty"`
	Error    string   `json:"error,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	Snapshot Snapshot `json:"snapshot"`
}

// Error kinds carried by ErrorResponse besides the evaluation kinds
// "syntax", "arithmetic" and "unsupported".
const (
	ErrorKindBadRequest   = "bad_request"
	ErrorKindInvalidKey   = "invalid_key"
	ErrorKindUnknownKey   = "unknown_key"
	ErrorKindNoSuchEntry  = "no_such_entry"
	ErrorKindInvalidToken = "invalid_token"
	ErrorKindNotFound     = "not_found"
	ErrorKindInternal     = "internal"
)
