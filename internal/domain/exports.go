package domain

import (
	interfaces "calcpad/internal/domain/interfaces"
	types "calcpad/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID    = types.SessionID
	KeyKind      = types.KeyKind
	Key          = types.Key
	HistoryEntry = types.HistoryEntry
	Snapshot     = types.Snapshot
	Evaluation   = types.Evaluation

	EvaluateRequest = types.EvaluateRequest
	SelectRequest   = types.SelectRequest
	SessionResponse = types.SessionResponse
	SessionResult   = types.SessionResult
	ErrorResponse   = types.ErrorResponse
	SocketReply     = types.SocketReply
)

// Key kinds re-exported for callers that only import domain.
const (
	KeyNumber   = types.KeyNumber
	KeyOperator = types.KeyOperator
	KeyEquals   = types.KeyEquals
	KeyClear    = types.KeyClear
)

// Error kinds re-exported for transports.
const (
	ErrorKindBadRequest   = types.ErrorKindBadRequest
	ErrorKindInvalidKey   = types.ErrorKindInvalidKey
	ErrorKindUnknownKey   = types.ErrorKindUnknownKey
	ErrorKindNoSuchEntry  = types.ErrorKindNoSuchEntry
	ErrorKindInvalidToken = types.ErrorKindInvalidToken
	ErrorKindNotFound     = types.ErrorKindNotFound
	ErrorKindInternal     = types.ErrorKindInternal
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Normalizer        = interfaces.Normalizer
	Evaluator         = interfaces.Evaluator
	CalculatorService = interfaces.CalculatorService
	HistoryStore      = interfaces.HistoryStore
	SessionStore      = interfaces.SessionStore
	CalculatorClient  = interfaces.CalculatorClient
)
