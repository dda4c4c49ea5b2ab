package types

// HistoryEntry records one successful evaluation. Result is the exact string
// the evaluator produced for Expression.
type HistoryEntry struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// Snapshot is a consistent read of a calculator's display and history.
type Snapshot struct {
	Expression     string         `json:"expression"`
	PreviousResult string         `json:"previous_result"`
	History        []HistoryEntry `json:"history"`
}

// Evaluation is the outcome of a stateless evaluate call.
type Evaluation struct {
	Expression string `json:"expression"`
	Normalized string `json:"normalized"`
	Result     string `json:"result"`
}
