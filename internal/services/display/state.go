package display

const (
	// DefaultPlaceholder is shown after a clear.
	DefaultPlaceholder = "0"
	// DefaultErrorIndicator is shown after a failed evaluation.
	DefaultErrorIndicator = "Error"
)

// State is the display of one calculator. It is not safe for concurrent use.
type State struct {
	current  string
	previous string

	placeholder    string
	errorIndicator string
}

// New returns a cleared display. Empty arguments select the defaults.
func New(placeholder, errorIndicator string) *State {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	if errorIndicator == "" {
		errorIndicator = DefaultErrorIndicator
	}
	return &State{
		current:        placeholder,
		placeholder:    placeholder,
		errorIndicator: errorIndicator,
	}
}

// AppendDigitOrPoint appends a digit or ".". A digit replaces the lone
// placeholder; a point extends it ("0."). Either replaces the error indicator.
func (s *State) AppendDigitOrPoint(ch string) {
	if ch == "" {
		return
	}
	switch {
	case s.ShowingError() && ch == ".":
		s.current = s.placeholder + ch
	case s.ShowingError():
		s.current = ch
	case s.current == s.placeholder && ch != ".":
		s.current = ch
	default:
		s.current += ch
	}
}

// AppendOperator appends an operator glyph. After an error it starts from the
// placeholder instead of the error text.
func (s *State) AppendOperator(op string) {
	if s.ShowingError() {
		s.current = s.placeholder
	}
	s.current += op
}

// Clear resets the expression to the placeholder and drops the previous result.
func (s *State) Clear() {
	s.current = s.placeholder
	s.previous = ""
}

// CurrentExpression returns the text being edited.
func (s *State) CurrentExpression() string { return s.current }

// SetCurrentExpression replaces the text being edited.
func (s *State) SetCurrentExpression(expression string) { s.current = expression }

// PreviousResult returns the line shown above the current expression.
func (s *State) PreviousResult() string { return s.previous }

// SetPreviousResult replaces the line shown above the current expression.
func (s *State) SetPreviousResult(text string) { s.previous = text }

// ShowError replaces the current expression with the error indicator.
func (s *State) ShowError() { s.current = s.errorIndicator }

// ShowingError reports whether the error indicator is displayed.
func (s *State) ShowingError() bool { return s.current == s.errorIndicator }

// ErrorIndicator returns the text shown after a failed evaluation.
func (s *State) ErrorIndicator() string { return s.errorIndicator }
