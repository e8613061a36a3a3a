package domain

// Outcome - result of a workflow step: the caller-facing message and the record it left behind, if any.
type Outcome struct {
	Message  string
	Property *Property
}
