package coordinator

import "errors"

// Editing precondition failures. Intents that violate them panic with one of
// these wrapped in the message.
var (
	ErrNotEditing   = errors.New("no item is being edited")
	ErrEditMismatch = errors.New("item does not match the edited item")
)
