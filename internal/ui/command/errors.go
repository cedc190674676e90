package command

import "fmt"

type panicError struct {
	id    string
	value interface{}
}

func (e *panicError) Error() string {
	return fmt.Sprintf("action %s panicked: %v", e.id, e.value)
}
