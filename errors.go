package twilio

import "fmt"

// InvalidArgumentError reports a verb argument that is neither a Text
// payload nor an Options map.
type InvalidArgumentError struct {
	Verb string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("twilio: invalid argument to %s, expected Text or Options", e.Verb)
}
