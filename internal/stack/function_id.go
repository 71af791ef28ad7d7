package stack

type Caller interface {
	FunctionID() string
}

var (
	_ Caller = call{}
	_ Caller = functionID("")
)

type functionID string

func (id functionID) FunctionID() string {
	return string(id)
}

// FunctionID returns a fixed id when one is given, otherwise it captures the caller.
func FunctionID(id string) Caller {
	if id != "" {
		return functionID(id)
	}

	return Call(1)
}
