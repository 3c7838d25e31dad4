package dispatch

// Entity is the kind of control flow that is exiting.
type Entity int

const (
	Program Entity = iota
	Function
	Thread
)

var entityTags = map[Entity]string{
	Program:  "program",
	Function: "function",
	Thread:   "thread",
}

var entityLabels = map[Entity]string{
	Program:  "Program",
	Function: "Function",
	Thread:   "Thread",
}

func (e Entity) String() string {
	return entityTags[e]
}

// Label is the name used in the fallback log message.
func (e Entity) Label() string {
	return entityLabels[e]
}
