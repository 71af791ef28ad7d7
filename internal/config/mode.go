package config

type AppMode int

const (
	DemoMode AppMode = iota
	InteractiveMode
)

func (m AppMode) String() string {
	switch m {
	case InteractiveMode:
		return "interactive"
	default:
		return "demo"
	}
}
