package conf

// Config configures the demonstration program. An empty hook message leaves the
// corresponding handler unset so that the dispatcher falls back to logging.
type Config struct {
	Hooks Hooks `json:"hooks"`
	Misc  Misc  `json:"misc"`
}

type Hooks struct {
	Program  string `json:"program" validate:"max=256"`
	Function string `json:"function" validate:"max=256"`
	Thread   string `json:"thread" validate:"max=256"`
}

type Misc struct {
	VerboseLog bool `json:"verbose-log"`
	ExitCode   int  `json:"exit-code" validate:"gte=0,lte=125"`
}
