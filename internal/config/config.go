package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/gonzen2310/singlylinkedlist/log"
	"github.com/gonzen2310/singlylinkedlist/trace"
)

var ErrWrongArgs = errors.New("wrong args")

type Config struct {
	Mode AppMode

	LogLevel log.Level
	Coloring bool
	Zap      bool
	Details  trace.Details
}

// New parses command line arguments without the program name. Help goes to out.
func New(args []string, out io.Writer) (*Config, error) {
	cfg := &Config{}

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "demo":
			cfg.Mode = DemoMode
		case "interactive":
			cfg.Mode = InteractiveMode
		default:
			fmt.Fprint(out, mainHelp)

			return nil, ErrWrongArgs
		}
		args = args[1:]
	}

	var (
		fs       = flag.NewFlagSet("linkedlist", flag.ContinueOnError)
		logLevel string
		details  string
	)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, optionsHelp)
	}

	fs.StringVar(&logLevel, "log-level", "quiet", "minimum level of list events")
	fs.BoolVar(&cfg.Coloring, "color", false, "colored log output")
	fs.StringVar(&details, "trace", "^list$", "regexp over list event names")
	fs.BoolVar(&cfg.Zap, "zap", false, "log through zap production logger")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprint(out, optionsHelp)

		return nil, ErrWrongArgs
	}

	cfg.LogLevel = log.FromString(logLevel)
	cfg.Details = trace.MatchDetails(details, trace.WithDefaultDetails(trace.ListEvents))

	return cfg, nil
}
