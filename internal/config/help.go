package config

const (
	mainHelp = `Commands:
- demo        - runs the scripted demonstration (default)
- interactive - reads numbered menu choices from stdin
`
	optionsHelp = `Usage: linkedlist [demo|interactive] [options]

Options:
  -log-level <string> minimum level of list events: trace, debug, info, warn, error, quiet
  -color              colored log output
  -trace     <string> regexp over list event names (list, list.mutation, list.mutation.insert,
                      list.mutation.delete, list.lookup)
  -zap                log through zap production logger (JSON)
`
)
