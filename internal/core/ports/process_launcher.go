package ports

// ProcessLauncher runs an executable to completion with inherited standard streams.
type ProcessLauncher interface {
	/*
	   Run starts path with args and waits for it. env lists extra KEY=VALUE
	   entries layered over the current environment. The returned status is the
	   child's exit code; err is only non-nil when the child could not be started.
	*/
	Run(path string, args []string, env []string) (status int, err error)
}
