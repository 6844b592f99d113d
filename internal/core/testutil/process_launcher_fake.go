package testutil

import "github.com/AntonioJCosta/ngenctl/internal/core/ports"

// LaunchCall records one invocation of FakeProcessLauncher.Run.
type LaunchCall struct {
	Path string
	Args []string
	Env  []string
}

/*
FakeProcessLauncher implements ports.ProcessLauncher without spawning anything.
Every call is recorded; Status and Err are returned as-is unless RunFunc is set.
*/
type FakeProcessLauncher struct {
	RunFunc func(path string, args []string, env []string) (int, error)
	Status  int
	Err     error

	Calls []LaunchCall
}

func (f *FakeProcessLauncher) Run(path string, args []string, env []string) (int, error) {
	f.Calls = append(f.Calls, LaunchCall{
		Path: path,
		Args: append([]string(nil), args...),
		Env:  append([]string(nil), env...),
	})
	if f.RunFunc != nil {
		return f.RunFunc(path, args, env)
	}
	return f.Status, f.Err
}

var _ ports.ProcessLauncher = (*FakeProcessLauncher)(nil)
