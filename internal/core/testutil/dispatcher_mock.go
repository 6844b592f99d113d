package testutil

import "github.com/AntonioJCosta/ngenctl/internal/core/ports"

// DispatchCall records one Dispatch invocation.
type DispatchCall struct {
	Command string
	Args    []string
}

// MockDispatcher is a mock implementation of ports.Dispatcher.
type MockDispatcher struct {
	DispatchFunc func(command string, args []string) (int, error)

	Calls []DispatchCall
}

func (m *MockDispatcher) Dispatch(command string, args []string) (int, error) {
	m.Calls = append(m.Calls, DispatchCall{Command: command, Args: append([]string(nil), args...)})
	if m.DispatchFunc != nil {
		return m.DispatchFunc(command, args)
	}
	return 0, nil
}

var _ ports.Dispatcher = (*MockDispatcher)(nil)
