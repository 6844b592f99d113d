package ports

// Dispatcher turns a typed command name and its arguments into a finished
// child process and its exit status.
type Dispatcher interface {
	Dispatch(command string, args []string) (status int, err error)
}
