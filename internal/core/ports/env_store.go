package ports

// EnvStore persists KEY=VALUE entries handed to every dispatched script.
type EnvStore interface {
	Load() (map[string]string, error)
	Save(env map[string]string) error
	Location() string
}
