package settings

import "sync"

var (
	mu       sync.Mutex
	instance *Configuration
)

// Get returns the process-wide Configuration, resolving it on first
// use. Every caller sees the same instance, so auto-generated secrets
// stay stable for the lifetime of the process.
func Get() (*Configuration, error) {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		instance = cfg
	}
	return instance, nil
}

// Override replaces the process-wide Configuration and returns a
// function that restores the previous one. Intended for tests.
func Override(cfg *Configuration) func() {
	mu.Lock()
	defer mu.Unlock()
	prev := instance
	instance = cfg
	return func() {
		mu.Lock()
		defer mu.Unlock()
		instance = prev
	}
}
