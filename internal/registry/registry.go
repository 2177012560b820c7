// Package registry provides a global registry of frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// ErrUnknownFrontend is returned by Create for an unregistered name.
var ErrUnknownFrontend = errors.New("registry: unknown frontend")

// Frontend drives a game: it owns the clock, collects input and draws
// frames. The game itself never sees the frontend.
type Frontend interface {
	// Name returns the identifier used on the command line (e.g., "tui").
	Name() string

	// Title returns a human-readable description for listings.
	Title() string

	// Run plays until the user quits or ctx is cancelled.
	Run(ctx context.Context, opts Options) error
}

// Options are passed to a frontend when it starts.
type Options struct {
	Config  config.BreakerConfig
	Runtime core.RuntimeConfig // Terminal size for text frontends
	Logger  *log.Logger        // May be nil
}

// Info contains metadata about a registered frontend.
type Info struct {
	Name  string
	Title string
}

// Factory creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	titles[name] = f().Title()
}

// List returns all registered frontends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a frontend by name.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFrontend, name)
	}

	return f(), nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
