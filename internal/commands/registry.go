package commands

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/GriffinCanCode/TermOS/internal/environ"
	"github.com/GriffinCanCode/TermOS/internal/logging"
	"github.com/GriffinCanCode/TermOS/internal/types"
	"github.com/GriffinCanCode/TermOS/internal/ui"
	"github.com/GriffinCanCode/TermOS/internal/vfs"
)

// Command is a unit of logic bound to a command name.
type Command interface {
	Definition() types.Definition
	Execute(ctx *Context, req types.Request) types.Result
}

// Context carries the shared state handed to every command.
type Context struct {
	FS       *vfs.FS
	Env      *environ.Manager
	Registry *Registry
	Colors   *ui.Palette
	Log      *logging.Logger

	// Input is the interactive input stream, used by commands that
	// read from the terminal directly (nano).
	Input io.Reader

	// Started is the session start time, for uptime reporting.
	Started time.Time

	// Save persists filesystem and environment state. Nil when the
	// session has no backing store.
	Save func() error
}

// Plain returns a copy of the context with colors disabled, for stages
// whose output is piped or redirected.
func (ctx *Context) Plain() *Context {
	if !ctx.Colors.Enabled() {
		return ctx
	}
	clone := *ctx
	clone.Colors = ui.Plain()
	return &clone
}

// Registry maps command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. Re-registering a name replaces it.
func (r *Registry) Register(cmd Command) error {
	def := cmd.Definition()
	if def.Name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[def.Name] = cmd
	return nil
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all command definitions sorted by name.
func (r *Registry) Definitions() []types.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]types.Definition, 0, len(r.commands))
	for _, cmd := range r.commands {
		defs = append(defs, cmd.Definition())
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// command binds a definition to a handler function.
type command struct {
	def types.Definition
	run func(*Context, types.Request) types.Result
}

func (c command) Definition() types.Definition { return c.def }

func (c command) Execute(ctx *Context, req types.Request) types.Result {
	return c.run(ctx, req)
}

// RegisterBuiltins fills the registry with every built-in command.
func RegisterBuiltins(r *Registry) {
	groups := [][]Command{
		filesystemCommands(),
		textCommands(),
		environmentCommands(),
		systemCommands(),
	}
	for _, group := range groups {
		for _, cmd := range group {
			// Built-in definitions always carry a name.
			_ = r.Register(cmd)
		}
	}
}
