// Package environ manages shell environment variables and command
// history, persisted together as one JSON document.
package environ

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/GriffinCanCode/TermOS/internal/store"
)

// DefaultHistoryLimit caps history when no explicit limit is given.
const DefaultHistoryLimit = 1000

var varPattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)

// Manager holds environment variables and the command history ring.
type Manager struct {
	mu      sync.RWMutex
	vars    map[string]string
	history []string
	limit   int
}

// New returns a manager seeded with the standard variables for user.
func New(user string, historyLimit int) *Manager {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	home := "/home/" + user
	return &Manager{
		vars: map[string]string{
			"PATH":  "/usr/bin:/bin",
			"HOME":  home,
			"USER":  user,
			"SHELL": "/bin/termos",
			"PS1":   "$ ",
		},
		limit: historyLimit,
	}
}

// Get returns the value of a variable.
func (m *Manager) Get(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[name]
	return v, ok
}

// Set assigns a variable.
func (m *Manager) Set(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars[name] = value
}

// Unset removes a variable.
func (m *Manager) Unset(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, name)
}

// Sorted returns all variables as NAME=value lines in name order.
func (m *Manager) Sorted() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.vars))
	for name, value := range m.vars {
		out = append(out, fmt.Sprintf("%s=%s", name, value))
	}
	sort.Strings(out)
	return out
}

// Expand substitutes $NAME references in s. Unknown variables are left
// as written.
func (m *Manager) Expand(s string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		if value, ok := m.vars[match[1:]]; ok {
			return value
		}
		return match
	})
}

// AddHistory appends a command line, dropping the oldest entry once
// the ring is full. Blank lines are ignored.
func (m *Manager) AddHistory(line string) {
	if line == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, line)
	if len(m.history) > m.limit {
		m.history = m.history[len(m.history)-m.limit:]
	}
}

// History returns a copy of the command history, oldest first.
func (m *Manager) History() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// State is the serialized form of the manager.
type State struct {
	Variables map[string]string `json:"variables"`
	History   []string          `json:"history"`
}

// Save writes variables and history to path.
func Save(m *Manager, path string) error {
	m.mu.RLock()
	state := State{
		Variables: make(map[string]string, len(m.vars)),
		History:   make([]string, len(m.history)),
	}
	for name, value := range m.vars {
		state.Variables[name] = value
	}
	copy(state.History, m.history)
	m.mu.RUnlock()

	return store.WriteJSON(path, &state)
}

// Load reads persisted state from path into a new manager. Persisted
// variables override the seeded defaults; defaults for variables the
// file does not mention are kept.
func Load(path, user string, historyLimit int) (*Manager, error) {
	var state State
	if err := store.ReadJSON(path, &state); err != nil {
		return nil, err
	}

	m := New(user, historyLimit)
	for name, value := range state.Variables {
		m.vars[name] = value
	}
	m.history = state.History
	if len(m.history) > m.limit {
		m.history = m.history[len(m.history)-m.limit:]
	}
	return m, nil
}
