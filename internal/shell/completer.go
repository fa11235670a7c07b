package shell

import (
	"strings"

	"github.com/GriffinCanCode/TermOS/internal/commands"
	"github.com/GriffinCanCode/TermOS/internal/vfs"
)

// completer implements readline.AutoCompleter: command names for the
// first word, virtual paths afterwards.
type completer struct {
	registry *commands.Registry
	fs       *vfs.FS
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	before := string(line[:pos])
	start := strings.LastIndexAny(before, " \t") + 1
	word := before[start:]

	var candidates []string
	if strings.TrimSpace(before[:start]) == "" {
		candidates = c.completeCommand(word)
	} else {
		candidates = c.completePath(word)
	}

	var out [][]rune
	for _, cand := range candidates {
		out = append(out, []rune(strings.TrimPrefix(cand, word)))
	}
	return out, len(word)
}

func (c *completer) completeCommand(prefix string) []string {
	var out []string
	for _, name := range c.registry.Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name+" ")
		}
	}
	return out
}

func (c *completer) completePath(prefix string) []string {
	dir := ""
	base := prefix
	if idx := strings.LastIndex(prefix, vfs.Separator); idx >= 0 {
		dir = prefix[:idx+1]
		base = prefix[idx+1:]
	}

	entries, err := c.fs.List(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name, base) {
			continue
		}
		cand := dir + entry.Name
		if entry.Dir {
			cand += vfs.Separator
		} else {
			cand += " "
		}
		out = append(out, cand)
	}
	return out
}
