package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/TermOS/internal/types"
)

// runNano is a bare-bones line editor: it shows existing content, then
// reads replacement lines from the terminal until EOF (Ctrl+D) and
// writes them back.
func runNano(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Fail("nano: missing file operand")
	}
	if ctx.Input == nil {
		return types.Fail("nano: no interactive input")
	}
	path := req.Args[0]

	existing, err := ctx.FS.ReadFile(path)
	if err != nil && !ctx.FS.Exists(path) {
		existing = ""
	} else if err != nil {
		return types.Fail("nano: %v", err)
	}

	var b strings.Builder
	b.WriteString(ctx.Colors.Highlight(fmt.Sprintf("=== nano - %s ===", path)) + "\n")
	if existing != "" {
		b.WriteString(ctx.Colors.Success("Existing content:") + "\n")
		for _, line := range strings.Split(existing, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(ctx.Colors.Info("Enter new content, Ctrl+D to save:") + "\n")
	fmt.Print(b.String())

	var lines []string
	scanner := bufio.NewScanner(ctx.Input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return types.Fail("nano: %v", err)
	}

	content := strings.Join(lines, "\n")
	if err := ctx.FS.WriteFile(path, content, false); err != nil {
		return types.Fail("nano: cannot write '%s': %v", path, err)
	}
	return types.Ok(fmt.Sprintf("Saved %d lines to %s", len(lines), path))
}
