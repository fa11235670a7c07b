package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/GriffinCanCode/TermOS/internal/types"
)

func systemCommands() []Command {
	return []Command{
		command{types.Definition{Name: "date", Usage: "date", Description: "Display current date and time"}, runDate},
		command{types.Definition{Name: "clear", Usage: "clear", Description: "Clear the terminal screen"}, runClear},
		command{types.Definition{Name: "help", Usage: "help [command]", Description: "Show help for commands"}, runHelp},
		command{types.Definition{Name: "save", Usage: "save", Description: "Save filesystem and environment state"}, runSave},
		command{types.Definition{Name: "nano", Usage: "nano file", Description: "Simple line editor"}, runNano},
		command{types.Definition{Name: "neofetch", Usage: "neofetch", Description: "Display system information"}, runNeofetch},
	}
}

func runDate(ctx *Context, req types.Request) types.Result {
	return types.Ok(ctx.Colors.Highlight(time.Now().Format("Mon Jan 02 15:04:05 2006")))
}

func runClear(ctx *Context, req types.Request) types.Result {
	return types.Ok("\x1b[2J\x1b[H")
}

func runHelp(ctx *Context, req types.Request) types.Result {
	if len(req.Args) > 0 {
		name := req.Args[0]
		cmd, ok := ctx.Registry.Get(name)
		if !ok {
			return types.Fail("help: no help topics match '%s'", name)
		}
		def := cmd.Definition()
		return types.Ok(fmt.Sprintf("%s\n%s", ctx.Colors.Info(def.Usage), def.Description))
	}

	lines := []string{ctx.Colors.Highlight("Available commands:")}
	for _, def := range ctx.Registry.Definitions() {
		name := ctx.Colors.Success(fmt.Sprintf("%-10s", def.Name))
		lines = append(lines, fmt.Sprintf("  %s %s", name, ctx.Colors.Info(def.Description)))
	}
	return types.Ok(strings.Join(lines, "\n"))
}

func runSave(ctx *Context, req types.Request) types.Result {
	if ctx.Save == nil {
		return types.Fail("save: no backing store")
	}
	if err := ctx.Save(); err != nil {
		return types.Fail("save: %v", err)
	}
	return types.Ok(ctx.Colors.Success("Filesystem and environment saved."))
}
