package commands

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/TermOS/internal/types"
)

func environmentCommands() []Command {
	return []Command{
		command{types.Definition{Name: "export", Usage: "export [NAME=value...]", Description: "Set environment variables"}, runExport},
		command{types.Definition{Name: "env", Usage: "env", Description: "List environment variables"}, runEnv},
		command{types.Definition{Name: "unset", Usage: "unset NAME...", Description: "Remove environment variables"}, runUnset},
		command{types.Definition{Name: "history", Usage: "history", Description: "Show command history"}, runHistory},
		command{types.Definition{Name: "which", Usage: "which command...", Description: "Locate commands"}, runWhich},
	}
}

func runExport(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Ok(strings.Join(ctx.Env.Sorted(), "\n"))
	}
	for _, arg := range req.Args {
		name, value, found := strings.Cut(arg, "=")
		if name == "" {
			return types.Fail("export: invalid assignment '%s'", arg)
		}
		if found {
			ctx.Env.Set(name, value)
		}
		// Bare names are already "exported": all variables are.
	}
	return types.Ok("")
}

func runEnv(ctx *Context, req types.Request) types.Result {
	return types.Ok(strings.Join(ctx.Env.Sorted(), "\n"))
}

func runUnset(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Fail("unset: missing variable name")
	}
	for _, name := range req.Args {
		ctx.Env.Unset(name)
	}
	return types.Ok("")
}

func runHistory(ctx *Context, req types.Request) types.Result {
	var lines []string
	for i, entry := range ctx.Env.History() {
		lines = append(lines, fmt.Sprintf("%4d  %s", i+1, entry))
	}
	return types.Ok(strings.Join(lines, "\n"))
}

func runWhich(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Fail("which: missing command name")
	}
	var lines []string
	for _, name := range req.Args {
		if _, ok := ctx.Registry.Get(name); !ok {
			return types.Fail("which: %s: command not found", name)
		}
		lines = append(lines, "/usr/bin/"+name)
	}
	return types.Ok(strings.Join(lines, "\n"))
}
