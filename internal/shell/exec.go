package shell

import (
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/TermOS/internal/commands"
	"github.com/GriffinCanCode/TermOS/internal/types"
)

// Executor runs parsed command lines against the command registry.
type Executor struct {
	ctx      *commands.Context
	autosave bool
}

// NewExecutor creates an executor. With autosave set, state is flushed
// after every executed line.
func NewExecutor(ctx *commands.Context, autosave bool) *Executor {
	return &Executor{ctx: ctx, autosave: autosave}
}

// Run parses and executes one command line and returns the result of
// the last pipeline that ran.
func (e *Executor) Run(line string) types.Result {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return types.Ok("")
	}

	pipelines, err := Parse(trimmed)
	if err != nil {
		return types.Fail("%v", err)
	}

	last := types.Ok("")
	for _, pipeline := range pipelines {
		last = e.runPipeline(pipeline)
		if pipeline.Op == And && !last.Success() {
			break
		}
		if pipeline.Op == Or && last.Success() {
			break
		}
	}

	if e.autosave && e.ctx.Save != nil {
		if err := e.ctx.Save(); err != nil {
			e.ctx.Log.Warn("autosave failed", zap.Error(err))
		}
	}
	return last
}

func (e *Executor) runPipeline(pipeline Pipeline) types.Result {
	stdin := ""
	last := types.Ok("")

	for i, stage := range pipeline.Stages {
		args := make([]string, len(stage.Args))
		for j, arg := range stage.Args {
			args[j] = e.ctx.Env.Expand(arg)
		}
		name := args[0]
		cmd, ok := e.ctx.Registry.Get(name)
		if !ok {
			return types.Fail("command not found: %s", name)
		}

		if stage.In != "" {
			content, err := e.ctx.FS.ReadFile(e.ctx.Env.Expand(stage.In))
			if err != nil {
				return types.Fail("%s: %v", name, err)
			}
			stdin = content
		}

		// Piped or redirected output stays plain; color belongs to the
		// terminal only.
		ctx := e.ctx
		final := i == len(pipeline.Stages)-1
		if !final || stage.Out != "" {
			ctx = ctx.Plain()
		}

		last = cmd.Execute(ctx, types.Request{Args: args[1:], Stdin: stdin})

		if !last.Success() && len(pipeline.Stages) > 1 {
			break
		}
		if stage.Out != "" && last.Success() {
			target := e.ctx.Env.Expand(stage.Out)
			if err := e.ctx.FS.WriteFile(target, last.Output, stage.AppendOut); err != nil {
				return types.Fail("%s: cannot write to '%s': %v", name, target, err)
			}
			// A redirected stage feeds nothing down the pipe.
			last.Output = ""
		}
		if !final {
			stdin = last.Output
		}
	}
	return last
}
