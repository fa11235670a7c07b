package commands

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"

	"github.com/GriffinCanCode/TermOS/internal/types"
	"github.com/GriffinCanCode/TermOS/internal/vfs"
)

func filesystemCommands() []Command {
	return []Command{
		command{types.Definition{Name: "ls", Usage: "ls [path]", Description: "List directory contents"}, runLs},
		command{types.Definition{Name: "cd", Usage: "cd [path]", Description: "Change directory"}, runCd},
		command{types.Definition{Name: "pwd", Usage: "pwd", Description: "Print working directory"}, runPwd},
		command{types.Definition{Name: "mkdir", Usage: "mkdir [-p] path...", Description: "Create directories"}, runMkdir},
		command{types.Definition{Name: "touch", Usage: "touch file...", Description: "Create empty files"}, runTouch},
		command{types.Definition{Name: "rm", Usage: "rm [-r] path...", Description: "Remove files and directories"}, runRm},
		command{types.Definition{Name: "mv", Usage: "mv src dst", Description: "Move or rename files"}, runMv},
		command{types.Definition{Name: "cp", Usage: "cp src dst", Description: "Copy files and directories"}, runCp},
		command{types.Definition{Name: "find", Usage: "find start [-name pattern]", Description: "Find files and directories"}, runFind},
		command{types.Definition{Name: "tree", Usage: "tree [path]", Description: "Show directory tree"}, runTree},
		command{types.Definition{Name: "stat", Usage: "stat path...", Description: "Show file metadata"}, runStat},
		command{types.Definition{Name: "file", Usage: "file path...", Description: "Detect file content type"}, runFile},
		command{types.Definition{Name: "du", Usage: "du [path...]", Description: "Show disk usage"}, runDu},
	}
}

func runLs(ctx *Context, req types.Request) types.Result {
	path := ""
	if len(req.Args) > 0 {
		path = req.Args[0]
	}

	entries, err := ctx.FS.List(path)
	if err != nil {
		return types.Fail("ls: %v", err)
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		mode := entry.Mode
		name := entry.Name
		if entry.Dir {
			mode = ctx.Colors.Info(mode)
			name = ctx.Colors.Highlight(name + "/")
		} else {
			mode = ctx.Colors.Warning(mode)
			name = ctx.Colors.Success(name)
		}
		size := ctx.Colors.Info(fmt.Sprintf("%8d", entry.Size))
		lines = append(lines, fmt.Sprintf("%s %s %s", mode, size, name))
	}
	return types.Ok(strings.Join(lines, "\n"))
}

func runCd(ctx *Context, req types.Request) types.Result {
	path := ""
	if len(req.Args) > 0 {
		path = req.Args[0]
	} else if home, ok := ctx.Env.Get("HOME"); ok {
		path = home
	}

	if err := ctx.FS.Chdir(path); err != nil {
		return types.Fail("cd: %v", err)
	}
	ctx.Env.Set("PWD", ctx.FS.Cwd())
	return types.Ok("")
}

func runPwd(ctx *Context, req types.Request) types.Result {
	return types.Ok(ctx.Colors.Info(ctx.FS.Cwd()))
}

func runMkdir(ctx *Context, req types.Request) types.Result {
	parents := false
	var paths []string
	for _, arg := range req.Args {
		switch {
		case arg == "-p":
			parents = true
		case strings.HasPrefix(arg, "-"):
			return types.Fail("mkdir: invalid option '%s'", arg)
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		return types.Fail("mkdir: missing operand")
	}

	var errs []string
	for _, path := range paths {
		var err error
		if parents {
			err = ctx.FS.MkdirAll(path)
		} else {
			err = ctx.FS.Mkdir(path)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("mkdir: cannot create directory '%s': %v", path, err))
		}
	}
	if len(errs) > 0 {
		return types.Result{ExitCode: 1, Err: strings.Join(errs, "\n")}
	}
	return types.Ok("")
}

func runTouch(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Fail("touch: missing file operand")
	}
	for _, path := range req.Args {
		if err := ctx.FS.Touch(path); err != nil {
			return types.Fail("touch: cannot create '%s': %v", path, err)
		}
	}
	return types.Ok("")
}

func runRm(ctx *Context, req types.Request) types.Result {
	recursive := false
	var paths []string
	for _, arg := range req.Args {
		switch {
		case arg == "-r" || arg == "-rf":
			recursive = true
		case strings.HasPrefix(arg, "-"):
			return types.Fail("rm: invalid option '%s'", arg)
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		return types.Fail("rm: missing operand")
	}

	var errs []string
	for _, path := range paths {
		if node, err := ctx.FS.Stat(path); err == nil && node.Dir && !recursive {
			errs = append(errs, fmt.Sprintf("rm: cannot remove '%s': is a directory (use -r)", path))
			continue
		}
		if err := ctx.FS.Remove(path, recursive); err != nil {
			errs = append(errs, fmt.Sprintf("rm: cannot remove '%s': %v", path, err))
		}
	}
	if len(errs) > 0 {
		return types.Result{ExitCode: 1, Err: strings.Join(errs, "\n")}
	}
	return types.Ok("")
}

func runMv(ctx *Context, req types.Request) types.Result {
	if len(req.Args) != 2 {
		return types.Fail("mv: usage: mv src dst")
	}
	if err := ctx.FS.Rename(req.Args[0], req.Args[1]); err != nil {
		return types.Fail("mv: %v", err)
	}
	return types.Ok("")
}

func runCp(ctx *Context, req types.Request) types.Result {
	if len(req.Args) != 2 {
		return types.Fail("cp: usage: cp src dst")
	}
	if err := ctx.FS.Copy(req.Args[0], req.Args[1]); err != nil {
		return types.Fail("cp: %v", err)
	}
	return types.Ok("")
}

func runFind(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Fail("find: missing starting point")
	}
	start := req.Args[0]
	pattern := ""
	for i := 1; i < len(req.Args); i++ {
		if req.Args[i] == "-name" && i+1 < len(req.Args) {
			pattern = req.Args[i+1]
			i++
		}
	}

	var matches []string
	err := ctx.FS.Walk(start, func(path string, node *vfs.Node) error {
		if pattern != "" {
			ok, err := doublestar.Match(pattern, vfs.Base(path))
			if err != nil {
				return fmt.Errorf("invalid pattern '%s'", pattern)
			}
			if !ok {
				return nil
			}
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return types.Fail("find: %v", err)
	}
	return types.Ok(strings.Join(matches, "\n"))
}

func runTree(ctx *Context, req types.Request) types.Result {
	path := "."
	if len(req.Args) > 0 {
		path = req.Args[0]
	}
	root, err := ctx.FS.Stat(path)
	if err != nil {
		return types.Fail("tree: %v", err)
	}
	if !root.Dir {
		return types.Fail("tree: %s: %v", path, vfs.ErrNotDir)
	}

	var b strings.Builder
	b.WriteString(ctx.Colors.Highlight(ctx.FS.Resolve(path)))
	dirs, files := renderTree(ctx, &b, root, "")
	fmt.Fprintf(&b, "\n\n%d directories, %d files", dirs, files)
	return types.Ok(b.String())
}

func renderTree(ctx *Context, b *strings.Builder, node *vfs.Node, prefix string) (dirs, files int) {
	children := node.SortedChildren()
	for i, child := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		name := ctx.Colors.Success(child.Name)
		if child.Dir {
			name = ctx.Colors.Highlight(child.Name + "/")
		}
		fmt.Fprintf(b, "\n%s%s%s", prefix, connector, name)
		if child.Dir {
			dirs++
			d, f := renderTree(ctx, b, child, childPrefix)
			dirs += d
			files += f
		} else {
			files++
		}
	}
	return dirs, files
}

func runStat(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Fail("stat: missing operand")
	}

	var blocks []string
	for _, path := range req.Args {
		node, err := ctx.FS.Stat(path)
		if err != nil {
			return types.Fail("stat: %v", err)
		}
		kind := "regular file"
		if node.Dir {
			kind = "directory"
		}
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf("  File: %s", ctx.Colors.Success(ctx.FS.Resolve(path))),
			fmt.Sprintf("  Type: %s", kind),
			fmt.Sprintf("  Size: %d", node.TotalSize()),
			fmt.Sprintf("Access: %s", node.Mode),
			fmt.Sprintf("Modify: %s", node.Modified.Format("2006-01-02 15:04:05")),
		}, "\n"))
	}
	return types.Ok(strings.Join(blocks, "\n"))
}

func runFile(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Fail("file: missing operand")
	}

	var lines []string
	for _, path := range req.Args {
		node, err := ctx.FS.Stat(path)
		if err != nil {
			return types.Fail("file: %v", err)
		}
		var kind string
		switch {
		case node.Dir:
			kind = "directory"
		case node.Size == 0:
			kind = "empty"
		default:
			kind = mimetype.Detect([]byte(node.Content)).String()
		}
		lines = append(lines, fmt.Sprintf("%s: %s", path, ctx.Colors.Info(kind)))
	}
	return types.Ok(strings.Join(lines, "\n"))
}

func runDu(ctx *Context, req types.Request) types.Result {
	paths := req.Args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var lines []string
	for _, path := range paths {
		node, err := ctx.FS.Stat(path)
		if err != nil {
			return types.Fail("du: %v", err)
		}
		lines = append(lines, fmt.Sprintf("%8d %s", node.TotalSize(), ctx.FS.Resolve(path)))
	}
	return types.Ok(strings.Join(lines, "\n"))
}
