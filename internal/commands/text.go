package commands

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/TermOS/internal/types"
)

var firstInt = regexp.MustCompile(`-?\d+`)

func textCommands() []Command {
	return []Command{
		command{types.Definition{Name: "cat", Usage: "cat [file...]", Description: "Display file contents"}, runCat},
		command{types.Definition{Name: "echo", Usage: "echo [text...]", Description: "Echo arguments"}, runEcho},
		command{types.Definition{Name: "grep", Usage: "grep [-i] [-n] pattern [file...]", Description: "Search for patterns in text"}, runGrep},
		command{types.Definition{Name: "head", Usage: "head [-n N] [file...]", Description: "Display first lines"}, runHead},
		command{types.Definition{Name: "tail", Usage: "tail [-n N] [file...]", Description: "Display last lines"}, runTail},
		command{types.Definition{Name: "wc", Usage: "wc [file...]", Description: "Count lines, words, and characters"}, runWc},
		command{types.Definition{Name: "sort", Usage: "sort [-r] [-n] [file...]", Description: "Sort lines of text"}, runSort},
	}
}

func runCat(ctx *Context, req types.Request) types.Result {
	if len(req.Args) == 0 {
		return types.Ok(req.Stdin)
	}
	var parts []string
	for _, path := range req.Args {
		content, err := ctx.FS.ReadFile(path)
		if err != nil {
			return types.Fail("cat: %v", err)
		}
		parts = append(parts, content)
	}
	return types.Ok(strings.Join(parts, "\n"))
}

func runEcho(ctx *Context, req types.Request) types.Result {
	return types.Ok(strings.Join(req.Args, " "))
}

func runGrep(ctx *Context, req types.Request) types.Result {
	ignoreCase := false
	numbered := false
	var rest []string
	for _, arg := range req.Args {
		switch {
		case arg == "-i":
			ignoreCase = true
		case arg == "-n":
			numbered = true
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			return types.Fail("grep: invalid option '%s'", arg)
		default:
			rest = append(rest, arg)
		}
	}
	if len(rest) == 0 {
		return types.Fail("grep: missing pattern")
	}
	pattern := rest[0]
	files := rest[1:]

	match := func(line string) bool {
		if ignoreCase {
			return strings.Contains(strings.ToLower(line), strings.ToLower(pattern))
		}
		return strings.Contains(line, pattern)
	}

	search := func(content, label string) []string {
		var out []string
		for i, line := range strings.Split(content, "\n") {
			if !match(line) {
				continue
			}
			switch {
			case label != "" && numbered:
				out = append(out, fmt.Sprintf("%s:%d:%s", ctx.Colors.Info(label), i+1, line))
			case label != "":
				out = append(out, fmt.Sprintf("%s:%s", ctx.Colors.Info(label), line))
			case numbered:
				out = append(out, fmt.Sprintf("%d:%s", i+1, line))
			default:
				out = append(out, line)
			}
		}
		return out
	}

	var lines []string
	if len(files) == 0 {
		lines = search(req.Stdin, "")
	} else {
		for _, path := range files {
			content, err := ctx.FS.ReadFile(path)
			if err != nil {
				return types.Fail("grep: %v", err)
			}
			label := ""
			if len(files) > 1 {
				label = path
			}
			lines = append(lines, search(content, label)...)
		}
	}
	return types.Ok(strings.Join(lines, "\n"))
}

// parseLineCount handles "-n N", "-nN", and bare file arguments shared
// by head and tail.
func parseLineCount(name string, args []string) (count int, files []string, err error) {
	count = 10
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-n" && i+1 < len(args):
			count, err = strconv.Atoi(args[i+1])
			if err != nil {
				return 0, nil, fmt.Errorf("%s: invalid number '%s'", name, args[i+1])
			}
			i++
		case strings.HasPrefix(arg, "-n") && len(arg) > 2:
			count, err = strconv.Atoi(arg[2:])
			if err != nil {
				return 0, nil, fmt.Errorf("%s: invalid number '%s'", name, arg[2:])
			}
		case strings.HasPrefix(arg, "-"):
			return 0, nil, fmt.Errorf("%s: invalid option '%s'", name, arg)
		default:
			files = append(files, arg)
		}
	}
	return count, files, nil
}

func headTail(ctx *Context, req types.Request, name string, pick func(lines []string, n int) []string) types.Result {
	count, files, err := parseLineCount(name, req.Args)
	if err != nil {
		return types.Fail("%v", err)
	}
	if count < 0 {
		count = 0
	}

	if len(files) == 0 {
		var lines []string
		if req.Stdin != "" {
			lines = strings.Split(req.Stdin, "\n")
		}
		return types.Ok(strings.Join(pick(lines, count), "\n"))
	}

	var parts []string
	for _, path := range files {
		content, err := ctx.FS.ReadFile(path)
		if err != nil {
			return types.Fail("%s: %v", name, err)
		}
		selected := pick(strings.Split(content, "\n"), count)
		if len(files) > 1 {
			parts = append(parts, fmt.Sprintf("==> %s <==", path))
		}
		parts = append(parts, strings.Join(selected, "\n"))
	}
	return types.Ok(strings.Join(parts, "\n"))
}

func runHead(ctx *Context, req types.Request) types.Result {
	return headTail(ctx, req, "head", func(lines []string, n int) []string {
		if len(lines) > n {
			return lines[:n]
		}
		return lines
	})
}

func runTail(ctx *Context, req types.Request) types.Result {
	return headTail(ctx, req, "tail", func(lines []string, n int) []string {
		if len(lines) > n {
			return lines[len(lines)-n:]
		}
		return lines
	})
}

func runWc(ctx *Context, req types.Request) types.Result {
	count := func(text string) (lines, words, chars int) {
		if text != "" {
			lines = strings.Count(text, "\n")
			words = len(strings.Fields(text))
		}
		return lines, words, len(text)
	}

	if len(req.Args) == 0 {
		lines, words, chars := count(req.Stdin)
		return types.Ok(fmt.Sprintf("%8d %8d %8d", lines, words, chars))
	}

	var out []string
	var totalLines, totalWords, totalChars int
	for _, path := range req.Args {
		content, err := ctx.FS.ReadFile(path)
		if err != nil {
			return types.Fail("wc: %v", err)
		}
		lines, words, chars := count(content)
		totalLines += lines
		totalWords += words
		totalChars += chars
		out = append(out, fmt.Sprintf("%8d %8d %8d %s", lines, words, chars, path))
	}
	if len(req.Args) > 1 {
		out = append(out, fmt.Sprintf("%8d %8d %8d total", totalLines, totalWords, totalChars))
	}
	return types.Ok(strings.Join(out, "\n"))
}

func runSort(ctx *Context, req types.Request) types.Result {
	reverse := false
	numeric := false
	var files []string
	for _, arg := range req.Args {
		switch {
		case arg == "-r":
			reverse = true
		case arg == "-n":
			numeric = true
		case strings.HasPrefix(arg, "-"):
			return types.Fail("sort: invalid option '%s'", arg)
		default:
			files = append(files, arg)
		}
	}

	text := req.Stdin
	if len(files) > 0 {
		var parts []string
		for _, path := range files {
			content, err := ctx.FS.ReadFile(path)
			if err != nil {
				return types.Fail("sort: %v", err)
			}
			parts = append(parts, content)
		}
		text = strings.Join(parts, "\n")
	}

	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	if numeric {
		key := func(line string) int {
			if m := firstInt.FindString(line); m != "" {
				if n, err := strconv.Atoi(m); err == nil {
					return n
				}
			}
			return 0
		}
		sort.SliceStable(lines, func(i, j int) bool {
			if reverse {
				return key(lines[i]) > key(lines[j])
			}
			return key(lines[i]) < key(lines[j])
		})
	} else {
		sort.Strings(lines)
		if reverse {
			for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
				lines[i], lines[j] = lines[j], lines[i]
			}
		}
	}
	return types.Ok(strings.Join(lines, "\n"))
}
