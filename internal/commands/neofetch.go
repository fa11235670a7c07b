package commands

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/GriffinCanCode/TermOS/internal/types"
)

var neofetchLogo = []string{
	`                  -`,
	`                 .o+`,
	"                 `ooo/",
	"                `+oooo:",
	"               `+oooooo:",
	`               -+oooooo+:`,
	"             `/:-:++oooo+:",
	"            `/++++/+++++++:",
	"           `/++++++++++++++:",
	"          `/+++ooooooooooooo/`",
	"         ./ooosssso++osssssso+`",
	"        .oossssso-````/ossssss+`",
	`       -osssssso.      :ssssssso.`,
	`      :osssssss/        osssso+++.`,
	`     /ossssssss/        +ssssooo/-`,
	"   `/ossssso+/:-        -:/+osssso+-",
	"  `+sso+:-`                 `.-/+oso:",
	" `++:.                           `-/+/",
	" .`                                 `/",
}

// runNeofetch renders the session banner: ASCII logo beside host and
// session facts, mimicking the real tool against the virtual machine
// state.
func runNeofetch(ctx *Context, req types.Request) types.Result {
	user, _ := ctx.Env.Get("USER")
	shellPath, _ := ctx.Env.Get("SHELL")
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	dirs, files, bytes := ctx.FS.Stats()

	header := fmt.Sprintf("%s@%s", user, hostname)
	info := []string{
		ctx.Colors.Highlight(header),
		strings.Repeat("-", len(header)),
		entry(ctx, "OS", fmt.Sprintf("TermOS (%s/%s)", runtime.GOOS, runtime.GOARCH)),
		entry(ctx, "Host", hostname),
		entry(ctx, "Shell", shellPath),
		entry(ctx, "Runtime", runtime.Version()),
		entry(ctx, "Uptime", time.Since(ctx.Started).Round(time.Second).String()),
		entry(ctx, "CPUs", fmt.Sprintf("%d", runtime.NumCPU())),
		entry(ctx, "Memory", fmt.Sprintf("%d MiB / %d MiB", mem.Alloc/1024/1024, mem.Sys/1024/1024)),
		entry(ctx, "VFS", fmt.Sprintf("%d dirs, %d files, %d bytes", dirs, files, bytes)),
	}

	rows := len(neofetchLogo)
	if len(info) > rows {
		rows = len(info)
	}
	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		logo := ""
		if i < len(neofetchLogo) {
			logo = neofetchLogo[i]
		}
		text := ""
		if i < len(info) {
			text = info[i]
		}
		lines = append(lines, fmt.Sprintf("%s   %s", ctx.Colors.Info(fmt.Sprintf("%-40s", logo)), text))
	}
	return types.Ok(strings.Join(lines, "\n"))
}

func entry(ctx *Context, key, value string) string {
	return fmt.Sprintf("%s: %s", ctx.Colors.Success(key), value)
}
