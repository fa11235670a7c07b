package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"
)

// Run starts the interactive loop and blocks until the user exits.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            s.prompt(),
		HistoryFile:       s.cfg.HistoryPath(),
		HistorySearchFold: true,
		AutoComplete:      &completer{registry: s.registry, fs: s.fs},
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	s.banner()

	for {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println(s.palette.Warning("interrupt"))
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if lower := strings.ToLower(trimmed); lower == "exit" || lower == "quit" {
			break
		}

		result := s.RunLine(trimmed)
		s.log.Debug("executed",
			zap.String("session", s.id),
			zap.String("line", trimmed),
			zap.Int("exit_code", result.ExitCode),
		)

		if result.Output != "" {
			fmt.Println(result.Output)
		}
		if result.Err != "" {
			fmt.Fprintln(os.Stderr, s.palette.Error("Error: "+result.Err))
		}
	}

	fmt.Println(s.palette.Success("Goodbye!"))
	if err := s.Save(); err != nil {
		s.log.Warn("save on exit failed", zap.Error(err))
	}
	return nil
}

func (s *Shell) banner() {
	fmt.Println(s.palette.Highlight("TermOS v1.0"))
	fmt.Println(s.palette.Info("Persistent filesystem enabled - files and settings are saved automatically."))
	fmt.Printf("Type %s for available commands, %s to quit.\n\n",
		s.palette.Success("help"), s.palette.Success("exit"))
}

func (s *Shell) prompt() string {
	user, _ := s.env.Get("USER")
	path := s.fs.Cwd()
	if home, ok := s.env.Get("HOME"); ok && path == home {
		path = "~"
	}
	return fmt.Sprintf("%s:%s%s ",
		s.palette.Success(user), s.palette.Info(path), s.palette.Highlight("$"))
}
