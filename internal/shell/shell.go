package shell

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/TermOS/internal/commands"
	"github.com/GriffinCanCode/TermOS/internal/config"
	"github.com/GriffinCanCode/TermOS/internal/environ"
	"github.com/GriffinCanCode/TermOS/internal/logging"
	"github.com/GriffinCanCode/TermOS/internal/types"
	"github.com/GriffinCanCode/TermOS/internal/ui"
	"github.com/GriffinCanCode/TermOS/internal/vfs"
)

// Shell wires the filesystem, environment, registry, and executor into
// one session.
type Shell struct {
	cfg      *config.Config
	log      *logging.Logger
	fs       *vfs.FS
	env      *environ.Manager
	registry *commands.Registry
	exec     *Executor
	palette  *ui.Palette
	id       string
}

// New loads persisted state (or seeds a fresh one) and builds a ready
// session.
func New(cfg *config.Config, log *logging.Logger) (*Shell, error) {
	fs, err := vfs.Load(cfg.FilesystemPath())
	if os.IsNotExist(err) {
		fs = vfs.Seed(cfg.Shell.User)
	} else if err != nil {
		return nil, fmt.Errorf("load filesystem: %w", err)
	}

	env, err := environ.Load(cfg.EnvironmentPath(), cfg.Shell.User, cfg.Shell.HistoryLimit)
	if os.IsNotExist(err) {
		env = environ.New(cfg.Shell.User, cfg.Shell.HistoryLimit)
	} else if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	registry := commands.NewRegistry()
	commands.RegisterBuiltins(registry)

	s := &Shell{
		cfg:      cfg,
		log:      log,
		fs:       fs,
		env:      env,
		registry: registry,
		palette:  ui.NewPalette(ui.Detect(cfg.Shell.Color)),
		id:       uuid.NewString(),
	}

	ctx := &commands.Context{
		FS:       fs,
		Env:      env,
		Registry: registry,
		Colors:   s.palette,
		Log:      log,
		Input:    os.Stdin,
		Started:  time.Now(),
		Save:     s.Save,
	}
	s.exec = NewExecutor(ctx, cfg.State.Autosave)

	log.Info("session ready",
		zap.String("session", s.id),
		zap.String("cwd", fs.Cwd()),
		zap.String("state_dir", cfg.State.Dir),
	)
	return s, nil
}

// Save persists filesystem and environment state.
func (s *Shell) Save() error {
	if err := vfs.Save(s.fs, s.cfg.FilesystemPath()); err != nil {
		return err
	}
	return environ.Save(s.env, s.cfg.EnvironmentPath())
}

// RunLine records a command line in history and executes it.
func (s *Shell) RunLine(line string) types.Result {
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		s.env.AddHistory(trimmed)
	}
	return s.exec.Run(line)
}

// FS exposes the session filesystem, for the archive subcommands.
func (s *Shell) FS() *vfs.FS { return s.fs }
