package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/TermOS/internal/vfs"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <output.tar.gz>",
	Short: "Export the virtual filesystem as a tar.gz archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fs, err := vfs.Load(cfg.FilesystemPath())
		if os.IsNotExist(err) {
			return fmt.Errorf("no snapshot at %s: nothing to archive", cfg.FilesystemPath())
		}
		if err != nil {
			return err
		}

		out, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create %s: %w", args[0], err)
		}
		defer out.Close()

		if err := vfs.ExportArchive(fs, out); err != nil {
			return err
		}
		dirs, files, _ := fs.Stats()
		fmt.Printf("archived %d directories and %d files to %s\n", dirs, files, args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <input.tar.gz>",
	Short: "Replace the virtual filesystem with the contents of an archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		in, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer in.Close()

		fs, err := vfs.ImportArchive(in)
		if err != nil {
			return err
		}
		if err := vfs.Save(fs, cfg.FilesystemPath()); err != nil {
			return err
		}
		dirs, files, _ := fs.Stats()
		fmt.Printf("restored %d directories and %d files into %s\n", dirs, files, cfg.FilesystemPath())
		return nil
	},
}
