package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/TermOS/internal/vfs"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the on-disk snapshot and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.FilesystemPath()
		fs, err := vfs.Load(path)
		if os.IsNotExist(err) {
			fmt.Printf("%s: no snapshot yet; a fresh filesystem will be seeded on first run\n", path)
			return nil
		}
		if err != nil {
			return fmt.Errorf("snapshot %s is not loadable: %w", path, err)
		}

		dirs, files, bytes := fs.Stats()
		fmt.Printf("%s: ok\n", path)
		fmt.Printf("  cwd:         %s\n", fs.Cwd())
		fmt.Printf("  directories: %d\n", dirs)
		fmt.Printf("  files:       %d\n", files)
		fmt.Printf("  file bytes:  %d\n", bytes)
		return nil
	},
}
