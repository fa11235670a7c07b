package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <command line>",
	Short: "Run a single command line non-interactively",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, _, err := newSession()
		if err != nil {
			return err
		}

		result := sh.RunLine(strings.Join(args, " "))
		if result.Output != "" {
			fmt.Println(result.Output)
		}
		if err := sh.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save state: %s\n", err)
		}
		if !result.Success() {
			return errors.New(result.Err)
		}
		return nil
	},
}
