package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"stava/internal/corpus"
	sc "stava/internal/corrector"
)

const (
	exitOK        = 0
	exitCorrected = 1
	exitError     = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil args
		args = []string{}
	}
	code := exitOK
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return exitError
	}
	return code
}

func newRootCmd(code *int) *cobra.Command {
	var useDefault, exitCode, exitCodeOnly bool

	cmd := &cobra.Command{
		Use:   "stava WORD [FILES...]",
		Short: "Correct the spelling of a word",
		Long: `stava learns word frequencies from the given files (or from its bundled
dictionary when no files are given) and prints the most likely spelling of WORD.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			word, files := args[0], args[1:]

			for _, f := range files {
				if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("File not found [%q]", f)
				}
			}
			if err := sc.ValidateWord(word); err != nil {
				return err
			}

			corrector := sc.NewSpellCorrector()
			if err := corpus.Learn(context.Background(), corrector, files, useDefault); err != nil {
				return err
			}

			corrected, wasCorrected := corrector.Correct(word)
			if !exitCodeOnly {
				fmt.Fprintln(cmd.OutOrStdout(), corrected)
			}
			if (exitCode || exitCodeOnly) && wasCorrected {
				*code = exitCorrected
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&useDefault, "default", "d", false, "also learn the bundled dictionary when files are given")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit with status 1 when the word was corrected")
	cmd.Flags().BoolVar(&exitCodeOnly, "exit-code-only", false, "like --exit-code but print nothing")
	return cmd
}
