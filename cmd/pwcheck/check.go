package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/controller"
	"github.com/muurk/pwcheck/internal/report"
	"github.com/muurk/pwcheck/internal/version"
)

var errEmptyPassword = errors.New("password is empty")

func newCheckCmd(g *globalFlags) *cobra.Command {
	var (
		fromStdin bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Analyze one password and print the result",
		Long: `Analyze a single password without the interactive form.

The password is read from the terminal without echo, or from standard input
when --stdin is given or input is piped. Only the first line is used.

The exit status is 1 when the analysis fails, so the command can be used
in scripts. The result is still written in the requested format.`,
		Example: `  # Prompt for a password
  pwcheck check

  # Read from a pipe and emit JSON
  printf '%s\n' "$PASSWORD" | pwcheck check --stdin --format json

  # Markdown summary for sharing
  pwcheck check --format markdown > strength.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			password, err := readPassword(cmd, fromStdin)
			if err != nil {
				return err
			}

			client, err := g.newClient()
			if err != nil {
				return err
			}

			outcome := analyzeOnce(cmd, client, password)

			if err := report.Write(cmd.OutOrStdout(), f, outcome,
				report.WithTheme(g.themeOrDefault()),
				report.WithVersion(version.Version),
			); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			if !outcome.OK() {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from standard input")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "Output format ("+strings.Join(report.Formats(), ", ")+")")

	return cmd
}

// analyzeOnce runs one submission through the form controller so the CLI
// and the interactive form share the same request rules.
func analyzeOnce(cmd *cobra.Command, ev controller.Evaluator, password string) analysis.Outcome {
	ctrl := controller.New()
	ctrl.SetPassword(password)
	ctrl.Submit(cmd.Context(), ev)

	if err := ctrl.LastError(); err != nil {
		return analysis.Failed(err)
	}
	return analysis.Succeeded(ctrl.Result())
}

// readPassword prompts on the terminal without echo, or reads the first
// line of stdin when it is not a terminal or --stdin is set.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	fd := int(os.Stdin.Fd())
	if !fromStdin && cmd.InOrStdin() == os.Stdin && term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if len(data) == 0 {
			return "", errEmptyPassword
		}
		return string(data), nil
	}

	return readLine(cmd.InOrStdin())
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return "", errEmptyPassword
	}
	return line, nil
}
