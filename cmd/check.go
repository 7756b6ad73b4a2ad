package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sandramulyana/kotlin/frontend/kterr"
	"github.com/sandramulyana/kotlin/hierarchy"
	"github.com/sandramulyana/kotlin/internal/log"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:          "check file.yaml",
	Short:        "Check override compatibility across a class hierarchy",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	logLevel *int
	showAll  *bool
)

func init() {
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelWarn), "log level")
	showAll = CheckCmd.Flags().BoolP("all", "a", false, "print every checked pair, not only conflicts")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.Level.Set(slog.Level(*logLevel))

	h, err := hierarchy.Load(args[0])
	if err != nil {
		return err
	}
	if h.Errors().HasError() {
		sb := &strings.Builder{}
		for _, ktError := range h.Errors().Errors() {
			sb.WriteString("\n")
			sb.WriteString(kterr.FormatWithCode(ktError))
		}
		return fmt.Errorf("errors found while loading hierarchy:%s", sb.String())
	}

	report := h.Check()
	out := cmd.OutOrStdout()
	if *showAll {
		_, _ = fmt.Fprint(out, report.String())
	}
	conflicts := report.Conflicts()
	if conflicts.HasError() {
		for _, conflict := range conflicts.Errors() {
			_, _ = fmt.Fprintln(out, kterr.FormatWithCode(conflict))
		}
		return fmt.Errorf("%d conflicting overrides found", len(conflicts.Errors()))
	}
	_, _ = fmt.Fprintln(out, "no conflicting overrides")
	return nil
}
