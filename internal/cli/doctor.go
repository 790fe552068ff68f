package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hbjs97/ok/internal/config"
	"github.com/hbjs97/ok/internal/doctor"
	"github.com/spf13/cobra"
)

var errDiagnosticsFailed = errors.New("진단 실패")

func (a *App) runDoctor(cmd *cobra.Command) error {
	dir, err := a.startDir()
	if err != nil {
		return err
	}

	effective := a.cfg
	if effective == nil {
		effective = config.Default()
	}
	if a.profileFile != "" && a.profileFile != effective.ProfileFile {
		override := *effective
		override.ProfileFile = a.profileFile
		effective = &override
	}

	results := doctor.RunAll(effective, a.CfgPath, a.cfgErr, dir)
	printDiagResults(cmd.OutOrStdout(), results)
	if doctor.HasFailure(results) {
		return fmt.Errorf("cli.doctor: %w", errDiagnosticsFailed)
	}
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
