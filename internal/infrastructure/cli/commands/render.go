package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/doeshing/ha-assist/internal/domain"
)

func renderCandidates(out io.Writer, candidates []domain.Candidate, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if candidates == nil {
			candidates = []domain.Candidate{}
		}
		return enc.Encode(candidates)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(out, MsgNoCandidates)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tDESCRIPTION\tICON")
	for _, c := range candidates {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Title, orDash(c.Description), orDash(c.Icon))
	}
	return tw.Flush()
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
