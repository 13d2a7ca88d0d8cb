package membership

import (
	"fmt"
	"strings"
)

// Outcome is the terminal result of one deactivation call, paired with its
// candidate. Err is nil on success. Immutable once the call has settled.
type Outcome struct {
	Candidate Candidate
	Err       error
}

// RunReport summarizes a single reconciliation run. Built once from all
// outcomes, never mutated afterwards.
type RunReport struct {
	WindowLabel string
	Succeeded   []string // emails, in dispatch order
	Failed      []string // "email: reason" lines, in dispatch order
}

// BuildRunReport partitions outcomes into succeeded emails and failure lines,
// preserving input order within each partition.
func BuildRunReport(window RenewalWindow, outcomes []Outcome) *RunReport {
	report := &RunReport{
		WindowLabel: window.Label(),
		Succeeded:   make([]string, 0, len(outcomes)),
		Failed:      make([]string, 0),
	}
	for _, o := range outcomes {
		if o.Err != nil {
			report.Failed = append(report.Failed, fmt.Sprintf("%s: %v", o.Candidate.Email, o.Err))
			continue
		}
		report.Succeeded = append(report.Succeeded, o.Candidate.Email)
	}
	return report
}

// Message renders the report as the text published to the notification
// channel. An empty success list is replaced by an explanatory line; the
// failure section is omitted entirely when there are no failures.
func (r *RunReport) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Membership deactivation run for %s\n", r.WindowLabel)
	if len(r.Succeeded) == 0 {
		b.WriteString("No memberships to deactivate.\n")
	} else {
		fmt.Fprintf(&b, "Deactivated (%d):\n", len(r.Succeeded))
		for _, email := range r.Succeeded {
			fmt.Fprintf(&b, "- %s\n", email)
		}
	}
	if len(r.Failed) > 0 {
		fmt.Fprintf(&b, "Failed (%d):\n", len(r.Failed))
		for _, line := range r.Failed {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
