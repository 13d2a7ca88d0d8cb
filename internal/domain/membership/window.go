package membership

import "time"

// renewalPeriodYears is the fixed membership length. Only annual memberships
// are sold, so this is not configurable.
const renewalPeriodYears = 1

// DefaultGraceDays is the number of extra days past the renewal anniversary
// before a membership is considered lapsed.
const DefaultGraceDays = 2

// windowLabelLayout matches the dd.mm.yyyy timestamp format used in the
// notification channel.
const windowLabelLayout = "02.01.2006 15:04:05"

// RenewalWindow is the single calendar day whose orders are considered for
// deactivation this run. Immutable once computed; a fresh window is derived
// for every run.
type RenewalWindow struct {
	Start time.Time
	End   time.Time
}

// ComputeRenewalWindow derives the eligibility window from the current time:
// one renewal period plus graceDays before now, truncated to local midnight.
// The window covers that full day, ending at 23:59:59.999.
func ComputeRenewalWindow(now time.Time, graceDays int) RenewalWindow {
	target := now.AddDate(-renewalPeriodYears, 0, -graceDays)
	start := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, target.Location())
	return RenewalWindow{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Millisecond),
	}
}

// Label renders the window as a human-readable start-to-end timestamp range
// for the run report.
func (w RenewalWindow) Label() string {
	return w.Start.Format(windowLabelLayout) + " – " + w.End.Format(windowLabelLayout)
}
