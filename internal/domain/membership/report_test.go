package membership

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testWindow() RenewalWindow {
	return ComputeRenewalWindow(time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC), DefaultGraceDays)
}

func TestBuildRunReport_PartitionsByOutcome(t *testing.T) {
	outcomes := []Outcome{
		{Candidate: Candidate{Name: "Alice", Email: "a@x.com"}},
		{Candidate: Candidate{Name: "Bob", Email: "b@x.com"}, Err: errors.New("timeout")},
	}

	report := BuildRunReport(testWindow(), outcomes)

	assert.Equal(t, []string{"a@x.com"}, report.Succeeded)
	assert.Equal(t, []string{"b@x.com: timeout"}, report.Failed)
	assert.Equal(t, "01.01.2023 00:00:00 – 01.01.2023 23:59:59", report.WindowLabel)
}

func TestBuildRunReport_PreservesOrderWithinPartitions(t *testing.T) {
	outcomes := []Outcome{
		{Candidate: Candidate{Email: "1@x.com"}},
		{Candidate: Candidate{Email: "2@x.com"}, Err: errors.New("boom")},
		{Candidate: Candidate{Email: "3@x.com"}},
		{Candidate: Candidate{Email: "4@x.com"}, Err: errors.New("bust")},
		{Candidate: Candidate{Email: "5@x.com"}},
	}

	report := BuildRunReport(testWindow(), outcomes)

	assert.Equal(t, []string{"1@x.com", "3@x.com", "5@x.com"}, report.Succeeded)
	assert.Equal(t, []string{"2@x.com: boom", "4@x.com: bust"}, report.Failed)
}

func TestBuildRunReport_AllCallsFailed(t *testing.T) {
	outcomes := []Outcome{
		{Candidate: Candidate{Email: "a@x.com"}, Err: errors.New("refused")},
		{Candidate: Candidate{Email: "b@x.com"}, Err: errors.New("refused")},
	}

	report := BuildRunReport(testWindow(), outcomes)

	assert.Empty(t, report.Succeeded)
	assert.Len(t, report.Failed, len(outcomes))
}

func TestRunReport_MessageWithSuccessesAndFailures(t *testing.T) {
	report := BuildRunReport(testWindow(), []Outcome{
		{Candidate: Candidate{Name: "Alice", Email: "a@x.com"}},
		{Candidate: Candidate{Name: "Bob", Email: "b@x.com"}, Err: errors.New("timeout")},
	})

	msg := report.Message()

	assert.Contains(t, msg, "Membership deactivation run for 01.01.2023 00:00:00 – 01.01.2023 23:59:59")
	assert.Contains(t, msg, "Deactivated (1):\n- a@x.com")
	assert.Contains(t, msg, "Failed (1):\n- b@x.com: timeout")
	assert.NotContains(t, msg, "No memberships to deactivate")
}

func TestRunReport_MessageWithZeroCandidates(t *testing.T) {
	report := BuildRunReport(testWindow(), nil)

	msg := report.Message()

	assert.Contains(t, msg, "No memberships to deactivate.")
	assert.NotContains(t, msg, "Deactivated")
	assert.NotContains(t, msg, "Failed")
}

func TestRunReport_MessageOmitsFailureSectionWhenNoneFailed(t *testing.T) {
	report := BuildRunReport(testWindow(), []Outcome{
		{Candidate: Candidate{Email: "a@x.com"}},
	})

	msg := report.Message()

	assert.Contains(t, msg, "- a@x.com")
	assert.NotContains(t, msg, "Failed")
}

func TestRunReport_MessageAllFailedStillExplainsEmptySuccessList(t *testing.T) {
	report := BuildRunReport(testWindow(), []Outcome{
		{Candidate: Candidate{Email: "a@x.com"}, Err: errors.New("refused")},
	})

	msg := report.Message()

	assert.Contains(t, msg, "No memberships to deactivate.")
	assert.Contains(t, msg, "Failed (1):\n- a@x.com: refused")
}
