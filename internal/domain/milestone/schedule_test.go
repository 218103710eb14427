package milestone

import (
	"fmt"
	"testing"
	"time"

	"catering_backoffice/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

var (
	issue = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	event = time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
)

func testGenerator() Generator {
	n := 0
	return Generator{
		NewID: func() string {
			n++
			return fmt.Sprintf("ms-%d", n)
		},
		Now: func() time.Time { return issue },
	}
}

func sum(ms []entities.PaymentMilestone) int64 {
	var s int64
	for _, m := range ms {
		s += m.Amount
	}
	return s
}

func amounts(ms []entities.PaymentMilestone) []int64 {
	out := make([]int64, len(ms))
	for i, m := range ms {
		out[i] = m.Amount
	}
	return out
}

func TestGenerate_StandardPlan(t *testing.T) {
	ms := testGenerator().Generate("inv-1", 11601, false, Anchors{IssueDate: issue, EventDate: event})

	require.Len(t, ms, 2)
	require.Equal(t, entities.MilestoneKindDeposit, ms[0].Kind)
	require.Equal(t, int64(5800), ms[0].Amount)
	require.Equal(t, issue, ms[0].DueDate)
	require.Equal(t, 1, ms[0].Sequence)

	require.Equal(t, entities.MilestoneKindBalance, ms[1].Kind)
	require.Equal(t, int64(5801), ms[1].Amount)
	require.Equal(t, event.AddDate(0, 0, -7), ms[1].DueDate)
	require.Equal(t, 2, ms[1].Sequence)

	require.Equal(t, int64(11601), sum(ms))
	for _, m := range ms {
		require.Equal(t, "inv-1", m.InvoiceID)
		require.Equal(t, entities.MilestoneStatusPending, m.Status)
	}
}

func TestGenerate_GovernmentPlan(t *testing.T) {
	ms := testGenerator().Generate("inv-1", 10000, true, Anchors{IssueDate: issue, EventDate: event})

	require.Len(t, ms, 1)
	require.Equal(t, entities.MilestoneKindFull, ms[0].Kind)
	require.Equal(t, int64(10000), ms[0].Amount)
	require.Equal(t, int64(10000), ms[0].Percentage)
	require.Equal(t, event.AddDate(0, 0, 30), ms[0].DueDate)
}

func TestGenerate_SumsToTotal(t *testing.T) {
	g := testGenerator()
	for total := int64(1); total < 5000; total += 13 {
		for _, gov := range []bool{false, true} {
			ms := g.Generate("inv", total, gov, Anchors{IssueDate: issue, EventDate: event})
			require.Equal(t, total, sum(ms))
		}
	}
}

func TestDueDate_NeverBeforeIssue(t *testing.T) {
	soon := issue.AddDate(0, 0, 3)
	require.Equal(t, issue, DueDate(entities.DueAnchorEvent, -7, Anchors{IssueDate: issue, EventDate: soon}))
	require.Equal(t, issue.AddDate(0, 0, 30), DueDate(entities.DueAnchorEvent, 30, Anchors{IssueDate: issue}))
}

func TestRegenerate(t *testing.T) {
	anchors := Anchors{IssueDate: issue, EventDate: event}

	t.Run("unchanged inputs are idempotent", func(t *testing.T) {
		g := testGenerator()
		first := g.Generate("inv-1", 20000, false, anchors)

		second, err := g.Regenerate(first, 20000, false, anchors)
		require.NoError(t, err)
		require.Equal(t, amounts(first), amounts(second))
		require.Equal(t, first[0].ID, second[0].ID)
		require.Equal(t, first[1].ID, second[1].ID)
		require.False(t, Changed(first, second))
	})

	t.Run("idempotent with a paid deposit", func(t *testing.T) {
		g := testGenerator()
		ms := g.Generate("inv-1", 20001, false, anchors)
		ms[0].Status = entities.MilestoneStatusPaid

		again, err := g.Regenerate(ms, 20001, false, anchors)
		require.NoError(t, err)
		require.Equal(t, amounts(ms), amounts(again))
	})

	t.Run("total change preserves paid milestones", func(t *testing.T) {
		g := testGenerator()
		ms := g.Generate("inv-1", 20000, false, anchors)
		paidAt := issue.Add(time.Hour)
		ms[0].Status = entities.MilestoneStatusPaid
		ms[0].PaidAt = &paidAt

		out, err := g.Regenerate(ms, 30000, false, anchors)
		require.NoError(t, err)
		require.Len(t, out, 2)

		require.Equal(t, ms[0].ID, out[0].ID)
		require.Equal(t, int64(10000), out[0].Amount)
		require.Equal(t, entities.MilestoneStatusPaid, out[0].Status)
		require.Equal(t, &paidAt, out[0].PaidAt)

		require.Equal(t, ms[1].ID, out[1].ID)
		require.Equal(t, entities.MilestoneKindBalance, out[1].Kind)
		require.Equal(t, int64(20000), out[1].Amount)
		require.Equal(t, int64(30000), sum(out))
	})

	t.Run("switch to government keeps paid deposit", func(t *testing.T) {
		g := testGenerator()
		ms := g.Generate("inv-1", 20000, false, anchors)
		ms[0].Status = entities.MilestoneStatusPaid

		out, err := g.Regenerate(ms, 20000, true, anchors)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, entities.MilestoneKindDeposit, out[0].Kind)
		require.Equal(t, entities.MilestoneStatusPaid, out[0].Status)
		require.Equal(t, entities.MilestoneKindFull, out[1].Kind)
		require.Equal(t, int64(10000), out[1].Amount)
		require.Equal(t, "inv-1", out[1].InvoiceID)
	})

	t.Run("increase after everything is paid adds a supplement", func(t *testing.T) {
		g := testGenerator()
		ms := g.Generate("inv-1", 10000, true, anchors)
		ms[0].Status = entities.MilestoneStatusPaid

		out, err := g.Regenerate(ms, 12500, true, anchors)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, entities.MilestoneKindSupplement, out[1].Kind)
		require.Equal(t, int64(2500), out[1].Amount)
		require.Equal(t, int64(2000), out[1].Percentage)
	})

	t.Run("total equal to paid leaves only paid milestones", func(t *testing.T) {
		g := testGenerator()
		ms := g.Generate("inv-1", 20000, false, anchors)
		ms[0].Status = entities.MilestoneStatusPaid

		out, err := g.Regenerate(ms, 10000, false, anchors)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, ms[0].ID, out[0].ID)
	})

	t.Run("total below paid is refused", func(t *testing.T) {
		g := testGenerator()
		ms := g.Generate("inv-1", 20000, false, anchors)
		ms[0].Status = entities.MilestoneStatusPaid

		_, err := g.Regenerate(ms, 9999, false, anchors)
		require.ErrorIs(t, err, ErrTotalBelowPaid)
	})
}

func TestRefreshStatuses(t *testing.T) {
	ms := testGenerator().Generate("inv-1", 20000, false, Anchors{IssueDate: issue, EventDate: event})
	ms[0].Status = entities.MilestoneStatusPaid

	changed := RefreshStatuses(ms, event)
	require.Len(t, changed, 1)
	require.Equal(t, entities.MilestoneKindBalance, changed[0].Kind)
	require.Equal(t, entities.MilestoneStatusDue, ms[1].Status)
	require.Equal(t, entities.MilestoneStatusPaid, ms[0].Status)

	require.Empty(t, RefreshStatuses(ms, event))
}

func TestAllPaidAndPaidTotal(t *testing.T) {
	ms := testGenerator().Generate("inv-1", 20000, false, Anchors{IssueDate: issue, EventDate: event})
	require.False(t, AllPaid(ms))
	require.False(t, AllPaid(nil))

	ms[0].Status = entities.MilestoneStatusPaid
	require.Equal(t, int64(10000), PaidTotal(ms))

	ms[1].Status = entities.MilestoneStatusPaid
	require.True(t, AllPaid(ms))
}
