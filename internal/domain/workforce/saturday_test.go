package workforce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNormalizeDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	local := time.Date(2025, 1, 4, 23, 30, 0, 0, loc)
	normalized := NormalizeDate(local)

	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), normalized)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-04")
	require.NoError(t, err)
	assert.Equal(t, time.January, d.Month())

	_, err = ParseDate("04-01-2025")
	assert.Error(t, err)
	_, err = ParseDate("not a date")
	assert.Error(t, err)
}

func TestDateSet(t *testing.T) {
	set := NewDateSet(date("2025-01-11"), date("2025-01-04"), date("2025-01-04"))

	assert.Len(t, set, 2, "duplicates collapse")
	assert.True(t, set.Contains(date("2025-01-04")))
	assert.False(t, set.Contains(date("2025-01-18")))

	sorted := set.Sorted()
	require.Len(t, sorted, 2)
	assert.True(t, sorted[0].Before(sorted[1]))
}

func TestPlanReconciliation(t *testing.T) {
	t.Run("empty current links everything", func(t *testing.T) {
		plan := PlanReconciliation(NewDateSet(), NewDateSet(date("2025-01-04"), date("2025-01-11")))
		assert.Len(t, plan.ToLink, 2)
		assert.Empty(t, plan.ToUnlink)
	})

	t.Run("empty requested clears everything", func(t *testing.T) {
		plan := PlanReconciliation(NewDateSet(date("2025-01-04")), NewDateSet())
		assert.Empty(t, plan.ToLink)
		assert.Len(t, plan.ToUnlink, 1)
	})

	t.Run("overlap is untouched", func(t *testing.T) {
		current := NewDateSet(date("2025-01-04"), date("2025-01-11"))
		requested := NewDateSet(date("2025-01-11"), date("2025-01-18"))

		plan := PlanReconciliation(current, requested)

		require.Len(t, plan.ToLink, 1)
		assert.Equal(t, date("2025-01-18"), plan.ToLink[0])
		require.Len(t, plan.ToUnlink, 1)
		assert.Equal(t, date("2025-01-04"), plan.ToUnlink[0])
	})

	t.Run("identical sets are a noop", func(t *testing.T) {
		set := NewDateSet(date("2025-01-04"), date("2025-01-11"))
		plan := PlanReconciliation(set, set)
		assert.True(t, plan.IsNoop())
	})

	t.Run("plan output is chronological", func(t *testing.T) {
		plan := PlanReconciliation(NewDateSet(), NewDateSet(date("2025-02-01"), date("2025-01-04"), date("2025-01-18")))
		require.Len(t, plan.ToLink, 3)
		assert.True(t, plan.ToLink[0].Before(plan.ToLink[1]))
		assert.True(t, plan.ToLink[1].Before(plan.ToLink[2]))
	})
}
