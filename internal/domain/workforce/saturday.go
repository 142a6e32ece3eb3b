package workforce

import (
	"sort"
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DateLayout is the wire format for worked-Saturday dates
const DateLayout = "2006-01-02"

// DisplayDateLayout is the day-month-year format used in summaries
const DisplayDateLayout = "02-01-2006"

// Saturday represents a single tracked calendar date. Rows are created
// lazily the first time a date is referenced and are only ever inserted or
// deleted, never updated.
type Saturday struct {
	shared.BaseEntity
	Date time.Time `gorm:"type:date;uniqueIndex;not null"`
}

// TableName returns the table name for GORM
func (Saturday) TableName() string {
	return "sabados"
}

// NewSaturday creates a Saturday for the given date, truncated to midnight UTC
func NewSaturday(date time.Time) *Saturday {
	return &Saturday{
		BaseEntity: shared.NewBaseEntity(),
		Date:       NormalizeDate(date),
	}
}

// WorkedSaturday links one employee to one Saturday. The (employee,
// saturday) pair is unique: a person cannot be recorded twice for one date.
type WorkedSaturday struct {
	shared.BaseEntity
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_worked_employee_saturday,priority:1"`
	SaturdayID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_worked_employee_saturday,priority:2"`
}

// TableName returns the table name for GORM
func (WorkedSaturday) TableName() string {
	return "sabados_trabajados"
}

// NewWorkedSaturday creates a new attendance link
func NewWorkedSaturday(employeeID, saturdayID uuid.UUID) *WorkedSaturday {
	return &WorkedSaturday{
		BaseEntity: shared.NewBaseEntity(),
		EmployeeID: employeeID,
		SaturdayID: saturdayID,
	}
}

// NormalizeDate truncates a timestamp to its date at midnight UTC so that
// set membership compares date values, not instants.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-mm-dd date string into a normalized date value
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Invalid date: "+s)
	}
	return NormalizeDate(t), nil
}

// DateSet is a set of normalized date values
type DateSet map[time.Time]struct{}

// NewDateSet builds a DateSet from normalized dates, dropping duplicates
func NewDateSet(dates ...time.Time) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[NormalizeDate(d)] = struct{}{}
	}
	return set
}

// Contains reports set membership for a normalized date
func (s DateSet) Contains(d time.Time) bool {
	_, ok := s[NormalizeDate(d)]
	return ok
}

// Sorted returns the set's dates in chronological order
func (s DateSet) Sorted() []time.Time {
	dates := make([]time.Time, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// ReconciliationPlan is the pure set arithmetic behind attendance
// reconciliation: ToLink is requested − current, ToUnlink is current −
// requested. Applying the plan makes the linked set equal the requested set.
type ReconciliationPlan struct {
	ToLink   []time.Time
	ToUnlink []time.Time
}

// PlanReconciliation computes the insertions and deletions needed to move
// the current linked-date set to exactly the requested set. Both slices of
// the plan come out in chronological order; dates present in both sets are
// untouched, which keeps the operation idempotent.
func PlanReconciliation(current, requested DateSet) ReconciliationPlan {
	plan := ReconciliationPlan{}
	for _, d := range requested.Sorted() {
		if !current.Contains(d) {
			plan.ToLink = append(plan.ToLink, d)
		}
	}
	for _, d := range current.Sorted() {
		if !requested.Contains(d) {
			plan.ToUnlink = append(plan.ToUnlink, d)
		}
	}
	return plan
}

// IsNoop reports whether the plan changes nothing
func (p ReconciliationPlan) IsNoop() bool {
	return len(p.ToLink) == 0 && len(p.ToUnlink) == 0
}
