package workforce

import (
	"context"
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeRepository defines the persistence interface for employees
type EmployeeRepository interface {
	shared.Repository[Employee]

	// FindByRUT finds an employee by its normalized RUT
	FindByRUT(ctx context.Context, rut string) (*Employee, error)

	// ExistsByRUT checks whether an employee with the RUT exists
	ExistsByRUT(ctx context.Context, rut string) (bool, error)
}

// WorkedDateRow is one attendance association joined with the employee
// identity, as returned by window scans for the historical summary.
type WorkedDateRow struct {
	Date       time.Time
	EmployeeID uuid.UUID
	FirstName  string
	LastName   string
}

// AttendanceRepository is the storage capability set behind attendance
// reconciliation: get-or-create by natural key, current-set read, bulk
// insert and filtered delete, all composable into one atomic scope via
// Atomic. Implementations must guarantee that everything executed inside
// the Atomic callback commits or rolls back as a whole, lazily created
// Saturday rows included.
type AttendanceRepository interface {
	// GetOrCreateSaturday resolves the Saturday row for a date, creating
	// it when absent. Idempotent on the date value.
	GetOrCreateSaturday(ctx context.Context, date time.Time) (*Saturday, error)

	// FindLinkedDates returns the set of dates currently linked to the
	// employee through attendance associations.
	FindLinkedDates(ctx context.Context, employeeID uuid.UUID) (DateSet, error)

	// LinkSaturdays bulk-inserts attendance associations for the employee
	LinkSaturdays(ctx context.Context, employeeID uuid.UUID, saturdayIDs []uuid.UUID) error

	// UnlinkDates deletes the employee's associations whose Saturday falls
	// on one of the given dates.
	UnlinkDates(ctx context.Context, employeeID uuid.UUID, dates []time.Time) error

	// FindWorkedInRange returns attendance rows whose date falls in
	// [from, to], ordered by date ascending.
	FindWorkedInRange(ctx context.Context, from, to time.Time) ([]WorkedDateRow, error)

	// Atomic runs fn against a repository bound to a single transaction
	Atomic(ctx context.Context, fn func(repo AttendanceRepository) error) error
}
