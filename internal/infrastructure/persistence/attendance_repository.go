package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/notaventas/backend/internal/domain/workforce"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttendanceRepository implements workforce.AttendanceRepository using
// GORM. Saturday rows are created lazily on first reference; attendance
// links are only ever inserted or deleted.
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewGormAttendanceRepository creates a new GormAttendanceRepository
func NewGormAttendanceRepository(db *gorm.DB) *GormAttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// GetOrCreateSaturday resolves the Saturday row for a date, inserting it
// when absent. Concurrent creators race on the unique date index; the loser
// re-reads the winner's row.
func (r *GormAttendanceRepository) GetOrCreateSaturday(ctx context.Context, date time.Time) (*workforce.Saturday, error) {
	normalized := workforce.NormalizeDate(date)

	var saturday workforce.Saturday
	err := r.db.WithContext(ctx).Where("date = ?", normalized).First(&saturday).Error
	if err == nil {
		return &saturday, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := workforce.NewSaturday(normalized)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "date"}}, DoNothing: true}).
		Create(created).Error; err != nil {
		return nil, err
	}

	// re-read so a conflicting concurrent insert still yields the stored row
	if err := r.db.WithContext(ctx).Where("date = ?", normalized).First(&saturday).Error; err != nil {
		return nil, err
	}
	return &saturday, nil
}

// FindLinkedDates returns the set of dates currently linked to the employee
func (r *GormAttendanceRepository) FindLinkedDates(ctx context.Context, employeeID uuid.UUID) (workforce.DateSet, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).
		Model(&workforce.WorkedSaturday{}).
		Select("sabados.date").
		Joins("JOIN sabados ON sabados.id = sabados_trabajados.saturday_id").
		Where("sabados_trabajados.employee_id = ?", employeeID).
		Scan(&dates).Error; err != nil {
		return nil, err
	}
	return workforce.NewDateSet(dates...), nil
}

// LinkSaturdays bulk-inserts attendance links for the employee
func (r *GormAttendanceRepository) LinkSaturdays(ctx context.Context, employeeID uuid.UUID, saturdayIDs []uuid.UUID) error {
	if len(saturdayIDs) == 0 {
		return nil
	}

	links := make([]*workforce.WorkedSaturday, len(saturdayIDs))
	for i, saturdayID := range saturdayIDs {
		links[i] = workforce.NewWorkedSaturday(employeeID, saturdayID)
	}
	return r.db.WithContext(ctx).Create(links).Error
}

// UnlinkDates deletes the employee's links whose Saturday falls on one of
// the given dates.
func (r *GormAttendanceRepository) UnlinkDates(ctx context.Context, employeeID uuid.UUID, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	normalized := make([]time.Time, len(dates))
	for i, d := range dates {
		normalized[i] = workforce.NormalizeDate(d)
	}

	return r.db.WithContext(ctx).
		Where("employee_id = ? AND saturday_id IN (?)",
			employeeID,
			r.db.Model(&workforce.Saturday{}).Select("id").Where("date IN ?", normalized),
		).
		Delete(&workforce.WorkedSaturday{}).Error
}

// FindWorkedInRange returns attendance rows with employee identity for all
// dates in [from, to], ordered by date ascending.
func (r *GormAttendanceRepository) FindWorkedInRange(ctx context.Context, from, to time.Time) ([]workforce.WorkedDateRow, error) {
	var rows []workforce.WorkedDateRow
	if err := r.db.WithContext(ctx).
		Model(&workforce.WorkedSaturday{}).
		Select("sabados.date AS date, personal.id AS employee_id, personal.first_name AS first_name, personal.last_name AS last_name").
		Joins("JOIN sabados ON sabados.id = sabados_trabajados.saturday_id").
		Joins("JOIN personal ON personal.id = sabados_trabajados.employee_id").
		Where("sabados.date BETWEEN ? AND ?", workforce.NormalizeDate(from), workforce.NormalizeDate(to)).
		Order("sabados.date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Atomic runs fn against a repository bound to a single transaction. All
// Saturday creations, links and unlinks inside fn commit or roll back as
// a whole.
func (r *GormAttendanceRepository) Atomic(ctx context.Context, fn func(repo workforce.AttendanceRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormAttendanceRepository{db: tx})
	})
}

var _ workforce.AttendanceRepository = (*GormAttendanceRepository)(nil)
