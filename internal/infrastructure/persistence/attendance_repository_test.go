package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notaventas/backend/internal/domain/workforce"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newAttendanceTestDB opens an in-memory SQLite database with the workforce
// schema for exercising the attendance repository end to end.
func newAttendanceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&workforce.Employee{},
		&workforce.Saturday{},
		&workforce.WorkedSaturday{},
	))
	return db
}

func newTestEmployee(t *testing.T, db *gorm.DB, firstName, lastName string) *workforce.Employee {
	employee, err := workforce.NewEmployee(firstName, lastName, "", uuid.Nil)
	require.NoError(t, err)
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func mustDate(t *testing.T, s string) time.Time {
	d, err := workforce.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestGormAttendanceRepository_GetOrCreateSaturday(t *testing.T) {
	db := newAttendanceTestDB(t)
	repo := NewGormAttendanceRepository(db)
	ctx := context.Background()

	date := mustDate(t, "2024-06-01")

	first, err := repo.GetOrCreateSaturday(ctx, date)
	require.NoError(t, err)

	// same date resolves to the same row
	second, err := repo.GetOrCreateSaturday(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&workforce.Saturday{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormAttendanceRepository_LinkAndUnlink(t *testing.T) {
	db := newAttendanceTestDB(t)
	repo := NewGormAttendanceRepository(db)
	ctx := context.Background()

	employee := newTestEmployee(t, db, "Pedro", "Soto")

	d1 := mustDate(t, "2024-06-01")
	d2 := mustDate(t, "2024-06-08")

	s1, err := repo.GetOrCreateSaturday(ctx, d1)
	require.NoError(t, err)
	s2, err := repo.GetOrCreateSaturday(ctx, d2)
	require.NoError(t, err)

	require.NoError(t, repo.LinkSaturdays(ctx, employee.ID, []uuid.UUID{s1.ID, s2.ID}))

	linked, err := repo.FindLinkedDates(ctx, employee.ID)
	require.NoError(t, err)
	assert.Len(t, linked, 2)
	assert.True(t, linked.Contains(d1))
	assert.True(t, linked.Contains(d2))

	require.NoError(t, repo.UnlinkDates(ctx, employee.ID, []time.Time{d1}))

	linked, err = repo.FindLinkedDates(ctx, employee.ID)
	require.NoError(t, err)
	assert.Len(t, linked, 1)
	assert.False(t, linked.Contains(d1))
	assert.True(t, linked.Contains(d2))
}

func TestGormAttendanceRepository_ReconcileFlow(t *testing.T) {
	db := newAttendanceTestDB(t)
	repo := NewGormAttendanceRepository(db)
	ctx := context.Background()

	employee := newTestEmployee(t, db, "Ana", "Rojas")

	applyDates := func(requested workforce.DateSet) int {
		createdCount := 0
		err := repo.Atomic(ctx, func(tx workforce.AttendanceRepository) error {
			current, err := tx.FindLinkedDates(ctx, employee.ID)
			if err != nil {
				return err
			}
			plan := workforce.PlanReconciliation(current, requested)

			ids := make([]uuid.UUID, 0, len(plan.ToLink))
			for _, d := range plan.ToLink {
				saturday, err := tx.GetOrCreateSaturday(ctx, d)
				if err != nil {
					return err
				}
				ids = append(ids, saturday.ID)
			}
			if err := tx.LinkSaturdays(ctx, employee.ID, ids); err != nil {
				return err
			}
			createdCount = len(ids)
			return tx.UnlinkDates(ctx, employee.ID, plan.ToUnlink)
		})
		require.NoError(t, err)
		return createdCount
	}

	d1 := mustDate(t, "2024-06-01")
	d2 := mustDate(t, "2024-06-08")

	// first assignment links both dates
	created := applyDates(workforce.NewDateSet(d1, d2))
	assert.Equal(t, 2, created)

	// shrinking to one date removes the other and creates nothing
	created = applyDates(workforce.NewDateSet(d2))
	assert.Equal(t, 0, created)

	linked, err := repo.FindLinkedDates(ctx, employee.ID)
	require.NoError(t, err)
	assert.Len(t, linked, 1)
	assert.True(t, linked.Contains(d2))

	// repeating the same request is a no-op
	created = applyDates(workforce.NewDateSet(d2))
	assert.Equal(t, 0, created)

	linked, err = repo.FindLinkedDates(ctx, employee.ID)
	require.NoError(t, err)
	assert.Len(t, linked, 1)
}

func TestGormAttendanceRepository_FindWorkedInRange(t *testing.T) {
	db := newAttendanceTestDB(t)
	repo := NewGormAttendanceRepository(db)
	ctx := context.Background()

	ana := newTestEmployee(t, db, "Ana", "Rojas")
	pedro := newTestEmployee(t, db, "Pedro", "Soto")

	inside := mustDate(t, "2024-06-08")
	outside := mustDate(t, "2023-01-07")

	sIn, err := repo.GetOrCreateSaturday(ctx, inside)
	require.NoError(t, err)
	sOut, err := repo.GetOrCreateSaturday(ctx, outside)
	require.NoError(t, err)

	require.NoError(t, repo.LinkSaturdays(ctx, ana.ID, []uuid.UUID{sIn.ID, sOut.ID}))
	require.NoError(t, repo.LinkSaturdays(ctx, pedro.ID, []uuid.UUID{sIn.ID}))

	rows, err := repo.FindWorkedInRange(ctx, mustDate(t, "2024-01-01"), mustDate(t, "2024-12-31"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, inside, workforce.NormalizeDate(row.Date))
	}
}

func TestGormAttendanceRepository_AtomicRollsBackLazySaturdays(t *testing.T) {
	db := newAttendanceTestDB(t)
	repo := NewGormAttendanceRepository(db)
	ctx := context.Background()

	employee := newTestEmployee(t, db, "Pedro", "Soto")
	boom := errors.New("boom")

	// Fail after the Saturday rows and links were written inside the
	// transaction; nothing may survive the rollback, including the lazily
	// created Saturday rows.
	err := repo.Atomic(ctx, func(tx workforce.AttendanceRepository) error {
		s1, err := tx.GetOrCreateSaturday(ctx, mustDate(t, "2024-06-01"))
		require.NoError(t, err)
		s2, err := tx.GetOrCreateSaturday(ctx, mustDate(t, "2024-06-08"))
		require.NoError(t, err)
		require.NoError(t, tx.LinkSaturdays(ctx, employee.ID, []uuid.UUID{s1.ID, s2.ID}))

		linked, err := tx.FindLinkedDates(ctx, employee.ID)
		require.NoError(t, err)
		require.Len(t, linked, 2)

		return boom
	})
	require.ErrorIs(t, err, boom)

	var saturdays int64
	require.NoError(t, db.Model(&workforce.Saturday{}).Count(&saturdays).Error)
	assert.Zero(t, saturdays)

	var links int64
	require.NoError(t, db.Model(&workforce.WorkedSaturday{}).Count(&links).Error)
	assert.Zero(t, links)

	linked, err := repo.FindLinkedDates(ctx, employee.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)
}
