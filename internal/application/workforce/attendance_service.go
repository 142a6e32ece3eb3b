package workforce

import (
	"context"
	"sort"
	"time"

	"github.com/notaventas/backend/internal/domain/workforce"
	"github.com/notaventas/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// monthLayout is the bucket key format of the historical summary
const monthLayout = "2006-01"

// AttendanceService reconciles and reports worked Saturdays
type AttendanceService struct {
	employeeRepo   workforce.EmployeeRepository
	attendanceRepo workforce.AttendanceRepository
	reports        config.ReportsConfig
	collator       *collate.Collator
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	employeeRepo workforce.EmployeeRepository,
	attendanceRepo workforce.AttendanceRepository,
	reports config.ReportsConfig,
) *AttendanceService {
	return &AttendanceService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		reports:        reports,
		collator:       collate.New(language.Spanish, collate.IgnoreCase),
	}
}

// AssignSaturdays replaces the employee's worked-Saturday set with exactly
// the requested dates. Dates already linked are kept untouched, missing
// ones are linked (creating Saturday rows lazily) and stored dates absent
// from the request are unlinked. The whole reconciliation runs in one
// transaction, so a failure leaves the stored set unchanged. Submitting
// the same set twice is a no-op the second time.
func (s *AttendanceService) AssignSaturdays(ctx context.Context, employeeID uuid.UUID, req AssignSaturdaysRequest) (*AssignSaturdaysResponse, error) {
	if _, err := s.employeeRepo.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	requested := make(workforce.DateSet, len(req.Dates))
	for _, raw := range req.Dates {
		date, err := workforce.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		requested[date] = struct{}{}
	}

	var plan workforce.ReconciliationPlan

	err := s.attendanceRepo.Atomic(ctx, func(repo workforce.AttendanceRepository) error {
		current, err := repo.FindLinkedDates(ctx, employeeID)
		if err != nil {
			return err
		}

		plan = workforce.PlanReconciliation(current, requested)
		if plan.IsNoop() {
			return nil
		}

		if len(plan.ToLink) > 0 {
			saturdayIDs := make([]uuid.UUID, 0, len(plan.ToLink))
			for _, date := range plan.ToLink {
				saturday, err := repo.GetOrCreateSaturday(ctx, date)
				if err != nil {
					return err
				}
				saturdayIDs = append(saturdayIDs, saturday.ID)
			}
			if err := repo.LinkSaturdays(ctx, employeeID, saturdayIDs); err != nil {
				return err
			}
		}

		if len(plan.ToUnlink) > 0 {
			if err := repo.UnlinkDates(ctx, employeeID, plan.ToUnlink); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AssignSaturdaysResponse{
		EmployeeID: employeeID,
		Created:    len(plan.ToLink),
		Removed:    len(plan.ToUnlink),
		Dates:      formatDates(requested.Sorted(), workforce.DateLayout),
	}, nil
}

// WorkedSaturdays returns the employee's linked dates in chronological order
func (s *AttendanceService) WorkedSaturdays(ctx context.Context, employeeID uuid.UUID) (*WorkedSaturdaysResponse, error) {
	if _, err := s.employeeRepo.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	linked, err := s.attendanceRepo.FindLinkedDates(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &WorkedSaturdaysResponse{
		EmployeeID: employeeID,
		Dates:      formatDates(linked.Sorted(), workforce.DateLayout),
	}, nil
}

// HistoricalSummary aggregates worked Saturdays into (month, employee)
// buckets over a bounded window. Every association inside the window
// appears in exactly one bucket. Buckets come out ordered by month
// descending, then by employee surname and first name using Spanish
// collation.
func (s *AttendanceService) HistoricalSummary(ctx context.Context, filter HistoricalSummaryFilter) ([]MonthlySummaryEntry, error) {
	from, to, err := s.resolveWindow(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.attendanceRepo.FindWorkedInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	type bucketKey struct {
		month      string
		employeeID uuid.UUID
	}

	buckets := make(map[bucketKey]*MonthlySummaryEntry)
	order := make([]bucketKey, 0)

	for _, row := range rows {
		key := bucketKey{
			month:      row.Date.Format(monthLayout),
			employeeID: row.EmployeeID,
		}
		entry, ok := buckets[key]
		if !ok {
			entry = &MonthlySummaryEntry{
				Month:      key.month,
				EmployeeID: row.EmployeeID,
				FirstName:  row.FirstName,
				LastName:   row.LastName,
			}
			buckets[key] = entry
			order = append(order, key)
		}
		entry.Dates = append(entry.Dates, row.Date.Format(workforce.DisplayDateLayout))
		entry.Count++
	}

	entries := make([]MonthlySummaryEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, *buckets[key])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Month != entries[j].Month {
			return entries[i].Month > entries[j].Month
		}
		if c := s.collator.CompareString(entries[i].LastName, entries[j].LastName); c != 0 {
			return c < 0
		}
		return s.collator.CompareString(entries[i].FirstName, entries[j].FirstName) < 0
	})

	return entries, nil
}

// resolveWindow turns the filter into a [from, to] date range. An explicit
// range wins; otherwise the window is the configured number of days ending
// today, clamped to the configured maximum.
func (s *AttendanceService) resolveWindow(filter HistoricalSummaryFilter) (time.Time, time.Time, error) {
	if filter.From != "" && filter.To != "" {
		from, err := workforce.ParseDate(filter.From)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to, err := workforce.ParseDate(filter.To)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if to.Before(from) {
			from, to = to, from
		}
		return from, to, nil
	}

	days := filter.WindowDays
	if days <= 0 {
		days = s.reports.DefaultWindowDays
	}
	if s.reports.MaxWindowDays > 0 && days > s.reports.MaxWindowDays {
		days = s.reports.MaxWindowDays
	}

	to := workforce.NormalizeDate(time.Now())
	from := to.AddDate(0, 0, -days)
	return from, to, nil
}

func formatDates(dates []time.Time, layout string) []string {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(layout)
	}
	return formatted
}
