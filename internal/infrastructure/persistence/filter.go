package persistence

import (
	"strings"

	"github.com/notaventas/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder normalizes the sort direction to ASC or DESC,
// defaulting to DESC for anything unrecognized.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// columns. Returns defaultField when the input is empty or not whitelisted.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// applyFilter applies search, column filters, ordering and pagination to a
// query. searchColumns are ILIKE-matched against filter.Search; sortFields
// whitelists order-by columns.
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumns []string, sortFields map[string]bool, defaultOrder string) *gorm.DB {
	query = applySearchAndFilters(query, filter, searchColumns)

	orderBy := ValidateSortField(filter.OrderBy, sortFields, "")
	if orderBy != "" {
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else if defaultOrder != "" {
		query = query.Order(defaultOrder)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	return query
}

// applySearchAndFilters applies search and column filters without pagination,
// for use by Count.
func applySearchAndFilters(query *gorm.DB, filter shared.Filter, searchColumns []string) *gorm.DB {
	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		conditions := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			conditions[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status", "estado":
			query = query.Where("status = ?", value)
		case "category", "categoria":
			query = query.Where("category = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		}
	}

	return query
}
