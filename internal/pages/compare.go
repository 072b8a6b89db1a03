package pages

import (
	"strconv"
	"strings"
)

// SortDir is the direction of a column sort.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

func (d SortDir) sign() int {
	if d == SortDesc {
		return -1
	}
	return 1
}

// FormMode distinguishes the create and edit states of an open form.
type FormMode string

const (
	FormCreate FormMode = "create"
	FormEdit   FormMode = "edit"
)

// compareText orders two values case-insensitively as text.
func compareText(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareNumber(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareBool ranks false before true.
func compareBool(a, b bool) int {
	return boolRank(a) - boolRank(b)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// normalizeQuery prepares a free-text query for matching.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// containsFold reports whether s contains substr ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// formatAmount renders a float the way it displays in the table: no trailing
// zeros, no exponent for ordinary magnitudes.
func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
