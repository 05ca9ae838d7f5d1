// Package soql builds row level SoQL query strings
//
// A Builder accumulates clauses through chained calls and renders them with
// String in a fixed clause order:
//
//	$select, $where, $group, $having, $order, $offset, $limit, $q
//
// Downstream caches key on that string, so the order never changes. A Builder
// is not safe for concurrent mutation; share one across goroutines only with
// external locking
package soql

import (
	"slices"
	"strconv"
	"strings"

	perr "soda/internal/platform/errors"
)

// MaximumLimit is the largest page the platform accepts
const MaximumLimit = 1000

// DefaultSelect is rendered when no columns were selected
const DefaultSelect = "*"

// Direction is the sort direction of an $order clause
type Direction int

const (
	// Ascending renders as ASC
	Ascending Direction = iota
	// Descending renders as DESC
	Descending
)

// String returns the literal token used in $order
func (d Direction) String() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

// ParseDirection accepts asc/desc (any case, ascending/descending too)
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, perr.InvalidArgf("direction %q must be asc or desc", s)
	}
}

// Builder holds row query clauses; the zero value is ready to use
type Builder struct {
	sel    []string
	where  string
	group  []string
	having string
	dir    Direction
	order  []string
	limit  int
	offset int
	search string
	err    error
}

// New returns an empty Builder
func New() *Builder { return &Builder{} }

// Select replaces the selected columns
func (b *Builder) Select(cols ...string) *Builder {
	b.sel = slices.Clone(cols)
	return b
}

// Where replaces the row predicate
func (b *Builder) Where(pred string) *Builder {
	b.where = pred
	return b
}

// GroupBy replaces the grouping columns
func (b *Builder) GroupBy(cols ...string) *Builder {
	b.group = slices.Clone(cols)
	return b
}

// Having replaces the group predicate
func (b *Builder) Having(pred string) *Builder {
	b.having = pred
	return b
}

// OrderBy replaces both the direction and the ordering columns
func (b *Builder) OrderBy(dir Direction, cols ...string) *Builder {
	b.dir = dir
	b.order = slices.Clone(cols)
	return b
}

// Limit caps rows per page at MaximumLimit; larger values are clamped down
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		b.fail(perr.InvalidRangef("limit", "limit must not be negative, got %d", n))
		return b
	}
	b.limit = min(n, MaximumLimit)
	return b
}

// Offset sets the number of rows to skip
func (b *Builder) Offset(n int) *Builder {
	if n < 0 {
		b.fail(perr.InvalidRangef("offset", "offset must not be negative, got %d", n))
		return b
	}
	b.offset = n
	return b
}

// Search sets the full text search term ($q)
func (b *Builder) Search(term string) *Builder {
	b.search = term
	return b
}

// first error wins
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first error recorded by a mutator, if any
func (b *Builder) Err() error { return b.err }

// Columns returns a copy of the selected columns
func (b *Builder) Columns() []string { return slices.Clone(b.sel) }

// WhereClause returns the row predicate
func (b *Builder) WhereClause() string { return b.where }

// Groups returns a copy of the grouping columns
func (b *Builder) Groups() []string { return slices.Clone(b.group) }

// HavingClause returns the group predicate
func (b *Builder) HavingClause() string { return b.having }

// Order returns the direction and a copy of the ordering columns
func (b *Builder) Order() (Direction, []string) { return b.dir, slices.Clone(b.order) }

// LimitValue returns the effective (clamped) limit, 0 when unset
func (b *Builder) LimitValue() int { return b.limit }

// OffsetValue returns the offset, 0 when unset
func (b *Builder) OffsetValue() int { return b.offset }

// SearchTerm returns the full text search term
func (b *Builder) SearchTerm() string { return b.search }

// String renders the query string. Unset clauses are omitted; $select is always present
func (b *Builder) String() string {
	var sb strings.Builder

	sb.WriteString("$select=")
	if len(b.sel) == 0 {
		sb.WriteString(DefaultSelect)
	} else {
		sb.WriteString(strings.Join(b.sel, ","))
	}

	if b.where != "" {
		sb.WriteString("&$where=")
		sb.WriteString(b.where)
	}
	if len(b.group) > 0 {
		sb.WriteString("&$group=")
		sb.WriteString(strings.Join(b.group, ","))
	}
	if b.having != "" {
		sb.WriteString("&$having=")
		sb.WriteString(b.having)
	}
	if len(b.order) > 0 {
		sb.WriteString("&$order=")
		sb.WriteString(strings.Join(b.order, ","))
		sb.WriteByte(' ')
		sb.WriteString(b.dir.String())
	}
	if b.offset > 0 {
		sb.WriteString("&$offset=")
		sb.WriteString(strconv.Itoa(b.offset))
	}
	if b.limit > 0 {
		sb.WriteString("&$limit=")
		sb.WriteString(strconv.Itoa(b.limit))
	}
	if b.search != "" {
		sb.WriteString("&$q=")
		sb.WriteString(b.search)
	}
	return sb.String()
}
