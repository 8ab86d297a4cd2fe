// Package filterx implements the multi-criteria listing pipeline.
//
// Two matching modes exist because two callers historically used
// different semantics, and both are part of the observable contract:
//
//   - Directory mode: department/role/location are exact
//     case-insensitive equality; results keep roster order.
//   - Extended mode: department/role are case-insensitive substring
//     containment, numeric bounds apply, and results sort by salary
//     descending (stable).
//
// They are kept as distinct named entry points rather than unified —
// whether the divergence was intentional upstream is unknown, but
// collapsing it would silently change results for one caller.
package filterx

import (
	"sort"
	"strings"

	"peopled/internal/directory"
)

// Criteria is a sparse set of optional predicates. Nil numeric bounds
// are unconstrained; bounds are inclusive.
type Criteria struct {
	Department string
	Role       string
	Location   string
	MinSalary  *int
	MaxSalary  *int
	MinAge     *int
	MaxAge     *int
}

// ListDirectory filters with exact case-insensitive equality on
// department, role, and location, preserving roster order.
// limit <= 0 returns an empty sequence.
func ListDirectory(roster directory.Roster, c Criteria, limit int) []directory.Person {
	out := []directory.Person{}
	if limit <= 0 {
		return out
	}
	for _, p := range roster {
		if c.Department != "" && !strings.EqualFold(p.Department, c.Department) {
			continue
		}
		if c.Role != "" && !strings.EqualFold(p.Role, c.Role) {
			continue
		}
		if c.Location != "" && !strings.EqualFold(p.Location, c.Location) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// ListExtended filters with substring containment on department/role,
// applies the numeric bounds, sorts by salary descending (stable, so
// equal salaries keep their roster order; records without salary data
// sort after those with), and truncates to limit.
// limit <= 0 returns an empty sequence.
func ListExtended(roster directory.Roster, c Criteria, limit int) []directory.Person {
	out := []directory.Person{}
	if limit <= 0 {
		return out
	}

	for _, p := range roster {
		if c.Department != "" && !strings.Contains(strings.ToLower(p.Department), strings.ToLower(c.Department)) {
			continue
		}
		if c.Role != "" && !strings.Contains(strings.ToLower(p.Role), strings.ToLower(c.Role)) {
			continue
		}
		if c.Location != "" && !strings.EqualFold(p.Location, c.Location) {
			continue
		}
		if !withinBounds(p, c) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HasSalary != b.HasSalary {
			return a.HasSalary
		}
		return a.Salary > b.Salary
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// withinBounds reports whether p satisfies the numeric criteria.
// A record with no numeric data fails only bounds that were actually
// requested — absence of a field is not an error, it just cannot
// satisfy a constraint on that field.
func withinBounds(p directory.Person, c Criteria) bool {
	if c.MinSalary != nil && (!p.HasSalary || p.Salary < *c.MinSalary) {
		return false
	}
	if c.MaxSalary != nil && (!p.HasSalary || p.Salary > *c.MaxSalary) {
		return false
	}
	if c.MinAge != nil && (!p.HasSalary || p.Age < *c.MinAge) {
		return false
	}
	if c.MaxAge != nil && (!p.HasSalary || p.Age > *c.MaxAge) {
		return false
	}
	return true
}
