// Package directory holds the in-memory people roster and the store
// that owns its current snapshot.
//
// A Roster is immutable once loaded: reload builds a completely new
// slice and swaps a single pointer, so concurrent readers always see
// either the old or the new snapshot in full.
package directory

import "strings"

// Fixed values used when a source record lacks the corresponding field.
// These are contract: persisted chat transcripts reference the derived
// emails and the placeholder phone, so changing them breaks replay parity.
const (
	EmailDomain      = "@company.com"
	PlaceholderPhone = "+91-9876543210"
	DefaultLocation  = "Office"
)

// Person is a single directory record. Immutable once loaded.
type Person struct {
	ID            int      `json:"id"`
	FullName      string   `json:"full_name"`
	PreferredName string   `json:"preferred_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Role          string   `json:"role"`
	Department    string   `json:"department"`
	Location      string   `json:"location"`
	Tags          []string `json:"tags"`

	// Extended dataset fields. Valid only when HasSalary is set;
	// directory-only sources never populate them.
	Salary    int    `json:"salary,omitempty"`
	Age       int    `json:"age,omitempty"`
	Education string `json:"education,omitempty"`
	HasSalary bool   `json:"-"`
}

// Roster is an ordered snapshot of Person records. Order is source order.
type Roster []Person

// DeriveEmail builds the organizational email for a full name:
// lower-cased, internal spaces replaced by dots, fixed domain appended.
func DeriveEmail(fullName string) string {
	return strings.ReplaceAll(strings.ToLower(fullName), " ", ".") + EmailDomain
}

// PreferredFromFull returns the default preferred name: the first
// whitespace-delimited token of the full name.
func PreferredFromFull(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return fullName
	}
	return fields[0]
}
