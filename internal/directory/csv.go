package directory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrSourceUnavailable reports that the configured dataset file does
// not exist. Callers treat it as "empty directory", not a hard failure.
var ErrSourceUnavailable = errors.New("directory: source unavailable")

// Dataset column headers. The first four are required; the numeric
// columns mark an extended dataset.
const (
	colNumber    = "Employee_number"
	colName      = "Employee_name"
	colRole      = "Role"
	colDept      = "Department"
	colSalary    = "Current_Salary"
	colAge       = "Employee_age"
	colEducation = "Education_level"
)

// LoadCSV reads a roster from the dataset file at path.
//
// A missing file returns ErrSourceUnavailable. A present but empty file
// (or one with only a header) returns an empty roster. Email, phone,
// preferred name, and location are derived with the fixed rules when
// the source carries no such columns — which it never does; the dataset
// format only has identity, role, department, and optional numerics.
func LoadCSV(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSourceUnavailable
		}
		return nil, fmt.Errorf("directory: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return Roster{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("directory: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colNumber, colName, colRole, colDept} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("directory: dataset missing column %q", required)
		}
	}
	_, hasSalary := col[colSalary]
	_, hasAge := col[colAge]
	extended := hasSalary && hasAge

	var roster Roster
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("directory: line %d: %w", line, err)
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[col[colNumber]]))
		if err != nil {
			return nil, fmt.Errorf("directory: line %d: employee number %q: %w", line, record[col[colNumber]], err)
		}
		fullName := strings.TrimSpace(record[col[colName]])

		p := Person{
			ID:            id,
			FullName:      fullName,
			PreferredName: PreferredFromFull(fullName),
			Email:         DeriveEmail(fullName),
			Phone:         PlaceholderPhone,
			Role:          strings.TrimSpace(record[col[colRole]]),
			Department:    strings.TrimSpace(record[col[colDept]]),
			Location:      DefaultLocation,
			Tags:          []string{},
		}

		if extended {
			salary, err := strconv.Atoi(strings.TrimSpace(record[col[colSalary]]))
			if err != nil {
				return nil, fmt.Errorf("directory: line %d: salary %q: %w", line, record[col[colSalary]], err)
			}
			age, err := strconv.Atoi(strings.TrimSpace(record[col[colAge]]))
			if err != nil {
				return nil, fmt.Errorf("directory: line %d: age %q: %w", line, record[col[colAge]], err)
			}
			p.Salary = salary
			p.Age = age
			p.HasSalary = true
			if i, ok := col[colEducation]; ok {
				p.Education = strings.TrimSpace(record[i])
			}
		}

		roster = append(roster, p)
	}

	if roster == nil {
		return Roster{}, nil
	}
	return roster, nil
}
