package directory_test

import (
	"os"
	"testing"

	"peopled/internal/directory"
)

func TestNew_SeedRosterWhenNoDataset(t *testing.T) {
	s, err := directory.New(directory.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	roster := s.Snapshot()
	if len(roster) != 8 {
		t.Fatalf("seed roster = %d people, want 8", len(roster))
	}
	if roster[0].FullName != "Ayush Sharma" || roster[7].FullName != "Michael Chen" {
		t.Errorf("seed roster order wrong: first=%q last=%q", roster[0].FullName, roster[7].FullName)
	}
}

func TestNew_MissingDatasetServesEmptyRoster(t *testing.T) {
	s, err := directory.New(directory.Config{DatasetPath: "/nonexistent/employees.csv"})
	if err != nil {
		t.Fatalf("New: %v (a missing source is not a startup failure)", err)
	}
	if got := s.Snapshot(); len(got) != 0 {
		t.Errorf("snapshot = %d people, want 0", len(got))
	}
}

func TestReload_SwapsSnapshotWholesale(t *testing.T) {
	path := writeDataset(t,
		"Employee_number,Employee_name,Role,Department\n1,Jane Doe,Developer,Engineering\n")

	s, err := directory.New(directory.Config{DatasetPath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	before := s.Snapshot()
	if len(before) != 1 {
		t.Fatalf("initial snapshot = %d, want 1", len(before))
	}

	if err := os.WriteFile(path, []byte(
		"Employee_number,Employee_name,Role,Department\n"+
			"1,Jane Doe,Developer,Engineering\n"+
			"2,Bob Lee,Manager,Sales\n"), 0o644); err != nil {
		t.Fatalf("rewrite dataset: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	// The old snapshot is untouched; the new one sees both rows.
	if len(before) != 1 {
		t.Errorf("old snapshot mutated: %d people", len(before))
	}
	if after := s.Snapshot(); len(after) != 2 {
		t.Errorf("new snapshot = %d people, want 2", len(after))
	}
}

func TestReload_FailureKeepsCurrentSnapshot(t *testing.T) {
	path := writeDataset(t,
		"Employee_number,Employee_name,Role,Department\n1,Jane Doe,Developer,Engineering\n")

	s, err := directory.New(directory.Config{DatasetPath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err == nil {
		t.Fatal("Reload should fail when the source vanished")
	}
	if got := s.Snapshot(); len(got) != 1 {
		t.Errorf("snapshot after failed reload = %d, want the previous 1", len(got))
	}
}

func TestSeedRoster_FreshSlicePerCall(t *testing.T) {
	a := directory.SeedRoster()
	a[0].FullName = "mutated"
	b := directory.SeedRoster()
	if b[0].FullName != "Ayush Sharma" {
		t.Error("SeedRoster shares backing data between calls")
	}
}
