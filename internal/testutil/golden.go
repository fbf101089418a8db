// Package testutil provides shared test infrastructure for jugglefest.
// It consolidates golden dataset types and assignment invariant checks used
// across the fest, festfile and cmd test packages.
//
// Tests inside package fest itself must not import it (it imports fest).
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one input file with its expected assignment report.
type GoldenTestCase struct {
	Name          string `json:"name"`
	Input         string `json:"input"`    // relative to testdata/
	Expected      string `json:"expected"` // relative to testdata/
	ReportCircuit string `json:"report_circuit"`
	NameSum       int    `json:"name_sum"`  // sum of juggler numbers in ReportCircuit
	Overflows     int    `json:"overflows"` // jugglers handed to the fallback pass
}

// TestdataDir returns the absolute path of the repository testdata directory.
// The path is resolved relative to this source file: internal/testutil/ → testdata/.
func TestdataDir(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata")
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(TestdataDir(t), "goldendataset.json"))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// InputPath returns the absolute path of the case's input file.
func (tc GoldenTestCase) InputPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(TestdataDir(t), tc.Input)
}

// ExpectedOutput returns the content of the case's expected report.
func (tc GoldenTestCase) ExpectedOutput(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(TestdataDir(t), tc.Expected))
	if err != nil {
		t.Fatalf("Failed to read expected output for %s: %v", tc.Name, err)
	}
	return string(data)
}
