// SPDX-License-Identifier: EPL-2.0

// Package golden stores and checks numeric fixtures for the
// end-to-end scenario tests: per-channel sample arrays rounded to 4
// decimals, one value per line, diffable with ordinary text tools.
package golden

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Save writes samples rounded to 4 decimals, one per line.
func Save(path string, samples []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, s := range samples {
		fmt.Fprintf(w, "%.4f\n", s)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Load reads a fixture written by Save.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	var out []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return out, nil
}

// Check compares got against the fixture at path with the given
// relative tolerance. A missing fixture is created from got, so the
// first run of a new scenario seeds its own snapshot.
func Check(t *testing.T, path string, got []float64, relTol float64) {
	t.Helper()

	want, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := Save(path, got); err != nil {
				t.Fatalf("seeding fixture %s: %v", path, err)
			}
			t.Logf("seeded fixture %s with %d samples", path, len(got))
			return
		}
		t.Fatalf("loading fixture %s: %v", path, err)
	}

	if len(want) != len(got) {
		t.Fatalf("fixture %s has %d samples, got %d", path, len(want), len(got))
	}
	for i := range want {
		diff := got[i] - want[i]
		if diff < 0 {
			diff = -diff
		}
		scale := want[i]
		if scale < 0 {
			scale = -scale
		}
		if scale < 1 {
			scale = 1
		}
		if diff/scale > relTol {
			t.Fatalf("fixture %s sample %d: got %v, want %v (rel tol %v)",
				path, i, got[i], want[i], relTol)
		}
	}
}
