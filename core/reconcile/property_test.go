package reconcile

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"domain-checker/core/probe"

	"pgregory.net/rapid"
)

var statusGen = rapid.SampledFrom([]string{"", "", "", "Registered", "Not Registered", "Reserved", "  "})

// drawTable draws a random table and a deterministic probe answer per name.
func drawTable(t *rapid.T) ([]Row, []Column, map[string]probe.Result) {
	nCols := rapid.IntRange(1, 4).Draw(t, "cols")
	nRows := rapid.IntRange(0, 8).Draw(t, "rows")

	cols := make([]Column, nCols)
	for i := range cols {
		cols[i] = Column{Index: i + 1, Extension: rapid.SampledFrom([]string{".com", ".net", ".io", ".com"}).Draw(t, "ext")}
	}

	answers := make(map[string]probe.Result)
	rows := make([]Row, nRows)
	for r := range rows {
		domain := rapid.SampledFrom([]string{"foo", "bar", "", "baz", "qux"}).Draw(t, "domain")
		cells := make(map[int]string)
		for _, c := range cols {
			cells[c.Index] = statusGen.Draw(t, "cell")
			name := domain + c.Extension
			if _, ok := answers[name]; !ok {
				switch rapid.IntRange(0, 2).Draw(t, "answer") {
				case 0:
					answers[name] = probe.Available()
				case 1:
					answers[name] = probe.Registered()
				default:
					answers[name] = probe.Failed(errors.New("probe failed"))
				}
			}
		}
		rows[r] = Row{Index: r + 1, Domain: domain, Cells: cells}
	}
	return rows, cols, answers
}

// TestProperty_NoDataLoss tests that recorded statuses are never modified.
func TestProperty_NoDataLoss(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows, cols, answers := drawTable(t)
		m, err := Build(rows, cols)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		before := m.Snapshot()

		if _, err := newTestEngine(newStub(answers)).Reconcile(context.Background(), m); err != nil {
			t.Fatalf("reconcile: %v", err)
		}

		after := m.Snapshot()
		for i := range before {
			for j, s := range before[i].Statuses {
				if !s.IsEmpty() && after[i].Statuses[j] != s {
					t.Fatalf("row %d col %d changed from %q to %q", before[i].Index, j, s, after[i].Statuses[j])
				}
			}
		}
	})
}

// TestProperty_Idempotent tests that a second run with the same probe changes nothing
// except cells whose probe failed, which it retries.
func TestProperty_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows, cols, answers := drawTable(t)
		m, err := Build(rows, cols)
		if err != nil {
			t.Fatalf("build: %v", err)
		}

		engine := newTestEngine(newStub(answers))
		first, err := engine.Reconcile(context.Background(), m)
		if err != nil {
			t.Fatalf("first run: %v", err)
		}
		snap := m.Snapshot()

		second, err := engine.Reconcile(context.Background(), m)
		if err != nil {
			t.Fatalf("second run: %v", err)
		}

		if second.Checked != first.Errors {
			t.Fatalf("second run probed %d cells, want %d", second.Checked, first.Errors)
		}
		if second.Resolved() != 0 {
			t.Fatalf("second run resolved %d cells", second.Resolved())
		}
		if fmt.Sprint(snap) != fmt.Sprint(m.Snapshot()) {
			t.Fatalf("snapshot changed on second run")
		}
	})
}

// TestProperty_DeterministicObservations tests that identical input yields identical event order.
func TestProperty_DeterministicObservations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows, cols, answers := drawTable(t)

		run := func() []string {
			m, err := Build(rows, cols)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			var names []string
			obs := ObserverFunc(func(o Observation) {
				names = append(names, fmt.Sprintf("%d/%d/%s/%s", o.Row, o.Column, o.Name, o.Outcome))
			})
			if _, err := newTestEngine(newStub(answers), WithObserver(obs)).Reconcile(context.Background(), m); err != nil {
				t.Fatalf("reconcile: %v", err)
			}
			return names
		}

		if a, b := run(), run(); !slices.Equal(a, b) {
			t.Fatalf("observation order differs:\n%v\n%v", a, b)
		}
	})
}
