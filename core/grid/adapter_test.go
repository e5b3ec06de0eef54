package grid

import (
	"context"
	"testing"

	"domain-checker/core/probe"
	"domain-checker/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeExtension pins the header convention: dotted and bare headers are equivalent.
func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		".com":   ".com",
		"com":    ".com",
		" .COM ": ".com",
		"..net":  ".net",
		"co.uk":  ".co.uk",
		".co.uk": ".co.uk",
		"":       "",
		"   ":    "",
		".":      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeExtension(in), "input %q", in)
	}
}

// TestComposeName pins how a domain and an extension become a probe name.
func TestComposeName(t *testing.T) {
	assert.Equal(t, "foo.com", ComposeName("foo", ".com"))
	assert.Equal(t, "foo.com", ComposeName("foo", "com"))
	assert.Equal(t, "foo.com", ComposeName(" foo. ", ".com"))
	assert.Equal(t, "Foo.co.uk", ComposeName("Foo", "CO.UK"))
}

// TestParse tests header and domain extraction.
func TestParse(t *testing.T) {
	g := Grid{
		{"Domain", ".com", "", "NET", "  "},
		{"foo", "", "note", "Registered", "x"},
		{"", "Registered", "", "", ""},
		{" bar ", "Not Registered", "", "", ""},
	}

	rows, cols, err := Parse(g)
	require.NoError(t, err)

	assert.Equal(t, []reconcile.Column{{Index: 1, Extension: ".com"}, {Index: 3, Extension: ".net"}}, cols)
	require.Len(t, rows, 3)
	assert.Equal(t, reconcile.Row{Index: 1, Domain: "foo", Cells: map[int]string{1: "", 3: "Registered"}}, rows[0])
	assert.Equal(t, "", rows[1].Domain)
	assert.Equal(t, "bar", rows[2].Domain)
}

// TestParse_Malformed tests the malformed-input cases.
func TestParse_Malformed(t *testing.T) {
	tests := map[string]Grid{
		"empty grid":       {},
		"empty header":     {{}},
		"only domain col":  {{"Domain"}, {"foo"}},
		"blank extensions": {{"Domain", " ", ""}, {"foo", "", ""}},
	}
	for name, g := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(g)
			assert.ErrorIs(t, err, reconcile.ErrMalformedInput)

			_, err = Load(g)
			assert.ErrorIs(t, err, reconcile.ErrMalformedInput)
		})
	}
}

// TestRender_PreservesShape tests that output keeps every row and column of the input.
func TestRender_PreservesShape(t *testing.T) {
	g := Grid{
		{"Domain", ".com", "", "net"},
		{"foo", "", "keep me", "Registered"},
		{"", "", "orphan", ""},
		{"bar", "Taken by us", "", ""},
	}

	m, err := Load(g)
	require.NoError(t, err)

	answers := map[string]probe.Result{
		"foo.com": probe.Available(),
		"bar.net": probe.Registered(),
	}
	checker := probe.CheckerFunc(func(ctx context.Context, name string) probe.Result {
		if res, ok := answers[name]; ok {
			return res
		}
		return probe.Failed(assert.AnError)
	})

	engine := reconcile.NewEngine(checker,
		reconcile.WithDelay(reconcile.NoDelay()),
		reconcile.WithComposer(ComposeName),
	)
	_, err = engine.Reconcile(context.Background(), m)
	require.NoError(t, err)

	out := Render(g, m)
	assert.Equal(t, Grid{
		{"Domain", ".com", "", "net"},
		{"foo", "Not Registered", "keep me", "Registered"},
		{"", "", "orphan", ""},
		{"bar", "Taken by us", "", "Registered"},
	}, out)

	// The input grid is untouched.
	assert.Equal(t, "", g[1][1])

	r1, c1 := g.Dimensions()
	r2, c2 := out.Dimensions()
	assert.Equal(t, r1, r2)
	assert.Equal(t, c1, c2)
}

// TestRender_UnresolvedStaysBlank tests that failed probes are written back as blank cells.
func TestRender_UnresolvedStaysBlank(t *testing.T) {
	g := Grid{{"", "com"}, {"foo", "  "}}
	m, err := Load(g)
	require.NoError(t, err)

	out := Render(g, m)
	assert.Equal(t, "", out[1][1])
}

func TestNormalizeGrid(t *testing.T) {
	g := Normalize([][]string{{"a"}, {"b", "c", "d"}, nil})
	assert.Equal(t, Grid{{"a", "", ""}, {"b", "c", "d"}, {"", "", ""}}, g)
	assert.Equal(t, "c", g.Cell(1, 1))
	assert.Equal(t, "", g.Cell(5, 5))
}
