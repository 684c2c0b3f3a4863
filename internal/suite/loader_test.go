package suite

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: test
cases:
  - id: c1
    expression: "2 * 3 + (4 * 5)"
    expect:
      sequential: 26
      b: 46
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "test", s.Name)
		require.Len(t, s.Cases, 1)
		assert.Equal(t, map[expr.Regime]int64{
			expr.Sequential:    26,
			expr.AdditionFirst: 46,
		}, s.Cases[0].Expected())
	})

	cases := []struct {
		name string
		yaml string
		msg  string
	}{
		{"no cases", "name: test\ncases: []\n", "no cases"},
		{"missing id", "cases:\n  - expression: \"1\"\n    expect: {a: 1}\n", "has no id"},
		{"duplicate id", "cases:\n  - id: x\n    expression: \"1\"\n    expect: {a: 1}\n  - id: x\n    expression: \"2\"\n    expect: {a: 2}\n", "duplicate case id"},
		{"missing expression", "cases:\n  - id: x\n    expect: {a: 1}\n", "no expression"},
		{"missing expectations", "cases:\n  - id: x\n    expression: \"1\"\n", "no expectations"},
		{"unknown regime", "cases:\n  - id: x\n    expression: \"1\"\n    expect: {c: 1}\n", "unknown regime"},
		{"regime twice", "cases:\n  - id: x\n    expression: \"1\"\n    expect: {a: 1, sequential: 1}\n", "twice"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)

			var ve *apperr.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("cases: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse suite YAML")
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases:\n  - id: one\n    expression: \"1\"\n    expect: {a: 1}\n"), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Cases, 1)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func shippedSuitePath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "configs", "suite", "operation_order.yaml")
}

func TestShippedSuite_Passes(t *testing.T) {
	s, err := LoadFromFile(shippedSuitePath(t))
	require.NoError(t, err)

	evs, err := expr.NewSet(expr.AllRegimes)
	require.NoError(t, err)

	results := Check(s, evs)
	assert.Len(t, results, 2*len(s.Cases))
	for _, r := range results {
		assert.True(t, r.Passed(), "%s/%s: want %d got %d (%v)", r.CaseID, r.Regime, r.Expected, r.Actual, r.Err)
	}
	assert.Equal(t, Summary{Passed: len(results)}, Summarize(results))
}

func TestCheck_Failures(t *testing.T) {
	yaml := `
cases:
  - id: wrong
    expression: "2 * 3 + (4 * 5)"
    expect: {a: 26, b: 26}
  - id: broken
    expression: "2 * (3"
    expect: {b: 6}
  - id: only-a
    expression: "1 + 1"
    expect: {a: 2}
`
	s, err := Parse([]byte(yaml))
	require.NoError(t, err)

	evs, err := expr.NewSet(expr.AllRegimes)
	require.NoError(t, err)

	results := Check(s, evs)
	require.Len(t, results, 4)

	assert.True(t, results[0].Passed())
	assert.False(t, results[1].Passed())
	assert.Equal(t, int64(46), results[1].Actual)

	assert.Equal(t, "broken", results[2].CaseID)
	var ue *apperr.UnbalancedParenError
	assert.ErrorAs(t, results[2].Err, &ue)

	assert.Equal(t, expr.Sequential, results[3].Regime)
	assert.True(t, results[3].Passed())

	assert.Equal(t, Summary{Passed: 2, Failed: 2}, Summarize(results))
}
