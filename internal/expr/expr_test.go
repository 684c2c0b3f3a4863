package expr

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTokenize(t *testing.T, line string) []token.Token {
	t.Helper()
	tokens, err := Tokenize(line)
	require.NoError(t, err)
	return tokens
}

var homework = []struct {
	line          string
	sequential    int64
	additionFirst int64
}{
	{"1 + 2 * 3 + 4 * 5 + 6", 71, 231},
	{"1 + (2 * 3) + (4 * (5 + 6))", 51, 51},
	{"2 * 3 + (4 * 5)", 26, 46},
	{"5 + (8 * 3 + 9 + 3 * 4 * 3)", 437, 1445},
	{"5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))", 12240, 669060},
	{"((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2", 13632, 23340},
	{"1 + 3 * (1 + 1)", 8, 8},
	{"(1 + 3)", 4, 4},
	{"7", 7, 7},
	{"(5)", 5, 5},
	{"0 * 4 + 1", 1, 0},
	{"3 + 0 * 4", 12, 12},
	{"0", 0, 0},
}

func TestSequential_Evaluate(t *testing.T) {
	ev := NewSequential()
	for _, tc := range homework {
		t.Run(tc.line, func(t *testing.T) {
			got, err := ev.Evaluate(mustTokenize(t, tc.line))
			require.NoError(t, err)
			assert.Equal(t, tc.sequential, got)
		})
	}
}

func TestAdditionFirst_Evaluate(t *testing.T) {
	ev := NewAdditionFirst()
	for _, tc := range homework {
		t.Run(tc.line, func(t *testing.T) {
			got, err := ev.Evaluate(mustTokenize(t, tc.line))
			require.NoError(t, err)
			assert.Equal(t, tc.additionFirst, got)
		})
	}
}

func TestGroup_Shape(t *testing.T) {
	cases := []struct {
		line string
		want *Node
		text string
	}{
		{
			line: "1 + 2 * 3 + 4",
			want: Binary(token.MUL,
				Binary(token.ADD, Leaf(1), Leaf(2)),
				Binary(token.ADD, Leaf(3), Leaf(4))),
			text: "(1 + 2) * (3 + 4)",
		},
		{
			line: "2 * 3 + (4 * 5)",
			want: Binary(token.MUL,
				Leaf(2),
				Binary(token.ADD, Leaf(3), Binary(token.MUL, Leaf(4), Leaf(5)))),
			text: "2 * (3 + (4 * 5))",
		},
		{
			line: "1 + 2 + 3",
			want: Binary(token.ADD, Leaf(1), Binary(token.ADD, Leaf(2), Leaf(3))),
			text: "1 + (2 + 3)",
		},
		{
			line: "((9))",
			want: Leaf(9),
			text: "9",
		},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			tree, err := Group(mustTokenize(t, tc.line))
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(tree), "got %s", tree)
			assert.Equal(t, tc.text, tree.String())
		})
	}
}

func TestGroup_RoundTrip(t *testing.T) {
	for _, tc := range homework {
		t.Run(tc.line, func(t *testing.T) {
			tree, err := Group(mustTokenize(t, tc.line))
			require.NoError(t, err)

			again, err := Group(mustTokenize(t, tree.String()))
			require.NoError(t, err)
			assert.True(t, tree.Equal(again), "%s != %s", tree, again)

			v, err := again.Eval()
			require.NoError(t, err)
			assert.Equal(t, tc.additionFirst, v)
		})
	}
}

func TestNode_Equal(t *testing.T) {
	a := Binary(token.ADD, Leaf(1), Leaf(2))
	assert.True(t, a.Equal(Binary(token.ADD, Leaf(1), Leaf(2))))
	assert.False(t, a.Equal(Binary(token.MUL, Leaf(1), Leaf(2))))
	assert.False(t, a.Equal(Leaf(3)))
	assert.False(t, Leaf(0).Equal(nil))
	assert.True(t, (*Node)(nil).Equal(nil))
}

func TestRegimes_AgreeOnSingleOperator(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	seq, add := NewSequential(), NewAdditionFirst()

	for _, op := range []string{"+", "*"} {
		for n := 0; n < 50; n++ {
			terms := make([]string, 1+rng.Intn(8))
			for i := range terms {
				terms[i] = fmt.Sprint(rng.Intn(10))
			}
			line := strings.Join(terms, " "+op+" ")

			tokens := mustTokenize(t, line)
			a, err := seq.Evaluate(tokens)
			require.NoError(t, err)
			b, err := add.Evaluate(tokens)
			require.NoError(t, err)
			assert.Equal(t, a, b, line)
		}
	}
}

func nested(depth int) string {
	return strings.Repeat("(", depth) + "1 + 2" + strings.Repeat(")", depth) + " * 2"
}

func TestDeepNesting(t *testing.T) {
	line := nested(12)
	tokens := mustTokenize(t, line)

	for _, ev := range []Evaluator{NewSequential(), NewAdditionFirst()} {
		t.Run(ev.Regime().String(), func(t *testing.T) {
			got, err := ev.Evaluate(tokens)
			require.NoError(t, err)
			assert.Equal(t, int64(6), got)
		})
	}
}

func TestDepthLimit(t *testing.T) {
	tokens := mustTokenize(t, nested(12))

	for _, regime := range AllRegimes {
		t.Run(regime.String(), func(t *testing.T) {
			ok, err := New(regime, WithMaxDepth(12))
			require.NoError(t, err)
			_, err = ok.Evaluate(tokens)
			require.NoError(t, err)

			tight, err := New(regime, WithMaxDepth(11))
			require.NoError(t, err)
			_, err = tight.Evaluate(tokens)
			var de *apperr.DepthLimitError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, 11, de.Limit)

			unlimited, err := New(regime, WithMaxDepth(0))
			require.NoError(t, err)
			_, err = unlimited.Evaluate(mustTokenize(t, nested(DefaultMaxDepth+10)))
			assert.NoError(t, err)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tokenizer := token.NewWordTokenizer()

	cases := []struct {
		name  string
		line  string
		check func(t *testing.T, err error)
	}{
		{"trailing operator", "1 +", isParse("ends with an operator")},
		{"leading operator", "* 2", isParse("without a left operand")},
		{"adjacent operands", "1 2", isParse("missing operator")},
		{"adjacent operators", "1 + * 2", isParse("without a left operand")},
		{"empty parens", "1 + ()", isParse("empty parentheses")},
		{"empty expression", "", isParse("empty expression")},
		{"unclosed paren", "(1 + 2", isUnbalanced},
		{"stray close", "1 + 2)", isUnbalanced},
		{"overflow", "9223372036854775807 + 1", isOverflow},
		{"overflow in parens", "2 * (4611686018427387904 * 2)", isOverflow},
	}

	for _, tc := range cases {
		for _, ev := range []Evaluator{NewSequential(), NewAdditionFirst()} {
			t.Run(tc.name+"/"+ev.Regime().String(), func(t *testing.T) {
				tokens, err := tokenizer.Tokenize(tc.line)
				require.NoError(t, err)
				_, err = ev.Evaluate(tokens)
				require.Error(t, err)
				tc.check(t, err)
			})
		}
	}
}

func isParse(reason string) func(t *testing.T, err error) {
	return func(t *testing.T, err error) {
		var pe *apperr.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, pe.Reason, reason)
	}
}

func isUnbalanced(t *testing.T, err error) {
	var ue *apperr.UnbalancedParenError
	assert.ErrorAs(t, err, &ue)
}

func isOverflow(t *testing.T, err error) {
	var oe *apperr.OverflowError
	assert.ErrorAs(t, err, &oe)
}

func TestEvaluateLine(t *testing.T) {
	ev, err := New(AdditionFirst)
	require.NoError(t, err)

	v, err := EvaluateLine(ev, "2 * 3 + (4 * 5)")
	require.NoError(t, err)
	assert.Equal(t, int64(46), v)

	_, err = EvaluateLine(ev, "2 * (3")
	var ue *apperr.UnbalancedParenError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 1, ue.Unclosed)

	_, err = EvaluateLine(ev, "2 * three")
	var pe *apperr.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseRegime(t *testing.T) {
	for in, want := range map[string]Regime{
		"a":              Sequential,
		"A":              Sequential,
		"sequential":     Sequential,
		"b":              AdditionFirst,
		" add-first ":    AdditionFirst,
		"Addition-First": AdditionFirst,
	} {
		got, err := ParseRegime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRegime("c")
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)

	all, err := ParseRegimes("both")
	require.NoError(t, err)
	assert.Equal(t, AllRegimes, all)

	one, err := ParseRegimes("b")
	require.NoError(t, err)
	assert.Equal(t, []Regime{AdditionFirst}, one)

	_, err = New(Regime("nope"))
	assert.Error(t, err)
}
