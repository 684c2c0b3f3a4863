package expr

import (
	"strconv"

	"github.com/DjordjeVuckovic/ordercalc/internal/apperr"
	"github.com/DjordjeVuckovic/ordercalc/internal/token"
)

// Node is a group tree: either a leaf integer or a binary node (Left Op Right).
// Each subtree belongs to exactly one parent.
type Node struct {
	Value int64
	Op    token.Type
	Left  *Node
	Right *Node
}

func Leaf(v int64) *Node {
	return &Node{Value: v}
}

func Binary(op token.Type, left, right *Node) *Node {
	return &Node{Op: op, Left: left, Right: right}
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Eval folds the tree bottom-up.
func (n *Node) Eval() (int64, error) {
	if n.IsLeaf() {
		return n.Value, nil
	}
	l, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}
	return apply(n.Op, l, r)
}

// String renders the tree as text that re-groups into an equal tree.
// Every non-leaf child is parenthesized.
func (n *Node) String() string {
	if n.IsLeaf() {
		return strconv.FormatInt(n.Value, 10)
	}
	return operandString(n.Left) + " " + n.Op.Symbol() + " " + operandString(n.Right)
}

func operandString(n *Node) string {
	if n.IsLeaf() {
		return n.String()
	}
	return "(" + n.String() + ")"
}

// Equal reports whether two trees have the same shape, operators and leaves.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.IsLeaf() || o.IsLeaf() {
		return n.IsLeaf() && o.IsLeaf() && n.Value == o.Value
	}
	return n.Op == o.Op && n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
}

// element is one entry of a flattened run: an operand subtree or an operator.
type element struct {
	node *Node
	op   token.Type
	pos  int
}

func (el element) isOperator() bool {
	return el.node == nil
}

// Grouper builds group trees in which '+' binds tighter than '*'.
type Grouper struct {
	maxDepth int
}

func NewGrouper(opts ...Option) *Grouper {
	o := buildOptions(opts)
	return &Grouper{maxDepth: o.maxDepth}
}

// Group builds a tree with the default nesting ceiling.
func Group(tokens []token.Token) (*Node, error) {
	return NewGrouper().Group(tokens)
}

func (g *Grouper) Group(tokens []token.Token) (*Node, error) {
	return g.group(tokens, 0)
}

func (g *Grouper) group(tokens []token.Token, depth int) (*Node, error) {
	if err := checkDepth(depth, g.maxDepth); err != nil {
		return nil, err
	}

	elems := make([]element, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Type {
		case token.INT:
			elems = append(elems, element{node: Leaf(tok.Value), pos: tok.Pos})
		case token.ADD, token.MUL:
			elems = append(elems, element{op: tok.Type, pos: tok.Pos})
		case token.LPAREN:
			end, err := matchParen(tokens, i)
			if err != nil {
				return nil, err
			}
			if end == i+1 {
				return nil, apperr.NewParse("()", tok.Pos, "empty parentheses")
			}
			sub, err := g.group(tokens[i+1:end], depth+1)
			if err != nil {
				return nil, err
			}
			elems = append(elems, element{node: sub, pos: tok.Pos})
			i = end
		case token.RPAREN:
			return nil, &apperr.UnbalancedParenError{Pos: tok.Pos}
		default:
			return nil, apperr.NewParse(tok.String(), tok.Pos, "invalid token")
		}
	}

	if err := checkAlternation(elems); err != nil {
		return nil, err
	}
	return reduce(elems), nil
}

// checkAlternation requires operand (operator operand)*.
func checkAlternation(elems []element) error {
	if len(elems) == 0 {
		return apperr.NewParse("", -1, "empty expression")
	}
	for i, el := range elems {
		wantOperator := i%2 == 1
		switch {
		case wantOperator && !el.isOperator():
			return apperr.NewParse(el.node.String(), el.pos, "missing operator between operands")
		case !wantOperator && el.isOperator():
			return apperr.NewParse(el.op.Symbol(), el.pos, "operator without a left operand")
		}
	}
	if last := elems[len(elems)-1]; last.isOperator() {
		return apperr.NewParse(last.op.Symbol(), last.pos, "expression ends with an operator")
	}
	return nil
}

// reduce splits at the first '*', or at the first '+' when there is none, so the
// lowest-precedence operator ends up at the top of the tree.
func reduce(elems []element) *Node {
	if len(elems) == 1 {
		return elems[0].node
	}

	split := firstOperator(elems, token.MUL)
	if split < 0 {
		split = firstOperator(elems, token.ADD)
	}

	return Binary(elems[split].op, reduce(elems[:split]), reduce(elems[split+1:]))
}

func firstOperator(elems []element, op token.Type) int {
	for i, el := range elems {
		if el.isOperator() && el.op == op {
			return i
		}
	}
	return -1
}

// AdditionFirstEvaluator groups the tokens into a tree and folds it.
type AdditionFirstEvaluator struct {
	grouper *Grouper
}

func NewAdditionFirst(opts ...Option) *AdditionFirstEvaluator {
	return &AdditionFirstEvaluator{grouper: NewGrouper(opts...)}
}

func (e *AdditionFirstEvaluator) Regime() Regime {
	return AdditionFirst
}

func (e *AdditionFirstEvaluator) Group(tokens []token.Token) (*Node, error) {
	return e.grouper.Group(tokens)
}

func (e *AdditionFirstEvaluator) Evaluate(tokens []token.Token) (int64, error) {
	tree, err := e.grouper.Group(tokens)
	if err != nil {
		return 0, err
	}
	return tree.Eval()
}
