package token

// Tokenizer interface defines the method for tokenizing a single expression line.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}

type Validator interface {
	Validate(tokens []Token) error
}
