package internal

import "fmt"

// Position represents a location in the source content
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token represents a lexical token produced by the lexer
type Token struct {
	Type     TokenType // The type of token
	Value    string    // The token's value/content
	Position Position  // Source position
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("Token{%s @ %s}", t.Type, t.Position)
	}
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Type, t.Value, t.Position)
}

// IsEOF returns true if this is an end-of-file token
func (t Token) IsEOF() bool {
	return t.Type == TokenTypeEOF
}

// NewToken creates a new token with the given type, value, and position
func NewToken(tokenType TokenType, value string, pos Position) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	}
}

// NewEOFToken creates an EOF token at the given position
func NewEOFToken(pos Position) Token {
	return NewToken(TokenTypeEOF, StringValueEmpty, pos)
}

// NewTextToken creates a text token with the given content
func NewTextToken(content string, pos Position) Token {
	return NewToken(TokenTypeText, content, pos)
}
