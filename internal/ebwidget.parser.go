package internal

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Parser produces an AST from a token stream
type Parser struct {
	tokens []Token
	source string // Original source for raw text extraction
	config LexerConfig
	pos    int
	logger *zap.Logger
}

// NewParser creates a new parser for the given token stream and source
func NewParser(tokens []Token, source string, logger *zap.Logger) *Parser {
	return NewParserWithConfig(tokens, source, DefaultLexerConfig(), logger)
}

// NewParserWithConfig creates a parser that knows the delimiters used by the lexer
func NewParserWithConfig(tokens []Token, source string, config LexerConfig, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.OpenDelim == StringValueEmpty || config.CloseDelim == StringValueEmpty {
		config = DefaultLexerConfig()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldTokens, len(tokens)))
	return &Parser{
		tokens: tokens,
		source: source,
		config: config,
		pos:    0,
		logger: logger,
	}
}

// Parse produces the AST root node from the token stream
func (p *Parser) Parse() (*RootNode, error) {
	p.logger.Debug(LogMsgParserStart)

	var nodes []Node
	for !p.isAtEnd() {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = appendNode(nodes, node)
	}

	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldNodes, len(nodes)))
	return &RootNode{Children: nodes}, nil
}

// parseNode parses a single node (text, shortcode, or stray closing tag)
func (p *Parser) parseNode() (Node, error) {
	tok := p.current()

	switch tok.Type {
	case TokenTypeText:
		p.advance()
		return NewTextNode(tok.Value, tok.Position), nil
	case TokenTypeOpenTag:
		return p.parseShortcode()
	case TokenTypeBlockClose:
		return p.parseStrayClose()
	default:
		return nil, p.newUnexpectedTokenError(tok)
	}
}

// parseShortcode parses an opening tag and, when a closer follows, its enclosed content
func (p *Parser) parseShortcode() (Node, error) {
	openTok := p.advance() // consume OPEN_TAG

	nameTok := p.current()
	if nameTok.Type != TokenTypeTagName {
		return nil, p.newExpectedTokenError(TokenTypeTagName, nameTok)
	}
	p.advance()

	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}

	endTok := p.current()
	switch endTok.Type {
	case TokenTypeSelfClose:
		p.advance()
		endOffset := endTok.Position.Offset + len(p.config.selfClose())
		raw := p.extractRawSource(openTok.Position.Offset, endOffset)
		return NewSelfClosingShortcode(nameTok.Value, attrs, raw, openTok.Position), nil

	case TokenTypeCloseTag:
		p.advance()
		contentStart := endTok.Position.Offset + len(p.config.CloseDelim)

		closerIdx := p.findCloser(nameTok.Value)
		if closerIdx == -1 {
			raw := p.extractRawSource(openTok.Position.Offset, contentStart)
			return NewSelfClosingShortcode(nameTok.Value, attrs, raw, openTok.Position), nil
		}

		closeStart := p.tokens[closerIdx].Position.Offset
		closeEnd := p.tokens[closerIdx+2].Position.Offset + len(p.config.CloseDelim)
		content := p.extractRawSource(contentStart, closeStart)
		raw := p.extractRawSource(openTok.Position.Offset, closeEnd)
		p.pos = closerIdx + 3

		p.logger.Debug(LogMsgEnclosingShortcode, zap.String(LogFieldTag, nameTok.Value))
		return NewEnclosingShortcode(nameTok.Value, attrs, content, raw, openTok.Position), nil

	default:
		return nil, p.newUnexpectedTokenError(endTok)
	}
}

// findCloser returns the index of the BLOCK_CLOSE token closing name, or -1
func (p *Parser) findCloser(name string) int {
	for i := p.pos; i+2 < len(p.tokens); i++ {
		if p.tokens[i].Type != TokenTypeBlockClose {
			continue
		}
		if p.tokens[i+1].Type == TokenTypeTagName && p.tokens[i+1].Value == name &&
			p.tokens[i+2].Type == TokenTypeCloseTag {
			return i
		}
	}
	return -1
}

// parseStrayClose turns a closing tag without an opener back into text
func (p *Parser) parseStrayClose() (Node, error) {
	startTok := p.advance() // consume BLOCK_CLOSE

	nameTok := p.current()
	if nameTok.Type != TokenTypeTagName {
		return nil, p.newExpectedTokenError(TokenTypeTagName, nameTok)
	}
	p.advance()

	closeTok := p.current()
	if closeTok.Type != TokenTypeCloseTag {
		return nil, p.newExpectedTokenError(TokenTypeCloseTag, closeTok)
	}
	p.advance()

	p.logger.Debug(LogMsgStrayClosingTag, zap.String(LogFieldTag, nameTok.Value))
	raw := p.extractRawSource(startTok.Position.Offset, closeTok.Position.Offset+len(p.config.CloseDelim))
	return NewTextNode(raw, startTok.Position), nil
}

// parseAttributes parses named and positional attributes.
// Attribute names are lowercased; positional values are keyed by their index.
func (p *Parser) parseAttributes() (Attributes, error) {
	attrs := make(Attributes)
	positional := 0

	for {
		tok := p.current()
		switch tok.Type {
		case TokenTypeAttrName:
			p.advance()
			if eq := p.current(); eq.Type != TokenTypeEquals {
				return nil, p.newExpectedTokenError(TokenTypeEquals, eq)
			}
			p.advance()
			valueTok := p.current()
			if valueTok.Type != TokenTypeAttrValue {
				return nil, p.newExpectedTokenError(TokenTypeAttrValue, valueTok)
			}
			p.advance()
			attrs[strings.ToLower(tok.Value)] = valueTok.Value

		case TokenTypeAttrValue:
			p.advance()
			attrs[strconv.Itoa(positional)] = tok.Value
			positional++

		default:
			return attrs, nil
		}
	}
}

// extractRawSource extracts the original source text between two offsets
func (p *Parser) extractRawSource(startOffset, endOffset int) string {
	if startOffset < 0 || endOffset > len(p.source) || startOffset >= endOffset {
		return StringValueEmpty
	}
	return p.source[startOffset:endOffset]
}

// Helper methods

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return NewEOFToken(Position{})
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) isAtEnd() bool {
	return p.current().IsEOF()
}

// appendNode merges adjacent text nodes produced by stray closing tags
func appendNode(nodes []Node, node Node) []Node {
	text, ok := node.(*TextNode)
	if !ok || len(nodes) == 0 {
		return append(nodes, node)
	}
	if prev, ok := nodes[len(nodes)-1].(*TextNode); ok {
		prev.Content += text.Content
		return nodes
	}
	return append(nodes, node)
}

// Error helpers

func (p *Parser) newUnexpectedTokenError(tok Token) error {
	return &ParserError{
		Message:  fmt.Sprintf(ErrFmtUnexpectedToken, ErrMsgUnexpectedToken, tok.Type),
		Position: tok.Position,
	}
}

func (p *Parser) newExpectedTokenError(expected TokenType, actual Token) error {
	return &ParserError{
		Message:  fmt.Sprintf(ErrFmtExpectedToken, ErrMsgExpectedToken, expected, actual.Type),
		Position: actual.Position,
	}
}

// ParserError represents a parser error with position
type ParserError struct {
	Message  string
	Position Position
}

// Error implements the error interface
func (e *ParserError) Error() string {
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position.String())
}

// Parser error message constants
const (
	ErrMsgUnexpectedToken = "unexpected token"
	ErrMsgExpectedToken   = "expected token"
	ErrFmtUnexpectedToken = "%s: %s"
	ErrFmtExpectedToken   = "%s %s, got %s"
)
