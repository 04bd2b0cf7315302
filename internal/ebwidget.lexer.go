package internal

import (
	"strings"

	"go.uber.org/zap"
)

// LexerConfig holds lexer configuration
type LexerConfig struct {
	OpenDelim  string // Opening delimiter (default: "[")
	CloseDelim string // Closing delimiter (default: "]")
}

// DefaultLexerConfig returns the default lexer configuration
func DefaultLexerConfig() LexerConfig {
	return LexerConfig{
		OpenDelim:  StrOpenDelim,
		CloseDelim: StrCloseDelim,
	}
}

// selfClose returns the self-close pattern for this config (e.g., "/]" for "]")
func (c LexerConfig) selfClose() string {
	return string(CharSlash) + c.CloseDelim
}

// blockClose returns the block-close pattern for this config (e.g., "[/" for "[")
func (c LexerConfig) blockClose() string {
	return c.OpenDelim + string(CharSlash)
}

// escapeOpen returns the doubled open delimiter that escapes a shortcode (e.g., "[[")
func (c LexerConfig) escapeOpen() string {
	return c.OpenDelim + c.OpenDelim
}

// escapeClose returns the doubled close delimiter ending an escaped shortcode (e.g., "]]")
func (c LexerConfig) escapeClose() string {
	return c.CloseDelim + c.CloseDelim
}

// lexState is a snapshot of the scanner used to rewind after a malformed tag
type lexState struct {
	pos    int
	line   int
	column int
}

// Lexer tokenizes content into a token stream.
// Malformed shortcodes never fail tokenization: the scanner rewinds and keeps
// the opening delimiter as literal text.
type Lexer struct {
	source string
	config LexerConfig
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewLexer creates a new lexer with default configuration
func NewLexer(source string, logger *zap.Logger) *Lexer {
	return NewLexerWithConfig(source, DefaultLexerConfig(), logger)
}

// NewLexerWithConfig creates a lexer with custom configuration
func NewLexerWithConfig(source string, config LexerConfig, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.OpenDelim == StringValueEmpty || config.CloseDelim == StringValueEmpty {
		config = DefaultLexerConfig()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		config: config,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the source and returns a token stream
func (l *Lexer) Tokenize() ([]Token, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token

	for !l.isAtEnd() {
		// Escaped shortcode: [[tag]] is emitted as the literal [tag]
		if l.matchStr(l.config.escapeOpen()) {
			if text, pos, ok := l.scanEscaped(); ok {
				tokens = appendText(tokens, NewTextToken(text, pos))
				continue
			}
		}

		if l.matchStr(l.config.blockClose()) {
			saved := l.save()
			tagTokens, ok := l.scanClosingTag()
			if ok {
				tokens = append(tokens, tagTokens...)
				continue
			}
			l.restore(saved)
			tokens = l.keepDelimAsText(tokens)
			continue
		}

		if l.matchStr(l.config.OpenDelim) {
			saved := l.save()
			tagTokens, ok := l.scanOpeningTag()
			if ok {
				tokens = append(tokens, tagTokens...)
				continue
			}
			l.restore(saved)
			tokens = l.keepDelimAsText(tokens)
			continue
		}

		textToken := l.scanText()
		if textToken.Value != StringValueEmpty {
			tokens = appendText(tokens, textToken)
		}
	}

	// Add EOF token
	tokens = append(tokens, NewEOFToken(l.currentPosition()))
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens, nil
}

// keepDelimAsText consumes a single open delimiter and records it as text
func (l *Lexer) keepDelimAsText(tokens []Token) []Token {
	pos := l.currentPosition()
	l.logger.Debug(LogMsgMalformedTag,
		zap.Int(LogFieldLine, pos.Line),
		zap.Int(LogFieldColumn, pos.Column))
	l.advanceN(len(l.config.OpenDelim))
	return appendText(tokens, NewTextToken(l.config.OpenDelim, pos))
}

// scanText scans text content until the next open delimiter
func (l *Lexer) scanText() Token {
	startPos := l.currentPosition()
	var sb strings.Builder

	for !l.isAtEnd() {
		if l.matchStr(l.config.OpenDelim) {
			break
		}
		sb.WriteByte(l.advance())
	}

	return NewTextToken(sb.String(), startPos)
}

// scanEscaped handles [[tag ...]] and returns the literal text "[tag ...]".
// Returns ok=false (without consuming input) when the escape is not well formed.
func (l *Lexer) scanEscaped() (string, Position, bool) {
	start := l.pos + len(l.config.escapeOpen())
	if start >= len(l.source) || !isNameStart(l.source[start]) {
		return StringValueEmpty, Position{}, false
	}
	// The closer must come before the next open delimiter
	rest := l.source[start:]
	if next := strings.Index(rest, l.config.OpenDelim); next != -1 {
		rest = rest[:next]
	}
	end := strings.Index(rest, l.config.escapeClose())
	if end == -1 {
		return StringValueEmpty, Position{}, false
	}
	inner := rest[:end]

	pos := l.currentPosition()
	l.advanceN(len(l.config.escapeOpen()) + end + len(l.config.escapeClose()))
	return l.config.OpenDelim + inner + l.config.CloseDelim, pos, true
}

// scanClosingTag scans "[/name]"
func (l *Lexer) scanClosingTag() ([]Token, bool) {
	var tokens []Token

	tokens = append(tokens, NewToken(TokenTypeBlockClose, StringValueEmpty, l.currentPosition()))
	l.advanceN(len(l.config.blockClose()))

	nameToken, ok := l.scanTagName()
	if !ok {
		return nil, false
	}
	tokens = append(tokens, nameToken)

	l.skipWhitespace()
	if !l.matchStr(l.config.CloseDelim) {
		return nil, false
	}
	tokens = append(tokens, NewToken(TokenTypeCloseTag, StringValueEmpty, l.currentPosition()))
	l.advanceN(len(l.config.CloseDelim))
	return tokens, true
}

// scanOpeningTag scans "[name attrs]" or "[name attrs /]"
func (l *Lexer) scanOpeningTag() ([]Token, bool) {
	var tokens []Token

	tokens = append(tokens, NewToken(TokenTypeOpenTag, StringValueEmpty, l.currentPosition()))
	l.advanceN(len(l.config.OpenDelim))

	nameToken, ok := l.scanTagName()
	if !ok {
		return nil, false
	}
	tokens = append(tokens, nameToken)

	// The name must be followed by whitespace or the end of the tag
	if !l.isAtEnd() && !isWhitespace(l.peek()) &&
		!l.matchStr(l.config.CloseDelim) && !l.matchStr(l.config.selfClose()) {
		return nil, false
	}

	selfClosePattern := l.config.selfClose()
	for !l.isAtEnd() {
		l.skipWhitespace()

		if l.matchStr(selfClosePattern) {
			tokens = append(tokens, NewToken(TokenTypeSelfClose, StringValueEmpty, l.currentPosition()))
			l.advanceN(len(selfClosePattern))
			return tokens, true
		}

		if l.matchStr(l.config.CloseDelim) {
			tokens = append(tokens, NewToken(TokenTypeCloseTag, StringValueEmpty, l.currentPosition()))
			l.advanceN(len(l.config.CloseDelim))
			return tokens, true
		}

		if l.isAtEnd() {
			break
		}

		attrTokens, ok := l.scanAttribute()
		if !ok {
			return nil, false
		}
		tokens = append(tokens, attrTokens...)
	}

	// Unterminated tag
	return nil, false
}

// scanTagName scans an identifier for a shortcode name
func (l *Lexer) scanTagName() (Token, bool) {
	startPos := l.currentPosition()
	var sb strings.Builder

	if l.isAtEnd() || !isNameStart(l.peek()) {
		return Token{}, false
	}
	sb.WriteByte(l.advance())

	for !l.isAtEnd() && isNamePart(l.peek()) {
		sb.WriteByte(l.advance())
	}

	return NewToken(TokenTypeTagName, sb.String(), startPos), true
}

// scanAttribute scans name=value, name="value", "positional" or a bare positional word
func (l *Lexer) scanAttribute() ([]Token, bool) {
	ch := l.peek()

	// Quoted positional value
	if ch == CharDoubleQuote || ch == CharSingleQuote {
		valueToken, ok := l.scanQuotedValue()
		if !ok {
			return nil, false
		}
		return []Token{valueToken}, true
	}

	if !isNamePart(ch) {
		return nil, false
	}

	startPos := l.currentPosition()
	var sb strings.Builder
	for !l.isAtEnd() && isNamePart(l.peek()) {
		sb.WriteByte(l.advance())
	}
	word := sb.String()

	// Look past whitespace for "="; without it the word is a positional value
	saved := l.save()
	l.skipWhitespace()
	if l.isAtEnd() || l.peek() != CharEquals {
		l.restore(saved)
		if !l.isAtEnd() && !isWhitespace(l.peek()) &&
			!l.matchStr(l.config.CloseDelim) && !l.matchStr(l.config.selfClose()) {
			return nil, false
		}
		return []Token{NewToken(TokenTypeAttrValue, word, startPos)}, true
	}

	tokens := []Token{NewToken(TokenTypeAttrName, word, startPos)}
	tokens = append(tokens, NewToken(TokenTypeEquals, StringValueEmpty, l.currentPosition()))
	l.advance()
	l.skipWhitespace()

	if l.isAtEnd() {
		return nil, false
	}

	var valueToken Token
	var ok bool
	if q := l.peek(); q == CharDoubleQuote || q == CharSingleQuote {
		valueToken, ok = l.scanQuotedValue()
	} else {
		valueToken, ok = l.scanUnquotedValue()
	}
	if !ok {
		return nil, false
	}
	return append(tokens, valueToken), true
}

// scanQuotedValue scans a single- or double-quoted value.
// A value cannot contain the open delimiter, so an unterminated quote fails
// at the next tag instead of at the end of the source.
func (l *Lexer) scanQuotedValue() (Token, bool) {
	startPos := l.currentPosition()
	quote := l.advance()

	var sb strings.Builder
	for !l.isAtEnd() {
		if l.matchStr(l.config.OpenDelim) {
			return Token{}, false
		}
		ch := l.peek()

		if ch == quote {
			l.advance()
			return NewToken(TokenTypeAttrValue, sb.String(), startPos), true
		}

		// Backslash escapes the quote character and itself
		if ch == CharBackslash && l.pos+1 < len(l.source) {
			nextCh := l.source[l.pos+1]
			if nextCh == quote || nextCh == CharBackslash {
				l.advance()
				sb.WriteByte(l.advance())
				continue
			}
		}

		sb.WriteByte(l.advance())
	}

	// Unterminated string literal
	return Token{}, false
}

// scanUnquotedValue scans a bare value up to whitespace or the end of the tag
func (l *Lexer) scanUnquotedValue() (Token, bool) {
	startPos := l.currentPosition()
	var sb strings.Builder

	for !l.isAtEnd() {
		ch := l.peek()
		if isWhitespace(ch) || l.matchStr(l.config.CloseDelim) || l.matchStr(l.config.selfClose()) {
			break
		}
		if ch == CharDoubleQuote || ch == CharSingleQuote || l.matchStr(l.config.OpenDelim) {
			return Token{}, false
		}
		sb.WriteByte(l.advance())
	}

	if sb.Len() == 0 {
		return Token{}, false
	}
	return NewToken(TokenTypeAttrValue, sb.String(), startPos), true
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) save() lexState {
	return lexState{pos: l.pos, line: l.line, column: l.column}
}

func (l *Lexer) restore(s lexState) {
	l.pos = s.pos
	l.line = s.line
	l.column = s.column
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current character without advancing
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// advanceN advances by n characters
func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}

// matchStr returns true if the remaining source starts with s
func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() && isWhitespace(l.peek()) {
		l.advance()
	}
}

// appendText merges consecutive text tokens
func appendText(tokens []Token, tok Token) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Type == TokenTypeText {
		tokens[n-1].Value += tok.Value
		return tokens
	}
	return append(tokens, tok)
}

// Character classification helpers

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNameStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isNamePart(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '-'
}

func isWhitespace(ch byte) bool {
	return ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet
}
