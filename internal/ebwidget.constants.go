package internal

// TokenType represents the type of a lexical token
type TokenType string

// Token type constants
const (
	TokenTypeText       TokenType = "TEXT"
	TokenTypeOpenTag    TokenType = "OPEN_TAG"
	TokenTypeCloseTag   TokenType = "CLOSE_TAG"
	TokenTypeSelfClose  TokenType = "SELF_CLOSE"
	TokenTypeBlockClose TokenType = "BLOCK_CLOSE"
	TokenTypeTagName    TokenType = "TAG_NAME"
	TokenTypeAttrName   TokenType = "ATTR_NAME"
	TokenTypeAttrValue  TokenType = "ATTR_VALUE"
	TokenTypeEquals     TokenType = "EQUALS"
	TokenTypeEOF        TokenType = "EOF"
)

// NodeType identifies AST node types
type NodeType int

// Node type constants
const (
	NodeTypeRoot NodeType = iota
	NodeTypeText
	NodeTypeShortcode
)

// Node type string names for debugging
const (
	NodeTypeNameRoot      = "ROOT"
	NodeTypeNameText      = "TEXT"
	NodeTypeNameShortcode = "SHORTCODE"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeText:
		return NodeTypeNameText
	case NodeTypeShortcode:
		return NodeTypeNameShortcode
	default:
		return NodeTypeNameRoot
	}
}

// Character constants
const (
	CharEquals      = '='
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharBackslash   = '\\'
	CharSlash       = '/'
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
)

// String constants for delimiter matching
const (
	StrOpenDelim  = "["
	StrCloseDelim = "]"
)

// Log message constants
const (
	LogMsgLexerCreated       = "lexer created"
	LogMsgTokenizerStart     = "starting tokenization"
	LogMsgTokenizerEnd       = "tokenization complete"
	LogMsgMalformedTag       = "malformed shortcode kept as text"
	LogMsgParserCreated      = "parser created"
	LogMsgParserStart        = "starting parse"
	LogMsgParserEnd          = "parse complete"
	LogMsgExecutorCreated    = "executor created"
	LogMsgExecutorStart      = "starting expansion"
	LogMsgExecutorEnd        = "expansion complete"
	LogMsgHandlerInvoked     = "shortcode handler invoked"
	LogMsgHandlerComplete    = "shortcode handler complete"
	LogMsgHandlerFailed      = "shortcode handler failed - output removed"
	LogMsgUnknownShortcode   = "unregistered shortcode kept verbatim"
	LogMsgRegistryCreated    = "registry created"
	LogMsgHandlerRegistered  = "shortcode handler registered"
	LogMsgHandlerCollision   = "shortcode handler registration collision - first-come-wins"
	LogMsgHandlerUnregister  = "shortcode handler removed"
	LogMsgMaxDepthReached    = "maximum expansion depth reached - content kept verbatim"
	LogMsgStrayClosingTag    = "closing shortcode without opener kept verbatim"
	LogMsgEnclosingShortcode = "enclosing shortcode matched"
)

// Log field names
const (
	LogFieldSource   = "source_length"
	LogFieldTokens   = "token_count"
	LogFieldNodes    = "node_count"
	LogFieldTag      = "tag"
	LogFieldLine     = "line"
	LogFieldColumn   = "column"
	LogFieldDepth    = "depth"
	LogFieldReason   = "reason"
	LogFieldErrorMsg = "error"
)

// Formatting constants
const (
	StringValueEmpty         = ""
	MaxStringDisplayLength   = 50
	TruncatedStringLength    = 47
	TruncationSuffix         = "..."
	ErrFmtWithPosition       = "%s at %s"
	ErrFmtWithTagAndPosition = "%s [%s] at %s"
	ErrFmtWithCause          = "%s: %v"
	ErrFmtTagMessage         = "%s: %s"
)
