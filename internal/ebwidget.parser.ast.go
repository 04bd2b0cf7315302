package internal

import (
	"fmt"
	"sort"
	"strings"
)

// Node is the interface all AST nodes implement
type Node interface {
	// Type returns the node type identifier
	Type() NodeType
	// Pos returns the source position of this node
	Pos() Position
	// String returns a human-readable representation
	String() string
}

// RootNode is the top-level container for an AST
type RootNode struct {
	Children []Node
}

// Type returns NodeTypeRoot
func (n *RootNode) Type() NodeType {
	return NodeTypeRoot
}

// Pos returns a zero position (root has no specific position)
func (n *RootNode) Pos() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// String returns a string representation of the root node
func (n *RootNode) String() string {
	var sb strings.Builder
	sb.WriteString("RootNode{\n")
	for i, child := range n.Children {
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, child.String()))
	}
	sb.WriteString("}")
	return sb.String()
}

// TextNode represents literal content between shortcodes
type TextNode struct {
	pos     Position
	Content string
}

// Type returns NodeTypeText
func (n *TextNode) Type() NodeType {
	return NodeTypeText
}

// Pos returns the source position
func (n *TextNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *TextNode) String() string {
	content := n.Content
	if len(content) > MaxStringDisplayLength {
		content = content[:TruncatedStringLength] + TruncationSuffix
	}
	return fmt.Sprintf("TextNode{%q @ %s}", content, n.pos)
}

// NewTextNode creates a new text node
func NewTextNode(content string, pos Position) *TextNode {
	return &TextNode{
		pos:     pos,
		Content: content,
	}
}

// ShortcodeNode represents a self-closing or enclosing shortcode
type ShortcodeNode struct {
	pos        Position
	Name       string     // Shortcode name (e.g., "fs_eventbrite")
	Attributes Attributes // Named and positional attributes
	Content    string     // Raw enclosed content (empty for self-closing)
	SelfClose  bool       // True when no matching closing tag exists
	RawSource  string     // Original source, emitted verbatim for unregistered shortcodes
}

// Type returns NodeTypeShortcode
func (n *ShortcodeNode) Type() NodeType {
	return NodeTypeShortcode
}

// Pos returns the source position
func (n *ShortcodeNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *ShortcodeNode) String() string {
	if n.SelfClose {
		return fmt.Sprintf("ShortcodeNode{%s, self-close, attrs=%v @ %s}", n.Name, n.Attributes, n.pos)
	}
	return fmt.Sprintf("ShortcodeNode{%s, enclosing, attrs=%v, content=%d bytes @ %s}", n.Name, n.Attributes, len(n.Content), n.pos)
}

// NewSelfClosingShortcode creates a new self-closing shortcode node
func NewSelfClosingShortcode(name string, attrs Attributes, rawSource string, pos Position) *ShortcodeNode {
	return &ShortcodeNode{
		pos:        pos,
		Name:       name,
		Attributes: attrs,
		SelfClose:  true,
		RawSource:  rawSource,
	}
}

// NewEnclosingShortcode creates a new enclosing shortcode node
func NewEnclosingShortcode(name string, attrs Attributes, content, rawSource string, pos Position) *ShortcodeNode {
	return &ShortcodeNode{
		pos:        pos,
		Name:       name,
		Attributes: attrs,
		Content:    content,
		SelfClose:  false,
		RawSource:  rawSource,
	}
}

// Attributes is a map of shortcode attribute key-value pairs.
// Positional attributes are stored under their zero-based index ("0", "1", ...).
type Attributes map[string]string

// Get retrieves an attribute value, returning ok=false if not found
func (a Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	val, ok := a[key]
	return val, ok
}

// GetDefault retrieves an attribute value with a default fallback
func (a Attributes) GetDefault(key, defaultVal string) string {
	if val, ok := a.Get(key); ok {
		return val
	}
	return defaultVal
}

// Has checks if an attribute exists
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Keys returns all attribute keys in sorted order
func (a Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying map
func (a Attributes) Map() map[string]string {
	result := make(map[string]string, len(a))
	for k, v := range a {
		result[k] = v
	}
	return result
}
