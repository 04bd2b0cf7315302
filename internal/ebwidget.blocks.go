package internal

import (
	"strings"
)

// Serialized block comment delimiters
const (
	BlockCommentOpen     = "<!-- wp:"
	BlockCommentCloseFmt = "<!-- /wp:"
	BlockCommentEnd      = "-->"
	BlockCommentSelfEnd  = "/-->"
)

// BlockMatch is one serialized block found in content
type BlockMatch struct {
	Start     int    // Offset of "<!-- wp:"
	End       int    // Offset just past the final "-->"
	AttrsJSON string // Raw attribute object (empty when the block has no attributes)
	Inner     string // Inner content for non-void blocks
	Void      bool   // True for "/-->" blocks
}

// Segment is a piece of content: either plain text or a block match
type Segment struct {
	Text  string
	Block *BlockMatch
}

// ScanBlocks finds every serialized block named name in source.
// Malformed comments are skipped and left in the surrounding text.
func ScanBlocks(source, name string) []BlockMatch {
	var matches []BlockMatch
	opener := BlockCommentOpen + name
	offset := 0

	for offset < len(source) {
		idx := strings.Index(source[offset:], opener)
		if idx == -1 {
			break
		}
		start := offset + idx
		match, ok := scanBlockAt(source, start, len(opener), name)
		if !ok {
			offset = start + len(opener)
			continue
		}
		matches = append(matches, match)
		offset = match.End
	}

	return matches
}

// SplitBlocks splits source into alternating text and block segments
func SplitBlocks(source, name string) []Segment {
	matches := ScanBlocks(source, name)
	segments := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for i := range matches {
		m := matches[i]
		if m.Start > last {
			segments = append(segments, Segment{Text: source[last:m.Start]})
		}
		segments = append(segments, Segment{Block: &m})
		last = m.End
	}
	if last < len(source) {
		segments = append(segments, Segment{Text: source[last:]})
	}
	return segments
}

func scanBlockAt(source string, start, openerLen int, name string) (BlockMatch, bool) {
	pos := start + openerLen

	// The block name must end here (avoid matching a longer name)
	if pos >= len(source) || (!isWhitespace(source[pos]) && source[pos] != CharSlash) {
		return BlockMatch{}, false
	}
	pos = skipSpaces(source, pos)

	match := BlockMatch{Start: start}
	if pos < len(source) && source[pos] == '{' {
		end, ok := scanJSONObject(source, pos)
		if !ok {
			return BlockMatch{}, false
		}
		match.AttrsJSON = source[pos:end]
		pos = skipSpaces(source, end)
	}

	rest := source[pos:]
	switch {
	case strings.HasPrefix(rest, BlockCommentSelfEnd):
		match.Void = true
		match.End = pos + len(BlockCommentSelfEnd)
		return match, true

	case strings.HasPrefix(rest, BlockCommentEnd):
		innerStart := pos + len(BlockCommentEnd)
		closer := BlockCommentCloseFmt + name + " " + BlockCommentEnd
		closeIdx := strings.Index(source[innerStart:], closer)
		if closeIdx == -1 {
			return BlockMatch{}, false
		}
		match.Inner = source[innerStart : innerStart+closeIdx]
		match.End = innerStart + closeIdx + len(closer)
		return match, true
	}

	return BlockMatch{}, false
}

// scanJSONObject returns the offset just past the object starting at start,
// tracking nesting and string literals.
func scanJSONObject(source string, start int) (int, bool) {
	depth := 0
	inString := false
	for i := start; i < len(source); i++ {
		ch := source[i]
		if inString {
			switch ch {
			case CharBackslash:
				i++
			case CharDoubleQuote:
				inString = false
			}
			continue
		}
		switch ch {
		case CharDoubleQuote:
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

func skipSpaces(source string, pos int) int {
	for pos < len(source) && isWhitespace(source[pos]) {
		pos++
	}
	return pos
}
