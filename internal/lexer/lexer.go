package lexer

import (
	"rue/internal/diag"
	"rue/internal/source"
	"rue/internal/token"
)

// Lexer tokenizes a single source.File byte-for-byte with longest-match
// scanning. Whitespace and comments are skipped between tokens; there is
// no trivia attached to tokens, since the CST never needs to reproduce
// the exact original formatting.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token pushback buffer
	err    *diag.Diagnostic
}

// New creates a Lexer positioned at the start of file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Next returns the next significant token. Once EOF is reached, or once a
// lexical error has been recorded, it keeps returning an EOF token, so
// callers can loop unconditionally until they see one and then check Err.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.err != nil {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString(ch)
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia consumes runs of whitespace, line comments ("//" to end of
// line) and block comments ("/* ... */", non-nesting).
func (lx *Lexer) skipTrivia() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			lx.cursor.Bump()
		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok {
				return
			}
			switch {
			case b0 == '/' && b1 == '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case b0 == '/' && b1 == '*':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for !lx.cursor.EOF() {
					if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						break
					}
					lx.cursor.Bump()
				}
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
