// Package diag defines the diagnostic model shared by the lexer, parser,
// and the multi-file driver: every failure is a LexError, a ParseError,
// or an IOError, all carrying a message, an optional offending snippet,
// and a byte span.
package diag

// Phase identifies which stage of the pipeline raised a diagnostic.
type Phase uint8

const (
	// Lex identifies a diagnostic raised while tokenizing.
	Lex Phase = iota
	// Parse identifies a diagnostic raised while building the CST.
	Parse
	// IO identifies a diagnostic raised while loading a file from disk,
	// ahead of either Lex or Parse ever running.
	IO
)

func (p Phase) String() string {
	switch p {
	case Lex:
		return "Lex"
	case Parse:
		return "Parse"
	case IO:
		return "IO"
	default:
		return "Unknown"
	}
}
