package diag

// Code is a stable identifier for a diagnostic template. Numbering follows
// the teacher's convention of banding by phase: 1000s for lexical errors,
// 2000s for parse errors.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnexpectedCharacter Code = 1001
	LexUnterminatedString  Code = 1002
	LexBadEscape           Code = 1003
	LexUnicodeOutOfRange   Code = 1004
	LexBadNumber           Code = 1005

	// Parser
	SynExpectedStatement    Code = 2001
	SynExpectedExpression   Code = 2002
	SynExpectedIdentifier   Code = 2003
	SynExpectedToken        Code = 2004
	SynUnexpectedToken      Code = 2005
	SynEmptyRange           Code = 2006

	// I/O
	IOLoadFileError Code = 3001
)

var codeNames = map[Code]string{
	UnknownCode:             "unknown",
	LexUnexpectedCharacter:  "lex-unexpected-character",
	LexUnterminatedString:   "lex-unterminated-string",
	LexBadEscape:            "lex-bad-escape",
	LexUnicodeOutOfRange:    "lex-unicode-out-of-range",
	LexBadNumber:            "lex-bad-number",
	SynExpectedStatement:    "syn-expected-statement",
	SynExpectedExpression:   "syn-expected-expression",
	SynExpectedIdentifier:   "syn-expected-identifier",
	SynExpectedToken:        "syn-expected-token",
	SynUnexpectedToken:      "syn-unexpected-token",
	SynEmptyRange:           "syn-empty-range",
	IOLoadFileError:         "io-load-file-error",
}

// String returns the code's stable textual ID, used in golden output and
// machine-readable diagnostic formats.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}
