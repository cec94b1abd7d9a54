package token

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Identifier: "Identifier",

	KwAnd:       "and",
	KwOr:        "or",
	KwNot:       "not",
	KwFor:       "for",
	KwWhile:     "while",
	KwContinue:  "continue",
	KwBreak:     "break",
	KwReturn:    "return",
	KwMacro:     "macro",
	KwPublic:    "public",
	KwPrivate:   "private",
	KwProtected: "protected",
	KwDo:        "do",
	KwIs:        "is",
	KwAs:        "as",
	KwIf:        "if",
	KwElse:      "else",
	KwTry:       "try",
	KwCatch:     "catch",
	KwThrow:     "throw",
	KwFinally:   "finally",
	KwDefer:     "defer",
	KwDef:       "def",
	KwVal:       "val",
	KwVar:       "var",
	KwIn:        "in",
	KwMatch:     "match",
	KwFrom:      "from",
	KwImport:    "import",
	KwExport:    "export",
	KwExtern:    "extern",
	KwType:      "type",
	KwEnum:      "enum",
	KwStruct:    "struct",
	KwClass:     "class",
	KwSuper:     "super",
	KwThis:      "this",
	KwNull:      "null",

	VoidType:            "VoidType",
	IntegerType:         "IntegerType",
	UnsignedIntegerType: "UnsignedIntegerType",
	FloatType:           "FloatType",
	BooleanType:         "BooleanType",
	StringType:          "StringType",

	IntLiteral:         "IntLiteral",
	FloatLiteral:       "FloatLiteral",
	BinaryLiteral:      "BinaryLiteral",
	OctalLiteral:       "OctalLiteral",
	HexadecimalLiteral: "HexadecimalLiteral",
	StringLiteral:      "StringLiteral",
	BoolLiteral:        "BoolLiteral",

	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",
	Percent: "%",

	Assign:         "=",
	PlusAssign:     "+=",
	MinusAssign:    "-=",
	StarAssign:     "*=",
	SlashAssign:    "/=",
	PercentAssign:  "%=",
	AmpAssign:      "&=",
	PipeAssign:     "|=",
	CaretAssign:    "^=",
	ShlAssign:      "<<=",
	ShrAssign:      ">>=",
	UShrAssign:     ">>>=",
	CoalesceAssign: "?=",

	EqEq:   "==",
	BangEq: "!=",
	Lt:     "<",
	LtEq:   "<=",
	Gt:     ">",
	GtEq:   ">=",

	Shl:  "<<",
	Shr:  ">>",
	UShr: ">>>",

	Amp:   "&",
	Pipe:  "|",
	Caret: "^",
	Tilde: "~",

	Question:      "?",
	QuestionColon: "?:",
	QuestionDot:   "?.",

	Colon:            ":",
	Semicolon:        ";",
	Comma:            ",",
	Dot:              ".",
	DotDot:           "..",
	DotDotDot:        "...",
	FatArrow:         "=>",
	OpenParenthesis:  "(",
	CloseParenthesis: ")",
	OpenBracket:      "[",
	CloseBracket:     "]",
	OpenBrace:        "{",
	CloseBrace:       "}",
	Underscore:       "_",
}

// String returns the canonical name of the token kind, used by diagnostics
// and the debug pretty-printer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
