// Package token defines the closed set of lexical token kinds produced by
// the Rue lexer and the Token record that carries a lexeme's span and text.
package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input. It is a terminator, not a
	// token drawn from source text: its span is always zero-width
	// (Start == Stop), exempt from the invariant that every other kind's
	// span is non-empty, and its Text is always empty.
	EOF

	// Identifier represents an identifier token.
	Identifier

	// keywords, case-sensitive, lowercase only.
	KwAnd
	KwOr
	KwNot
	KwFor
	KwWhile
	KwContinue
	KwBreak
	KwReturn
	KwMacro
	KwPublic
	KwPrivate
	KwProtected
	KwDo
	KwIs
	KwAs
	KwIf
	KwElse
	KwTry
	KwCatch
	KwThrow
	KwFinally
	KwDefer
	KwDef
	KwVal
	KwVar
	KwIn
	KwMatch
	KwFrom
	KwImport
	KwExport
	KwExtern
	KwType
	KwEnum
	KwStruct
	KwClass
	KwSuper
	KwThis
	KwNull

	// collapsed built-in type kinds; the specific spelling survives in Token.Text.
	VoidType             // void
	IntegerType          // int i8 i16 i32 i64
	UnsignedIntegerType  // uint u8 u16 u32 u64
	FloatType            // float f32 f64
	BooleanType          // bool
	StringType           // string

	// literal kinds.
	IntLiteral
	FloatLiteral
	BinaryLiteral
	OctalLiteral
	HexadecimalLiteral
	StringLiteral
	BoolLiteral // true | false

	// arithmetic operators.
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %

	// assignment operators.
	Assign         // =
	PlusAssign     // +=
	MinusAssign    // -=
	StarAssign     // *=
	SlashAssign    // /=
	PercentAssign  // %=
	AmpAssign      // &=
	PipeAssign     // |=
	CaretAssign    // ^=
	ShlAssign      // <<=
	ShrAssign      // >>=
	UShrAssign     // >>>=
	CoalesceAssign // ?=

	// comparisons.
	EqEq   // ==
	BangEq // !=
	Lt     // < (also generic open)
	LtEq   // <=
	Gt     // > (also generic close)
	GtEq   // >=

	// shifts.
	Shl  // <<
	Shr  // >>
	UShr // >>>

	// bitwise.
	Amp   // &
	Pipe  // |
	Caret // ^
	Tilde // ~

	// ternary / coalesce / optional-access.
	Question      // ?
	QuestionColon // ?:
	QuestionDot   // ?.

	// punctuation and delimiters.
	Colon             // :
	Semicolon         // ;
	Comma             // ,
	Dot               // .
	DotDot            // ..
	DotDotDot         // ... (vararg / open range)
	FatArrow          // =>
	OpenParenthesis   // (
	CloseParenthesis  // )
	OpenBracket       // [
	CloseBracket      // ]
	OpenBrace         // {
	CloseBrace        // }
	Underscore        // _
)
