package token

// keywords maps every reserved lexeme — language keywords, built-in type
// names, and the boolean literals — to its token kind. Lookup happens only
// after the lexer has already matched an identifier-shaped lexeme; the
// table decides whether that shape is actually a keyword, a builtin type,
// a boolean literal, or a plain identifier.
//
// Keyword matching is case-sensitive; only the lowercase spellings below
// are recognized, so "If" or "VAL" lex as plain identifiers.
var keywords = map[string]Kind{
	"and":       KwAnd,
	"or":        KwOr,
	"not":       KwNot,
	"for":       KwFor,
	"while":     KwWhile,
	"continue":  KwContinue,
	"break":     KwBreak,
	"return":    KwReturn,
	"macro":     KwMacro,
	"public":    KwPublic,
	"private":   KwPrivate,
	"protected": KwProtected,
	"do":        KwDo,
	"is":        KwIs,
	"as":        KwAs,
	"if":        KwIf,
	"else":      KwElse,
	"try":       KwTry,
	"catch":     KwCatch,
	"throw":     KwThrow,
	"finally":   KwFinally,
	"defer":     KwDefer,
	"def":       KwDef,
	"val":       KwVal,
	"var":       KwVar,
	"in":        KwIn,
	"match":     KwMatch,
	"from":      KwFrom,
	"import":    KwImport,
	"export":    KwExport,
	"extern":    KwExtern,
	"type":      KwType,
	"enum":      KwEnum,
	"struct":    KwStruct,
	"class":     KwClass,
	"super":     KwSuper,
	"this":      KwThis,
	"null":      KwNull,

	"void": VoidType,

	"int": IntegerType,
	"i8":  IntegerType,
	"i16": IntegerType,
	"i32": IntegerType,
	"i64": IntegerType,

	"uint": UnsignedIntegerType,
	"u8":   UnsignedIntegerType,
	"u16":  UnsignedIntegerType,
	"u32":  UnsignedIntegerType,
	"u64":  UnsignedIntegerType,

	"float": FloatType,
	"f32":   FloatType,
	"f64":   FloatType,

	"bool":   BooleanType,
	"string": StringType,

	"true":  BoolLiteral,
	"false": BoolLiteral,
}

// LookupKeyword reports the Kind for ident if it names a keyword, builtin
// type, or boolean literal, and false otherwise. Case-sensitive: only the
// lowercase spelling is looked up.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
