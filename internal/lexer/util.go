package lexer

// Identifiers, keywords, and numeric digits are ASCII-only; Unicode
// identifiers are explicitly out of scope.

func isAsciiLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isAlnum(b byte) bool {
	return isAsciiLetter(b) || isDec(b)
}

// isIdentStartByte reports whether b can begin an identifier lexeme.
// Identifiers never start with '_': a lone or leading underscore lexes as
// the Underscore punctuator instead.
func isIdentStartByte(b byte) bool {
	return isAsciiLetter(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctal(b byte) bool { return b >= '0' && b <= '7' }

func isBinary(b byte) bool { return b == '0' || b == '1' }
