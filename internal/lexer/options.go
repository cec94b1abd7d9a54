package lexer

// Reporter is an optional hook a driver can install to observe every
// diagnostic the lexer would otherwise only surface as its single
// returned error. Lex itself never installs one: tokenizing still stops
// at the first offending byte regardless of whether a Reporter is set.
type Reporter interface {
	Report(code uint16, start, end uint32, message, content string)
}

// Options configures a Lexer. The zero value has no Reporter.
type Options struct {
	Reporter Reporter
}

func (lx *Lexer) report(code uint16, start, end uint32, msg, content string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, start, end, msg, content)
	}
}
