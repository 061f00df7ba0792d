package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SyntaxError records a template syntax error and the byte offset where it
// was detected.
type SyntaxError struct {
	Source string
	Pos    int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("format syntax error at %d: %s (near %q)", e.Pos, e.Msg, e.Near())
}

// Near returns a short excerpt of the source starting at the error position.
func (e *SyntaxError) Near() string {
	const excerpt = 12
	if e.Pos >= len(e.Source) {
		return "<end>"
	}
	end := e.Pos + excerpt
	if end > len(e.Source) {
		end = len(e.Source)
	}
	for end < len(e.Source) && !utf8.RuneStart(e.Source[end]) {
		end++
	}
	return e.Source[e.Pos:end]
}

// Parse parses a complete template. Either the whole source is accepted or a
// *SyntaxError is returned.
func Parse(src string) (tmpl *Template, err error) {
	ps := &parser{src: src}
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*SyntaxError); ok {
				tmpl, err = nil, se
				return
			}
			panic(r)
		}
	}()
	tmpl = ps.template()
	if ps.pos != len(ps.src) {
		// Only an unmatched '}' stops a top-level template early.
		ps.errorf(ps.pos, "unbalanced '}'")
	}
	return tmpl, nil
}

const eof rune = -1

type parser struct {
	src string
	pos int
}

func (ps *parser) peek() rune {
	if ps.pos >= len(ps.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(ps.src[ps.pos:])
	return r
}

func (ps *parser) next() rune {
	if ps.pos >= len(ps.src) {
		return eof
	}
	r, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
	ps.pos += s
	return r
}

func (ps *parser) errorf(pos int, format string, args ...interface{}) {
	panic(&SyntaxError{Source: ps.src, Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

func (ps *parser) template() *Template {
	t := &Template{}
	for {
		t.Alternatives = append(t.Alternatives, ps.tokenList())
		if ps.peek() != '|' {
			return t
		}
		ps.next()
	}
}

func (ps *parser) tokenList() TokenList {
	var list TokenList
	for {
		switch ps.peek() {
		case eof, '|', '}':
			return list
		case '$':
			list = append(list, ps.placeholder())
		case '^':
			list = append(list, ps.icon())
		case '{':
			list = append(list, ps.recursive())
		default:
			list = append(list, ps.text())
		}
	}
}

func isSpecial(r rune) bool {
	switch r {
	case '$', '^', '{', '}', '|':
		return true
	}
	return false
}

func (ps *parser) text() *Text {
	begin := ps.pos
	var b strings.Builder
	for {
		r := ps.peek()
		if r == eof || isSpecial(r) {
			break
		}
		ps.next()
		if r == '\\' {
			escaped := ps.next()
			if escaped == eof {
				ps.errorf(ps.pos-1, "trailing backslash")
			}
			r = escaped
		}
		b.WriteRune(r)
	}
	return &Text{Begin: begin, Value: b.String()}
}

func (ps *parser) recursive() *Recursive {
	begin := ps.pos
	ps.next() // '{'
	inner := ps.template()
	if ps.next() != '}' {
		ps.errorf(begin, "unterminated '{', expected '}'")
	}
	return &Recursive{Begin: begin, Template: inner}
}

func (ps *parser) icon() *IconRef {
	begin := ps.pos
	ps.next() // '^'
	if !strings.HasPrefix(ps.src[ps.pos:], "icon_") {
		ps.errorf(begin, "expected 'icon_' after '^'")
	}
	ps.pos += len("icon_")
	name := ps.identifier()
	if name == "" {
		ps.errorf(ps.pos, "expected icon name")
	}
	return &IconRef{Begin: begin, Name: name}
}

func (ps *parser) placeholder() *Placeholder {
	begin := ps.pos
	ps.next() // '$'
	name := ps.identifier()
	if name == "" {
		ps.errorf(ps.pos, "expected placeholder name after '$'")
	}
	p := &Placeholder{Begin: begin, Name: name}
	if ps.peek() == '.' {
		ps.next()
		p.Formatter = ps.formatter()
	}
	return p
}

func (ps *parser) formatter() *FormatterCall {
	f := &FormatterCall{Begin: ps.pos}
	f.Name = ps.identifier()
	if f.Name == "" {
		ps.errorf(ps.pos, "expected formatter name after '.'")
	}
	if ps.peek() != '(' {
		return f
	}
	open := ps.pos
	ps.next()
	ps.skipSpaces()
	if ps.peek() == ')' {
		ps.next()
		return f
	}
	for {
		ps.skipSpaces()
		f.Args = append(f.Args, ps.arg())
		ps.skipSpaces()
		switch r := ps.next(); r {
		case ',':
			continue
		case ')':
			return f
		case eof:
			ps.errorf(open, "unterminated argument list, expected ')'")
		default:
			ps.errorf(ps.pos-utf8.RuneLen(r), "unexpected %q in argument list", r)
		}
	}
}

func (ps *parser) arg() Arg {
	a := Arg{Begin: ps.pos}
	a.Key = ps.identifier()
	if a.Key == "" {
		if ps.peek() == eof {
			ps.errorf(ps.pos, "unterminated argument list, expected ')'")
		}
		ps.errorf(ps.pos, "expected argument name")
	}
	ps.skipSpaces()
	if ps.peek() != ':' {
		ps.errorf(ps.pos, "expected ':' after argument %q", a.Key)
	}
	ps.next()
	ps.skipSpaces()
	if ps.peek() == '\'' {
		a.Value = ps.quoted()
		return a
	}
	begin := ps.pos
	for {
		r := ps.peek()
		if r == eof || r == ',' || r == ')' || r == '\'' || unicode.IsSpace(r) {
			break
		}
		ps.next()
	}
	if ps.pos == begin {
		ps.errorf(ps.pos, "expected value for argument %q", a.Key)
	}
	a.Value = ps.src[begin:ps.pos]
	return a
}

func (ps *parser) quoted() string {
	begin := ps.pos
	ps.next() // '\''
	var b strings.Builder
	for {
		r := ps.next()
		switch r {
		case eof:
			ps.errorf(begin, "unterminated quoted string")
		case '\'':
			return b.String()
		case '\\':
			r = ps.next()
			if r == eof {
				ps.errorf(begin, "unterminated quoted string")
			}
		}
		b.WriteRune(r)
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '-' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// IsIdentifier reports whether s can be referenced as $s in a template.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

func (ps *parser) identifier() string {
	begin := ps.pos
	for isIdentRune(ps.peek()) {
		ps.next()
	}
	return ps.src[begin:ps.pos]
}

func (ps *parser) skipSpaces() {
	for r := ps.peek(); r != eof && unicode.IsSpace(r); r = ps.peek() {
		ps.next()
	}
}
