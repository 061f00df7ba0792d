// Package parse turns format template source into an AST.
//
//	format_template := token_list ('|' token_list)*
//	token_list      := token*
//	token           := text | placeholder | icon | recursive
//	icon            := '^icon_' identifier
//	placeholder     := '$' identifier ('.' formatter)?
//	formatter       := identifier ('(' arg (',' arg)* ')')?
//	arg             := key ':' value
//	recursive       := '{' format_template '}'
//
// The parser is syntactic only. Binding formatter names to implementations
// happens in package format.
package parse

// Template is a list of fallback alternatives separated by '|'.
type Template struct {
	Alternatives []TokenList
}

// TokenList is one alternative.
type TokenList []Token

// Token is one of *Text, *IconRef, *Placeholder or *Recursive.
type Token interface {
	// Pos is the byte offset of the token in the source.
	Pos() int
	token()
}

// Text is a literal run with escapes already resolved.
type Text struct {
	Begin int
	Value string
}

// IconRef is a ^icon_name reference.
type IconRef struct {
	Begin int
	Name  string
}

// Placeholder is a $name reference with an optional formatter suffix.
type Placeholder struct {
	Begin     int
	Name      string
	Formatter *FormatterCall
}

// Recursive is a braced nested template.
type Recursive struct {
	Begin    int
	Template *Template
}

// FormatterCall is the '.name(args)' suffix of a placeholder.
type FormatterCall struct {
	Begin int
	Name  string
	Args  []Arg
}

// Arg is one key:value formatter argument.
type Arg struct {
	Begin int
	Key   string
	Value string
}

func (t *Text) Pos() int        { return t.Begin }
func (t *IconRef) Pos() int     { return t.Begin }
func (t *Placeholder) Pos() int { return t.Begin }
func (t *Recursive) Pos() int   { return t.Begin }

func (*Text) token()        {}
func (*IconRef) token()     {}
func (*Placeholder) token() {}
func (*Recursive) token()   {}
