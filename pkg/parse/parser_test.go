package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLiteralText(t *testing.T) {
	tmpl, err := Parse("hello world")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &Template{Alternatives: []TokenList{{&Text{Begin: 0, Value: "hello world"}}}}
	if diff := cmp.Diff(want, tmpl); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	tmpl, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tmpl.Alternatives) != 1 || len(tmpl.Alternatives[0]) != 0 {
		t.Errorf("empty source = %+v, want one empty alternative", tmpl)
	}
}

func TestParseEscapes(t *testing.T) {
	tmpl, err := Parse(`cost \$5 \| \{x\} \\ \^`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	list := tmpl.Alternatives[0]
	if len(list) != 1 {
		t.Fatalf("got %d tokens, want 1", len(list))
	}
	if got := list[0].(*Text).Value; got != `cost $5 | {x} \ ^` {
		t.Errorf("text = %q", got)
	}
}

func TestParsePlaceholderWithFormatter(t *testing.T) {
	tmpl, err := Parse(" $icon $count.eng(w:1, p:Ki ,hide_unit:true) ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &Template{Alternatives: []TokenList{{
		&Text{Begin: 0, Value: " "},
		&Placeholder{Begin: 1, Name: "icon"},
		&Text{Begin: 6, Value: " "},
		&Placeholder{Begin: 7, Name: "count", Formatter: &FormatterCall{
			Begin: 14,
			Name:  "eng",
			Args: []Arg{
				{Begin: 18, Key: "w", Value: "1"},
				{Begin: 23, Key: "p", Value: "Ki"},
				{Begin: 29, Key: "hide_unit", Value: "true"},
			},
		}},
		&Text{Begin: 44, Value: " "},
	}}}
	if diff := cmp.Diff(want, tmpl); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuotedArg(t *testing.T) {
	tmpl, err := Parse(`$t.str(rot_separator:' | it\'s ', max_w:10)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f := tmpl.Alternatives[0][0].(*Placeholder).Formatter
	if len(f.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(f.Args))
	}
	if f.Args[0].Value != " | it's " {
		t.Errorf("quoted value = %q", f.Args[0].Value)
	}
	if f.Args[1].Key != "max_w" || f.Args[1].Value != "10" {
		t.Errorf("second arg = %+v", f.Args[1])
	}
}

func TestParseFormatterWithoutParens(t *testing.T) {
	tmpl, err := Parse("$x.eng")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := tmpl.Alternatives[0][0].(*Placeholder)
	if p.Formatter == nil || p.Formatter.Name != "eng" || len(p.Formatter.Args) != 0 {
		t.Errorf("placeholder = %+v", p)
	}
	tmpl, err = Parse("$x.eng()")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p := tmpl.Alternatives[0][0].(*Placeholder); len(p.Formatter.Args) != 0 {
		t.Errorf("empty parens gave args %+v", p.Formatter.Args)
	}
}

func TestParseIcon(t *testing.T) {
	tmpl, err := Parse("^icon_net_wireless up")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	icon, ok := tmpl.Alternatives[0][0].(*IconRef)
	if !ok || icon.Name != "net_wireless" {
		t.Errorf("first token = %#v", tmpl.Alternatives[0][0])
	}
}

func TestParseAlternativesAndNesting(t *testing.T) {
	tmpl, err := Parse("{ $a.eng() | {$b|$c} static } | last")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n := len(tmpl.Alternatives); n != 2 {
		t.Fatalf("top-level alternatives = %d, want 2", n)
	}
	outer, ok := tmpl.Alternatives[0][0].(*Recursive)
	if !ok {
		t.Fatalf("first token = %T, want *Recursive", tmpl.Alternatives[0][0])
	}
	if n := len(outer.Template.Alternatives); n != 2 {
		t.Fatalf("group alternatives = %d, want 2", n)
	}
	inner, ok := outer.Template.Alternatives[1][1].(*Recursive)
	if !ok {
		t.Fatalf("nested token = %T, want *Recursive", outer.Template.Alternatives[1][1])
	}
	if n := len(inner.Template.Alternatives); n != 2 {
		t.Errorf("nested alternatives = %d, want 2", n)
	}
	last := tmpl.Alternatives[1][0].(*Text)
	if last.Value != " last" {
		t.Errorf("last alternative = %q", last.Value)
	}
}

func TestParseEmptyAlternatives(t *testing.T) {
	tmpl, err := Parse("{$x|}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	group := tmpl.Alternatives[0][0].(*Recursive)
	if len(group.Template.Alternatives) != 2 || len(group.Template.Alternatives[1]) != 0 {
		t.Errorf("group = %+v", group.Template)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src     string
		pos     int
		message string
	}{
		{"$", 1, "expected placeholder name"},
		{"a $.eng", 3, "expected placeholder name"},
		{"$x.", 3, "expected formatter name"},
		{"$x.eng(w:1", 6, "unterminated argument list"},
		{"$x.eng(w 1)", 9, "expected ':'"},
		{"$x.eng(w:)", 9, "expected value"},
		{"$x.eng(:1)", 7, "expected argument name"},
		{"$x.eng(w:1 ;)", 11, "unexpected ';'"},
		{"$x.str(s:'abc)", 9, "unterminated quoted string"},
		{"^foo", 0, "expected 'icon_'"},
		{"^icon_", 6, "expected icon name"},
		{"{ $a | b", 0, "unterminated '{'"},
		{"a } b", 2, "unbalanced '}'"},
		{`tail\`, 4, "trailing backslash"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.src)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Parse(%q) error = %v, want *SyntaxError", tt.src, err)
			continue
		}
		if se.Pos != tt.pos {
			t.Errorf("Parse(%q) pos = %d, want %d (%v)", tt.src, se.Pos, tt.pos, se)
		}
		if !strings.Contains(se.Msg, tt.message) {
			t.Errorf("Parse(%q) msg = %q, want it to contain %q", tt.src, se.Msg, tt.message)
		}
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Parse("ok $x.eng(w:1")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "at 9") || !strings.Contains(msg, `"(w:1"`) {
		t.Errorf("error message = %q", msg)
	}
}

func TestIsIdentifier(t *testing.T) {
	for s, want := range map[string]bool{
		"cpu":        true,
		"mem_used-2": true,
		"":           false,
		"a.b":        false,
		"my key":     false,
		"ünïcode":    false,
	} {
		if got := IsIdentifier(s); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", s, got, want)
		}
	}
}
