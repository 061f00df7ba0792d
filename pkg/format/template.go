// Package format compiles format templates and renders them against block
// values.
//
// A template is parsed and its formatters are bound once, by New. The result
// is immutable: Render, Intervals and ContainsKey only read it, so a single
// *Template can be shared by any number of goroutines.
package format

import (
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/formatter"
	"github.com/greshake/i3status-rust-sub000/pkg/parse"
)

// Template is a compiled format string.
type Template struct {
	source string
	alts   []alternative
}

type alternative []item

// item is one of textItem, iconItem, placeholderItem or groupItem.
type item interface{ isItem() }

type textItem string

type iconItem string

type placeholderItem struct {
	name string
	// f is nil when the placeholder has no suffix; the value's kind then
	// picks the formatter at render time.
	f formatter.Formatter
}

type groupItem struct {
	alts []alternative
}

func (textItem) isItem()        {}
func (iconItem) isItem()        {}
func (placeholderItem) isItem() {}
func (groupItem) isItem()       {}

// New parses source and binds every formatter suffix. Errors are
// *parse.SyntaxError for malformed source and *CompileError for unknown
// formatters or bad formatter arguments.
func New(source string) (*Template, error) {
	tree, err := parse.Parse(source)
	if err != nil {
		return nil, err
	}
	alts, err := compile(tree)
	if err != nil {
		return nil, err
	}
	return &Template{source: source, alts: alts}, nil
}

// MustNew is like New but panics on error. For templates known at build
// time.
func MustNew(source string) *Template {
	t, err := New(source)
	if err != nil {
		panic("format: " + err.Error())
	}
	return t
}

func compile(tree *parse.Template) ([]alternative, error) {
	alts := make([]alternative, 0, len(tree.Alternatives))
	for _, list := range tree.Alternatives {
		alt := make(alternative, 0, len(list))
		for _, tok := range list {
			switch tok := tok.(type) {
			case *parse.Text:
				alt = append(alt, textItem(tok.Value))
			case *parse.IconRef:
				alt = append(alt, iconItem(tok.Name))
			case *parse.Placeholder:
				p := placeholderItem{name: tok.Name}
				if call := tok.Formatter; call != nil {
					args := make([]formatter.Arg, len(call.Args))
					for i, a := range call.Args {
						args[i] = formatter.Arg{Key: a.Key, Value: a.Value}
					}
					f, err := formatter.New(call.Name, args)
					if err != nil {
						return nil, &CompileError{Pos: call.Begin, Placeholder: tok.Name, Formatter: call.Name, Err: err}
					}
					p.f = f
				}
				alt = append(alt, p)
			case *parse.Recursive:
				nested, err := compile(tok.Template)
				if err != nil {
					return nil, err
				}
				alt = append(alt, groupItem{alts: nested})
			}
		}
		alts = append(alts, alt)
	}
	return alts, nil
}

// Source returns the text the template was compiled from.
func (t *Template) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

// ContainsKey reports whether any alternative references the placeholder
// name. Blocks use it to skip computing values nobody displays.
func (t *Template) ContainsKey(name string) bool {
	if t == nil {
		return false
	}
	return containsKey(t.alts, name)
}

func containsKey(alts []alternative, name string) bool {
	for _, alt := range alts {
		for _, it := range alt {
			switch it := it.(type) {
			case placeholderItem:
				if it.name == name {
					return true
				}
			case groupItem:
				if containsKey(it.alts, name) {
					return true
				}
			}
		}
	}
	return false
}

// Intervals appends the refresh interval of every formatter suffix that
// changes output on its own, in template order, and returns the extended
// slice.
func (t *Template) Intervals(dst []time.Duration) []time.Duration {
	if t == nil {
		return dst
	}
	return intervals(t.alts, dst)
}

func intervals(alts []alternative, dst []time.Duration) []time.Duration {
	for _, alt := range alts {
		for _, it := range alt {
			switch it := it.(type) {
			case placeholderItem:
				if it.f == nil {
					continue
				}
				if d := it.f.Interval(); d > 0 {
					dst = append(dst, d)
				}
			case groupItem:
				dst = intervals(it.alts, dst)
			}
		}
	}
	return dst
}

// MinInterval returns the shortest interval reported by Intervals, or false
// if the template never needs a refresh on its own.
func (t *Template) MinInterval() (time.Duration, bool) {
	all := t.Intervals(nil)
	if len(all) == 0 {
		return 0, false
	}
	m := all[0]
	for _, d := range all[1:] {
		m = min(m, d)
	}
	return m, true
}
