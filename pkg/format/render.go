package format

import (
	"github.com/greshake/i3status-rust-sub000/pkg/formatter"
	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Fragment is a run of output sharing one metadata tag.
type Fragment struct {
	Text     string
	Metadata value.Metadata
}

// Render renders the first alternative that succeeds. A recoverable error
// (see IsRecoverable) moves on to the next alternative; the last alternative
// is rendered unconditionally and its error, if any, is returned. Any other
// error aborts immediately. A template without alternatives renders nothing.
//
// Literal text and icons carry zero metadata, placeholders carry their
// value's. Adjacent output with equal metadata is merged into one fragment.
func (t *Template) Render(values value.Values, cfg formatter.Config) ([]Fragment, error) {
	if t == nil {
		return nil, nil
	}
	var out fragments
	if err := out.alternatives(t.alts, values, cfg); err != nil {
		return nil, err
	}
	return out, nil
}

type fragments []Fragment

func (fs *fragments) push(text string, md value.Metadata) {
	if text == "" {
		return
	}
	if n := len(*fs); n > 0 && (*fs)[n-1].Metadata == md {
		(*fs)[n-1].Text += text
		return
	}
	*fs = append(*fs, Fragment{Text: text, Metadata: md})
}

func (fs *fragments) alternatives(alts []alternative, values value.Values, cfg formatter.Config) error {
	for i, alt := range alts {
		var attempt fragments
		err := attempt.alternative(alt, values, cfg)
		if err == nil {
			for _, f := range attempt {
				fs.push(f.Text, f.Metadata)
			}
			return nil
		}
		if i == len(alts)-1 || !IsRecoverable(err) {
			return err
		}
	}
	return nil
}

func (fs *fragments) alternative(alt alternative, values value.Values, cfg formatter.Config) error {
	for _, it := range alt {
		switch it := it.(type) {
		case textItem:
			fs.push(string(it), value.Metadata{})
		case iconItem:
			glyph, err := cfg.Icon(string(it), nil)
			if err != nil {
				return &IconError{Name: string(it), Err: err}
			}
			fs.push(glyph, value.Metadata{})
		case placeholderItem:
			v, ok := values[it.name]
			if !ok || (v.Kind() == value.KindBoolean && !v.Bool()) {
				return &PlaceholderNotFoundError{Name: it.name}
			}
			f := it.f
			if f == nil {
				f = formatter.Default(v.Kind())
			}
			text, err := f.Format(v, cfg)
			if err != nil {
				if v.Kind() == value.KindIcon && !IsRecoverable(err) {
					return &IconError{Name: v.String(), Err: err}
				}
				return err
			}
			fs.push(text, v.Meta)
		case groupItem:
			if err := fs.alternatives(it.alts, values, cfg); err != nil {
				return err
			}
		}
	}
	return nil
}
