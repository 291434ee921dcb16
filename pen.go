package rendergrid

// Pen is an immutable bundle of rendering attributes: foreground and
// background color, and a handful of style bits. Attribute keys are a
// closed set, matching the ones the window sink is expected to honor.
//
// A Pen's zero value is the "no attributes set" pen.
type Pen struct {
	fgSet, bgSet bool
	fg, bg       Color

	bold, italic, underline, strike             bool
	boldSet, italicSet, underlineSet, strikeSet bool
}

// PenOption mutates a Pen under construction. Options are applied in order,
// so a later option for the same attribute wins.
type PenOption func(*Pen)

// WithFg sets the foreground color attribute.
func WithFg(color Color) PenOption {
	return func(p *Pen) { p.fg, p.fgSet = color, true }
}

// WithBg sets the background color attribute.
func WithBg(color Color) PenOption {
	return func(p *Pen) { p.bg, p.bgSet = color, true }
}

// WithBold sets the bold attribute.
func WithBold(on bool) PenOption {
	return func(p *Pen) { p.bold, p.boldSet = on, true }
}

// WithItalic sets the italic attribute.
func WithItalic(on bool) PenOption {
	return func(p *Pen) { p.italic, p.italicSet = on, true }
}

// WithUnderline sets the underline attribute.
func WithUnderline(on bool) PenOption {
	return func(p *Pen) { p.underline, p.underlineSet = on, true }
}

// WithStrikethrough sets the strikethrough attribute.
func WithStrikethrough(on bool) PenOption {
	return func(p *Pen) { p.strike, p.strikeSet = on, true }
}

// NewPen constructs an immutable Pen from a set of attribute options.
func NewPen(opts ...PenOption) Pen {
	var p Pen
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Attributes returns the pen's explicitly-set attributes as a key->value
// map. Keys are a closed set: fg, bg, b, i, u, st. Unset attributes are
// omitted, not zero-valued.
func (p Pen) Attributes() map[string]any {
	attrs := make(map[string]any, 6)
	if p.fgSet {
		attrs["fg"] = p.fg
	}
	if p.bgSet {
		attrs["bg"] = p.bg
	}
	if p.boldSet {
		attrs["b"] = p.bold
	}
	if p.italicSet {
		attrs["i"] = p.italic
	}
	if p.underlineSet {
		attrs["u"] = p.underline
	}
	if p.strikeSet {
		attrs["st"] = p.strike
	}
	return attrs
}

// IsEmpty reports whether the pen carries no explicitly-set attributes.
func (p Pen) IsEmpty() bool {
	return !p.fgSet && !p.bgSet && !p.boldSet && !p.italicSet && !p.underlineSet && !p.strikeSet
}

// MergePen produces a new pen whose attributes are overlay's explicitly-set
// values layered over base's. Attributes overlay leaves unset fall through
// to base.
func MergePen(base, overlay Pen) Pen {
	merged := base
	if overlay.fgSet {
		merged.fg, merged.fgSet = overlay.fg, true
	}
	if overlay.bgSet {
		merged.bg, merged.bgSet = overlay.bg, true
	}
	if overlay.boldSet {
		merged.bold, merged.boldSet = overlay.bold, true
	}
	if overlay.italicSet {
		merged.italic, merged.italicSet = overlay.italic, true
	}
	if overlay.underlineSet {
		merged.underline, merged.underlineSet = overlay.underline, true
	}
	if overlay.strikeSet {
		merged.strike, merged.strikeSet = overlay.strike, true
	}
	return merged
}
