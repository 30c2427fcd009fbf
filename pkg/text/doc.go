// Package text provides the process-wide font used for overlay labels and a
// minimal single-line glyph layout on top of it.
//
// The font is Go Regular, parsed once on first use and shared read-only for
// the lifetime of the process. Layout maps runes to glyphs one to one and
// advances by the font's horizontal metrics with pair kerning. There is no
// shaping, bidi or line breaking.
package text
