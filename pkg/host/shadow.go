package host

// ShadowRoot is an element's isolated rendering context. Styles and markup
// are committed separately: styles once per mount cycle, markup on every
// patch.
type ShadowRoot struct {
	host   *Element
	styles string
	markup string
}

// Host returns the owning element.
func (r *ShadowRoot) Host() *Element {
	return r.host
}

// SetStyles replaces the root's stylesheet.
func (r *ShadowRoot) SetStyles(css string) {
	r.styles = css
}

// Styles returns the current stylesheet.
func (r *ShadowRoot) Styles() string {
	return r.styles
}

// Commit replaces the root's markup.
func (r *ShadowRoot) Commit(markup string) {
	r.markup = markup
}

// Markup returns the last committed markup.
func (r *ShadowRoot) Markup() string {
	return r.markup
}

// InnerHTML renders the root's content: a style element when styles are
// present, followed by the committed markup.
func (r *ShadowRoot) InnerHTML() string {
	if r.styles == "" {
		return r.markup
	}
	return "<style>" + r.styles + "</style>" + r.markup
}

// Release discards the root's content. The root itself stays attached so a
// reconnect can render into it again.
func (r *ShadowRoot) Release() {
	r.styles = ""
	r.markup = ""
}
