package page

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Default extraction bounds.
const (
	DefaultMaxHops  = 6
	DefaultMaxChars = 480
)

// labelAttrs are read in priority order.
var labelAttrs = []string{"data-name", "aria-label", "title"}

// TextExtractor produces the text a matcher resolves for one element.
type TextExtractor interface {
	Extract(e *Element) string
}

// HTMLExtractor reads label attributes and headings around an element.
//
// It collects the element's own labels, then walks up the ancestors. At each
// ancestor it gathers that ancestor's labels plus the text of descendant
// headings, strong or b tags and labelled elements. The first ancestor that
// yields anything is the card; its full text is appended last. The walk stops
// before an ancestor that also holds another image-bearing element, so one
// card never reads a sibling card. It also stops after MaxHops ancestors or
// once MaxChars have been gathered.
type HTMLExtractor struct {
	MaxHops int
	// MaxChars caps the result in bytes; cuts never split a rune.
	MaxChars int
}

// Extract implements TextExtractor.
func (x HTMLExtractor) Extract(e *Element) string {
	maxHops, maxChars := x.MaxHops, x.MaxChars
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var buf textBuffer
	buf.addAll(labels(e.node))

	var card, fallback *html.Node
	for n, hop := e.node.Parent, 0; n != nil && n.Type == html.ElementNode && hop < maxHops; n, hop = n.Parent, hop+1 {
		if n.DataAtom == atom.Body || n.DataAtom == atom.Html {
			break
		}
		if holdsOtherVisual(n, e.node) {
			break
		}
		if fallback == nil && isBlock(n) {
			fallback = n
		}
		found := buf.addAll(labels(n))
		found = collectLabelled(n, e.node, &buf) || found
		if found {
			card = n
			break
		}
		if buf.size >= maxChars {
			break
		}
	}
	if card == nil {
		card = fallback
	}
	if card != nil {
		buf.add(textContent(card))
	}
	return truncate(buf.String(), maxChars)
}

// collectLabelled adds the text of labelled descendants of root, skipping
// self. Text inside a collected node is not collected again.
func collectLabelled(root, self *html.Node, buf *textBuffer) bool {
	found := false
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || skipSubtree(c) {
				continue
			}
			if c != self && isLabelled(c) {
				if v := firstLabel(c); v != "" {
					found = buf.add(v) || found
				} else {
					found = buf.add(textContent(c)) || found
				}
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return found
}

// holdsOtherVisual reports whether root has an image-bearing descendant
// other than self.
func holdsOtherVisual(root, self *html.Node) bool {
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || skipSubtree(c) {
				continue
			}
			if c != self {
				if _, ok := classify(c); ok {
					return true
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	return walk(root)
}

func isLabelled(n *html.Node) bool {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Strong, atom.B:
		return true
	}
	return firstLabel(n) != ""
}

func isBlock(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Section, atom.Article, atom.Li, atom.Div, atom.Figure:
		return true
	}
	return false
}

func labels(n *html.Node) []string {
	var out []string
	for _, key := range labelAttrs {
		if v, ok := attr(n, key); ok && strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstLabel(n *html.Node) string {
	for _, key := range labelAttrs {
		if v, ok := attr(n, key); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		case html.ElementNode:
			if skipSubtree(n) {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

type textBuffer struct {
	parts []string
	size  int
}

func (b *textBuffer) add(s string) bool {
	s = collapseSpace(s)
	if s == "" {
		return false
	}
	b.parts = append(b.parts, s)
	b.size += len(s) + 1
	return true
}

func (b *textBuffer) addAll(values []string) bool {
	found := false
	for _, v := range values {
		found = b.add(v) || found
	}
	return found
}

func (b *textBuffer) String() string {
	return strings.Join(b.parts, " ")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}
