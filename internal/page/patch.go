package page

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Default rewrite rules.
const (
	DefaultImagesRoot  = "images/"
	DefaultPlaceholder = "placeholder.svg"
)

// ErrIneligible reports an element whose current reference must not be
// replaced.
var ErrIneligible = errors.New("reference not eligible for rewrite")

// lazyAttrs mirror src or srcset for lazy-loading scripts and are rewritten
// only when already present.
var lazyAttrs = []string{"data-src", "data-srcset", "data-lazy-src"}

// Patcher applies a resolved file to an element.
type Patcher interface {
	// Eligible reports whether the element's current reference may be replaced.
	Eligible(e *Element) bool
	// TargetPath returns the reference Apply would write for file.
	TargetPath(file string) string
	// Apply rewrites the element to point at file and returns the written
	// reference. It returns ErrIneligible without touching the element when
	// Eligible is false.
	Apply(e *Element, file string) (string, error)
}

// HTMLPatcher rewrites references to ImagesRoot + file. Only placeholders and
// references already under ImagesRoot are replaced.
type HTMLPatcher struct {
	ImagesRoot   string
	Placeholders []string
}

func (p HTMLPatcher) root() string {
	root := strings.TrimPrefix(strings.TrimSpace(p.ImagesRoot), "./")
	if root == "" {
		root = DefaultImagesRoot
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root
}

func (p HTMLPatcher) placeholders() []string {
	if len(p.Placeholders) == 0 {
		return []string{DefaultPlaceholder}
	}
	return p.Placeholders
}

// TargetPath returns the reference written for file.
func (p HTMLPatcher) TargetPath(file string) string {
	return p.root() + strings.TrimLeft(strings.TrimSpace(file), "/")
}

// Eligible implements Patcher.
func (p HTMLPatcher) Eligible(e *Element) bool {
	ref := strings.TrimPrefix(e.Reference(), "./")
	if ref == "" {
		return false
	}
	for _, name := range p.placeholders() {
		if name != "" && strings.HasSuffix(ref, name) {
			return true
		}
	}
	return strings.HasPrefix(ref, p.root())
}

type attrWrite struct {
	node   *html.Node
	key    string
	val    string
	remove bool
}

// Apply implements Patcher. All writes for the element are planned first and
// then applied together.
func (p HTMLPatcher) Apply(e *Element, file string) (string, error) {
	if strings.TrimLeft(strings.TrimSpace(file), "/") == "" {
		return "", fmt.Errorf("apply %s: empty file name", e.Describe())
	}
	if !p.Eligible(e) {
		return "", fmt.Errorf("apply %s: %w: %q", e.Describe(), ErrIneligible, e.Reference())
	}
	target := p.TargetPath(file)

	var plan []attrWrite
	switch e.kind {
	case KindImage:
		plan = imageWrites(e.node, target)
	case KindBackground:
		style, ok := replaceBackgroundURL(e.Attr("style"), target)
		if !ok {
			return "", fmt.Errorf("apply %s: background url not found", e.Describe())
		}
		plan = []attrWrite{{node: e.node, key: "style", val: style}}
	}

	for _, w := range plan {
		if w.remove {
			removeAttr(w.node, w.key)
			continue
		}
		setAttr(w.node, w.key, w.val)
	}
	return target, nil
}

func imageWrites(img *html.Node, target string) []attrWrite {
	plan := []attrWrite{
		{node: img, key: "src", val: target},
		{node: img, key: "srcset", val: target},
		{node: img, key: "loading", remove: true},
		{node: img, key: "decoding", remove: true},
	}
	for _, key := range lazyAttrs {
		if _, ok := attr(img, key); ok {
			plan = append(plan, attrWrite{node: img, key: key, val: target})
		}
	}
	if pic := img.Parent; pic != nil && pic.DataAtom == atom.Picture {
		for c := pic.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Source {
				plan = append(plan, attrWrite{node: c, key: "srcset", val: target})
			}
		}
	}
	return plan
}
