package page

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Kind distinguishes how an element carries its image.
type Kind int

const (
	KindImage Kind = iota
	KindBackground
)

func (k Kind) String() string {
	if k == KindBackground {
		return "background"
	}
	return "img"
}

// Element is one image-bearing node of a Document.
type Element struct {
	node  *html.Node
	kind  Kind
	index int
}

// Kind reports whether the element is an <img> or a CSS background.
func (e *Element) Kind() Kind { return e.kind }

// Index is the element's position among all elements of its document.
func (e *Element) Index() int { return e.index }

// Attr returns the value of an attribute, or "" when absent.
func (e *Element) Attr(key string) string {
	v, _ := attr(e.node, key)
	return v
}

// Reference returns the current image reference: src for images, the url()
// argument for backgrounds.
func (e *Element) Reference() string {
	if e.kind == KindBackground {
		ref, _ := backgroundURL(e.Attr("style"))
		return ref
	}
	return strings.TrimSpace(e.Attr("src"))
}

// Describe returns a short label such as img#hero or div.card for reports.
func (e *Element) Describe() string {
	label := e.node.Data
	if id := strings.TrimSpace(e.Attr("id")); id != "" {
		return label + "#" + id
	}
	if class := strings.Fields(e.Attr("class")); len(class) > 0 {
		return label + "." + class[0]
	}
	return fmt.Sprintf("%s[%d]", label, e.index)
}
