// Package page parses an HTML page, finds its image-bearing elements, pulls
// descriptive text from around each one and rewrites image references.
//
// An element is either an <img> (its reference is src) or any element whose
// inline style sets background or background-image to a url(). Rewrites only
// touch reference attributes; the tree shape is never changed.
package page
