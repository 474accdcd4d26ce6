package domain

import "html/template"

// ExcerptWords is the word limit of excerpts derived from event content.
const ExcerptWords = 25

// ContentFormatter turns editor-supplied text into safe display text.
type ContentFormatter interface {
	// Text strips all markup and surrounding whitespace from a text field.
	Text(s string) string
	// Body renders markdown content to sanitized HTML.
	Body(markdown string) (template.HTML, error)
	// Excerpt returns the manual excerpt when set, otherwise the first
	// ExcerptWords words of the rendered content.
	Excerpt(manual, content string) string
	// Slug derives a URL slug from a title.
	Slug(title string) string
}
