// Package content formats editor-supplied event text: markdown bodies,
// excerpts, plain text fields and slugs.
package content

import (
	"bytes"
	"html"
	"html/template"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"snapevents/internal/domain"
)

// excerptMore is appended to excerpts cut at the word limit.
const excerptMore = " […]"

var (
	slugRegex       = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Formatter implements domain.ContentFormatter with goldmark and bluemonday.
type Formatter struct {
	md     goldmark.Markdown
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
}

// NewFormatter returns a Formatter with the default markdown extensions.
func NewFormatter() *Formatter {
	return &Formatter{
		md:     goldmark.New(),
		strict: bluemonday.StrictPolicy(),
		ugc:    bluemonday.UGCPolicy(),
	}
}

var _ domain.ContentFormatter = (*Formatter)(nil)

func (f *Formatter) Text(s string) string {
	// StrictPolicy escapes what it keeps; text fields are stored unescaped
	// and escaped again by the templates.
	return strings.TrimSpace(html.UnescapeString(f.strict.Sanitize(s)))
}

func (f *Formatter) Body(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return template.HTML(f.ugc.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized by UGC policy
}

func (f *Formatter) Excerpt(manual, content string) string {
	if strings.TrimSpace(manual) != "" {
		return strings.TrimSpace(manual)
	}
	body, err := f.Body(content)
	if err != nil {
		body = template.HTML(content)
	}
	return TrimWords(f.Text(string(body)), domain.ExcerptWords)
}

// Slug lowercases the title, removes accents and keeps only [a-z0-9-].
func (f *Formatter) Slug(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ := transform.String(t, title)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), "-")
	s = slugRegex.ReplaceAllString(s, "")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// TrimWords keeps the first n whitespace separated words of s, appending a
// continuation marker when anything was cut.
func TrimWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + excerptMore
}
