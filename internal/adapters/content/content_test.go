package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Text(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		in   string
		want string
	}{
		{"  Jazz Night  ", "Jazz Night"},
		{"<b>Bold</b> move", "Bold move"},
		{`<script>alert(1)</script>Hall`, "Hall"},
		{"Rock & Roll", "Rock & Roll"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Text(tt.in))
		})
	}
}

func TestFormatter_Body(t *testing.T) {
	f := NewFormatter()

	got, err := f.Body("# Lineup\n\nDoors at **7pm**.\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	s := string(got)
	assert.Contains(t, s, "<h1")
	assert.Contains(t, s, "<strong>7pm</strong>")
	assert.NotContains(t, s, "<script")
}

func TestFormatter_Excerpt(t *testing.T) {
	f := NewFormatter()

	assert.Equal(t, "Manual summary", f.Excerpt("  Manual summary ", "ignored body"))

	short := f.Excerpt("", "A *short* body.")
	assert.Equal(t, "A short body.", short)

	long := strings.Repeat("word ", 40)
	got := f.Excerpt("", long)
	assert.Equal(t, strings.TrimSpace(strings.Repeat("word ", 25))+" […]", got)
}

func TestTrimWords(t *testing.T) {
	assert.Equal(t, "", TrimWords("", 25))
	assert.Equal(t, "one two", TrimWords(" one \n two ", 2))
	assert.Equal(t, "one […]", TrimWords("one two", 1))
}

func TestFormatter_Slug(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		in   string
		want string
	}{
		{"Jazz Night", "jazz-night"},
		{"Café Olé: Live!", "cafe-ole-live"},
		{"  Multiple   spaces -- here ", "multiple-spaces-here"},
		{"2027 Gala", "2027-gala"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Slug(tt.in))
		})
	}
}
