package pageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPageURL tests the behavior of GetPageURL across query shapes.
//
// It verifies:
//   - A URL without a query string gains a lone page parameter
//   - An existing page parameter is replaced, not appended to
//   - Multi-valued parameters keep their values and relative order
//   - Non-query URL components pass through unchanged
func TestGetPageURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		page int
		want string
	}{
		{
			name: "no query string",
			url:  "http://example.com/api/collections",
			page: 2,
			want: "http://example.com/api/collections?page=2",
		},
		{
			name: "existing parameters preserved",
			url:  "http://x/?a=1&a=2",
			page: 1,
			want: "http://x/?a=1&a=2&page=1",
		},
		{
			name: "existing page replaced in place",
			url:  "http://x/?page=3&q=foo",
			page: 7,
			want: "http://x/?page=7&q=foo",
		},
		{
			name: "fragment preserved",
			url:  "https://host/path?q=1#frag",
			page: 4,
			want: "https://host/path?q=1&page=4#frag",
		},
		{
			name: "parameter order preserved",
			url:  "http://x/?z=9&a=1&m=5",
			page: 1,
			want: "http://x/?z=9&a=1&m=5&page=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPageURL(tt.url, tt.page))
		})
	}
}

// TestGetPageURLEscaping tests percent-escape handling during rewrite.
//
// It verifies:
//   - Escaped values are decoded and re-encoded equivalently
//   - Undecodable escapes pass through rather than being dropped
func TestGetPageURLEscaping(t *testing.T) {
	t.Run("space re-encoded as plus", func(t *testing.T) {
		got := GetPageURL("http://x/?q=a%20b", 1)
		assert.Equal(t, "http://x/?q=a+b", got)
	})

	t.Run("plus stays plus", func(t *testing.T) {
		got := GetPageURL("http://x/?q=a+b", 1)
		assert.Equal(t, "http://x/?q=a+b", got)
	})
}

// TestGetPageURLMalformed tests best-effort behavior for unparsable URLs.
//
// It verifies:
//   - A URL that cannot be parsed is echoed back unchanged
func TestGetPageURLMalformed(t *testing.T) {
	malformed := "://missing-scheme"
	assert.Equal(t, malformed, GetPageURL(malformed, 1))
}

// TestGetPageURLBlankValues tests that blank parameter values are treated as absent.
//
// It verifies:
//   - Parameters with empty values are dropped during the rewrite
func TestGetPageURLBlankValues(t *testing.T) {
	got := GetPageURL("http://x/?a=&b=2", 1)
	assert.Equal(t, "http://x/?b=2&page=1", got)
}
