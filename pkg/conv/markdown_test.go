package conv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "plain text", input: "Hello world", expected: "Hello world\n"},
		{name: "bold title", input: "**New Secreto(s)!**", expected: "<strong>New Secreto(s)!</strong>\n"},
		{name: "header tags stripped", input: "# Info", expected: "Info\n"},
		{name: "script tags sanitized", input: "<script>alert('xss')</script>", expected: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			if got != tt.expected {
				t.Errorf("MarkdownToTelegramHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeMarkdown_RendersLiterally(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
		absent   string
	}{
		{name: "emphasis", input: "*not italic*", contains: "*not italic*", absent: "<em>"},
		{name: "strong", input: "__not bold__", contains: "__not bold__", absent: "<strong>"},
		{name: "heading", input: "# not a heading", contains: "# not a heading"},
		{name: "link", input: "[click](target)", contains: "[click](target)", absent: "<a "},
		{name: "inline code", input: "`code`", contains: "`code`", absent: "<code>"},
		{name: "numbered list", input: "1. first", contains: "1. first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(EscapeMarkdown(tt.input)))
			assert.Contains(t, got, tt.contains)
			if tt.absent != "" {
				assert.NotContains(t, got, tt.absent)
			}
		})
	}
}

func TestEscapeMarkdown_HTMLIsEscaped(t *testing.T) {
	got := MarkdownToTelegramHTML([]byte(EscapeMarkdown("<b>hi</b> & bye")))

	assert.False(t, strings.Contains(got, "<b>"))
	assert.Contains(t, got, "&amp;")
}
