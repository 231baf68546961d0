package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/sandevgo/secretowatch/internal/core"
	"golang.org/x/net/html"
)

const DefaultSelector = "div.msg_block"

// HTML pulls message blocks out of an HTML document.
type HTML struct {
	selector string
	matcher  goquery.Matcher
}

func NewHTML(selector string) (*HTML, error) {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &core.ConfigError{Field: "selector", Err: err}
	}

	return &HTML{selector: selector, matcher: matcher}, nil
}

func (h *HTML) Selector() string {
	return h.selector
}

// Extract returns the text of every element matching the selector, in
// document order. Each element's descendant text nodes are joined with a
// single space and trimmed. An element without text is an empty message.
//
// The parser accepts any markup, so text that merely isn't HTML yields no
// messages. Input that is not valid UTF-8 is a *core.ParseFailure.
func (h *HTML) Extract(document string) ([]core.Message, error) {
	if !utf8.ValidString(document) {
		return nil, &core.ParseFailure{Reason: "document is not valid UTF-8"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, &core.ParseFailure{Reason: "html parser failed", Err: err}
	}

	var msgs []core.Message
	doc.FindMatcher(h.matcher).Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			msgs = append(msgs, core.NewMessage(blockText(n)))
		}
	})

	return msgs, nil
}

func blockText(n *html.Node) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
