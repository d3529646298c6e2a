package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const blockElements = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote, tr"

// stripHTML returns the text content of an HTML fragment. Block boundaries
// become newlines; whitespace inside a line collapses to single spaces.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return tidy(s)
	}
	doc.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(newline())
	})
	doc.Find(blockElements).Each(func(_ int, block *goquery.Selection) {
		block.AppendNodes(newline())
	})
	return tidy(doc.Text())
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}

func tidy(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
