package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ParseHTML parses an HTML string and returns a Document.
func ParseHTML(htmlContent string) (*Document, error) {
	return Parse(strings.NewReader(htmlContent))
}

// Parse reads an HTML document from r. The parser always produces an
// html/head/body skeleton. Text is kept only as each element's own Text;
// comments and the doctype are dropped.
func Parse(r io.Reader) (*Document, error) {
	netDoc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	doc := NewDocument()
	for c := netDoc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			doc.SetDocumentElement(convertHTMLTree(c, doc))
			break
		}
	}
	return doc, nil
}

// convertHTMLTree converts an html.Node element subtree to Elements.
func convertHTMLTree(src *html.Node, doc *Document) *Element {
	el := doc.CreateElement(src.Data)
	for _, attr := range src.Attr {
		if attr.Namespace == "" {
			el.SetAttribute(attr.Key, attr.Val)
		}
	}
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el.AppendChild(convertHTMLTree(c, doc))
		case html.TextNode:
			el.text += c.Data
		}
	}
	return el
}
