package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The empleos.net markup mixes accented and unaccented spellings of its
// Spanish labels ("Área del Puesto" vs "Area del Puesto"). Label regexps in
// this package are written lowercase and unaccented; node text is folded
// through this transform before matching.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldText(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// cleanText collapses runs of whitespace (including non-breaking spaces)
// into single spaces and trims the ends.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// findText returns the first text node in document order whose folded text
// matches re, or nil.
func findText(doc *goquery.Document, re *regexp.Regexp) *html.Node {
	return findTextFunc(doc, func(s string) bool { return re.MatchString(foldText(s)) })
}

// findTextRaw is findText without accent folding, for patterns that care
// about case or accented characters.
func findTextRaw(doc *goquery.Document, re *regexp.Regexp) *html.Node {
	return findTextFunc(doc, re.MatchString)
}

func findTextFunc(doc *goquery.Document, match func(string) bool) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.TextNode && match(n.Data) {
			found = n
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, root := range doc.Nodes {
		if walk(root) {
			break
		}
	}
	return found
}

// findByClass returns the first element in document order whose class
// attribute matches re, or nil. An optional tag restricts the match to that
// element name.
func findByClass(doc *goquery.Document, re *regexp.Regexp, tag string) *goquery.Selection {
	sel := "[class]"
	if tag != "" {
		sel = tag + "[class]"
	}
	var found *goquery.Selection
	doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		if re.MatchString(foldText(class)) {
			found = s
			return false
		}
		return true
	})
	return found
}

// nextSiblingElement returns the next sibling of n that is an element node.
func nextSiblingElement(n *html.Node) *html.Node {
	for cur := n.NextSibling; cur != nil; cur = cur.NextSibling {
		if cur.Type == html.ElementNode {
			return cur
		}
	}
	return nil
}

// nextElement returns the first element node strictly after n in document
// order (pre-order, so an element's own children come first).
func nextElement(n *html.Node) *html.Node {
	for cur := nextNode(n); cur != nil; cur = nextNode(cur) {
		if cur.Type == html.ElementNode {
			return cur
		}
	}
	return nil
}

func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// labelValue implements the label-then-value idiom: find the first text
// node matching the label pattern, then read the flattened text of the
// enclosing element's next sibling, falling back to the next element in
// document order.
func labelValue(doc *goquery.Document, label *regexp.Regexp) string {
	labelNode := findText(doc, label)
	if labelNode == nil || labelNode.Parent == nil {
		return ""
	}
	value := nextSiblingElement(labelNode.Parent)
	if value == nil {
		value = nextElement(labelNode.Parent)
	}
	if value == nil {
		return ""
	}
	return cleanText(nodeText(value))
}

// nodeText flattens all descendant text of n into one string.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// nodeLines flattens descendant text one trimmed line per text node,
// dropping blanks. Used for multi-paragraph values like descriptions.
func nodeLines(n *html.Node) string {
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := cleanText(n.Data); t != "" {
				lines = append(lines, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(lines, "\n")
}
