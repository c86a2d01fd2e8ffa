package analyzer

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// document is the normalized form of one piece of content. Everything
// downstream (metrics, rules) reads from it; nothing mutates it after
// parseDocument returns.
type document struct {
	blocks         []block
	paragraphs     []string
	firstParagraph string
	subheadings    []string
	sentences      []sentence
	words          []string
	headings       map[string]int
	internalLinks  int
	externalLinks  int
	imageCount     int
	imagesWithAlt  int
}

// block is one block-level chunk of text. Heading blocks are tracked so
// the first "real" paragraph can be identified.
type block struct {
	text    string
	heading bool
}

type sentence struct {
	text  string
	words []string
}

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Tags whose subtrees carry no readable text.
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"template": true,
	"svg":      true,
	"head":     true,
}

// Tags that open a new block of text when encountered.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "details": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

var headingTagSet = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// parseDocument turns raw content (HTML or plain text) into a document.
// It never fails: malformed markup is handled best-effort by the
// underlying parser, and anything unparseable is treated as plain text.
func parseDocument(content, siteDomain string) *document {
	d := &document{headings: make(map[string]int, len(headingTags))}
	for _, tag := range headingTags {
		d.headings[tag] = 0
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Cannot happen with an in-memory reader, but fall back to
		// treating the input as plain text rather than giving up.
		for _, part := range splitBlankLines(content) {
			d.blocks = append(d.blocks, block{text: part})
		}
		d.finish()
		return d
	}

	// Structural signals are collected before any text extraction.
	for _, tag := range headingTags {
		d.headings[tag] = doc.Find(tag).Length()
	}

	doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			d.subheadings = append(d.subheadings, text)
		}
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		switch classifyLink(href, siteDomain) {
		case linkInternal:
			d.internalLinks++
		case linkExternal:
			d.externalLinks++
		}
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		d.imageCount++
		if alt, ok := s.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			d.imagesWithAlt++
		}
	})

	// Drop non-content subtrees so they never reach the text pass.
	for tag := range skippedTags {
		doc.Find(tag).Remove()
	}

	if body := doc.Find("body"); len(body.Nodes) > 0 {
		w := &blockWalker{}
		w.walk(body.Nodes[0])
		w.flush()
		d.blocks = w.blocks
	}

	d.finish()
	return d
}

// finish derives paragraphs, sentences and word tokens from the
// collected blocks.
func (d *document) finish() {
	for _, b := range d.blocks {
		d.paragraphs = append(d.paragraphs, b.text)
		if d.firstParagraph == "" && !b.heading {
			d.firstParagraph = b.text
		}
		for _, text := range splitSentences(b.text) {
			words := tokenizeWords(text)
			if len(words) == 0 {
				continue
			}
			d.sentences = append(d.sentences, sentence{text: text, words: words})
			d.words = append(d.words, words...)
		}
	}
	if d.firstParagraph == "" && len(d.paragraphs) > 0 {
		d.firstParagraph = d.paragraphs[0]
	}
}

// blockWalker accumulates text while walking the node tree, cutting a
// new block at every block-level element boundary.
type blockWalker struct {
	buf       strings.Builder
	blocks    []block
	inHeading int
}

func (w *blockWalker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.buf.WriteString(n.Data)
		return
	case html.ElementNode:
		if skippedTags[n.Data] {
			return
		}
		if n.Data == "br" {
			w.buf.WriteString("\n")
			return
		}
		if blockTags[n.Data] {
			w.flush()
			if headingTagSet[n.Data] {
				w.inHeading++
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				w.walk(c)
			}
			w.flush()
			if headingTagSet[n.Data] {
				w.inHeading--
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *blockWalker) flush() {
	raw := w.buf.String()
	w.buf.Reset()
	for _, part := range splitBlankLines(raw) {
		w.blocks = append(w.blocks, block{text: part, heading: w.inHeading > 0})
	}
}

// splitBlankLines splits text into paragraphs on blank lines, joining
// the lines within each paragraph with single spaces.
func splitBlankLines(s string) []string {
	var parts []string
	var cur strings.Builder
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
			continue
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

// splitSentences cuts text after runs of sentence-terminal punctuation
// followed by whitespace or end of input. Trailing text without a
// terminator counts as a sentence. Abbreviations like "Dr." are not
// special-cased; that is a known limitation of the heuristic.
func splitSentences(text string) []string {
	var out []string
	rs := []rune(text)
	start := 0
	for i := 0; i < len(rs); i++ {
		if !isSentenceTerminal(rs[i]) {
			continue
		}
		j := i
		for j+1 < len(rs) && isSentenceTerminal(rs[j+1]) {
			j++
		}
		k := j
		for k+1 < len(rs) && isClosingMark(rs[k+1]) {
			k++
		}
		if k+1 < len(rs) && !unicode.IsSpace(rs[k+1]) {
			i = k
			continue
		}
		if s := strings.TrimSpace(string(rs[start : k+1])); s != "" {
			out = append(out, s)
		}
		start = k + 1
		i = k
	}
	if s := strings.TrimSpace(string(rs[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosingMark(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}
	return false
}

// tokenizeWords splits text on whitespace and trims punctuation from
// token edges. Interior punctuation (hyphens, apostrophes) is kept, so
// "don't" and "e-mail" stay single words.
func tokenizeWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

type linkClass int

const (
	linkInternal linkClass = iota
	linkExternal
	linkSkipped
)

// classifyLink decides whether an href points at the configured site or
// elsewhere. Relative and fragment links are internal; hosts matching
// the site domain or one of its subdomains are internal; every other
// host is external. Non-navigational schemes are skipped entirely.
func classifyLink(href, siteDomain string) linkClass {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return linkInternal
	}
	lower := strings.ToLower(href)
	for _, scheme := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(lower, scheme) {
			return linkSkipped
		}
	}
	u, err := url.Parse(href)
	if err != nil {
		return linkSkipped
	}
	if u.Host == "" {
		return linkInternal
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if siteDomain != "" && (host == siteDomain || strings.HasSuffix(host, "."+siteDomain)) {
		return linkInternal
	}
	return linkExternal
}

// normalizeDomain reduces a configured site domain to a bare lowercase
// hostname. Accepts either "example.com" or a full URL.
func normalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return ""
	}
	if strings.Contains(domain, "://") {
		if u, err := url.Parse(domain); err == nil && u.Hostname() != "" {
			domain = u.Hostname()
		}
	}
	domain = strings.TrimSuffix(domain, "/")
	return strings.TrimPrefix(domain, "www.")
}
