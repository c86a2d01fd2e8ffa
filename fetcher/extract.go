package fetcher

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// convertToUTF8 decodes the body to UTF-8 using the charset declared in
// the Content-Type header or the page itself
func convertToUTF8(body []byte, contentType string) ([]byte, error) {
	e, name, _ := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" {
		return body, nil
	}

	reader := transform.NewReader(bytes.NewReader(body), e.NewDecoder())
	return io.ReadAll(reader)
}

// extractMetadata pulls the page title and meta description, falling
// back to the OpenGraph tags
func extractMetadata(body []byte) (title, metaDescription string) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", ""
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		og, _ := doc.Find("meta[property='og:title']").Attr("content")
		title = strings.TrimSpace(og)
	}

	metaDescription, _ = doc.Find("meta[name='description']").Attr("content")
	metaDescription = strings.TrimSpace(metaDescription)
	if metaDescription == "" {
		og, _ := doc.Find("meta[property='og:description']").Attr("content")
		metaDescription = strings.TrimSpace(og)
	}

	return title, metaDescription
}

// extractMainContent returns the main article HTML, or the whole body
// when the readability algorithm cannot find one
func extractMainContent(body []byte, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{Scheme: "https", Host: "localhost"}
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		return article.Content
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return string(body)
	}

	bodyHTML, err := doc.Find("body").Html()
	if err != nil || strings.TrimSpace(bodyHTML) == "" {
		return string(body)
	}
	return bodyHTML
}
