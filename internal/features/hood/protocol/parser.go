package protocol

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// ParseKind classifies a parse attempt.
type ParseKind int

const (
	// ParseOK means Root holds the document.
	ParseOK ParseKind = iota
	// ParseHTML means the body was an HTML page, usually a wrong endpoint or a login redirect.
	ParseHTML
	// ParseFailed means the body could not be read as XML even after aggressive cleaning.
	ParseFailed
)

func (k ParseKind) String() string {
	switch k {
	case ParseOK:
		return "ok"
	case ParseHTML:
		return "html"
	default:
		return "failed"
	}
}

// ExcerptLength is the size of the raw body excerpt kept with parse failures.
const ExcerptLength = 500

// ParseOutcome is the result of Parse. It never carries a nil Root when Kind is ParseOK.
type ParseOutcome struct {
	Kind ParseKind
	Root *Node
	// Title is the <title> of an HTML page.
	Title string
	// Err describes why parsing failed.
	Err error
	// Excerpt is the head of the raw body, set when Kind is not ParseOK.
	Excerpt string
	// Aggressive is true when only the second cleaning pass produced a document.
	Aggressive bool
}

var (
	controlChars  = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	nonPrintables = regexp.MustCompile(`[^\x20-\x7E\n\r\t]`)
	entityRef     = regexp.MustCompile(`^&(#[0-9]+|#x[0-9a-fA-F]+|[A-Za-z][A-Za-z0-9]*);`)
	utf8BOM       = []byte("\xef\xbb\xbf")
	cdataOpen     = []byte("<![CDATA[")
	cdataClose    = []byte("]]>")
	ampEntity     = []byte("&amp;")
	ampTail       = []byte("amp;")
)

// Parse turns a response body into a navigable document. It never panics and never
// returns an error value; every failure is reported through the outcome.
func Parse(body []byte) (out ParseOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = ParseOutcome{Kind: ParseFailed, Err: fmt.Errorf("parser panic: %v", r), Excerpt: Excerpt(body, ExcerptLength)}
		}
	}()

	trimmed := bytes.TrimSpace(bytes.TrimPrefix(body, utf8BOM))
	if len(trimmed) == 0 {
		return ParseOutcome{Kind: ParseFailed, Err: fmt.Errorf("empty response body")}
	}

	if IsHTML(trimmed) {
		return ParseOutcome{Kind: ParseHTML, Title: htmlTitle(trimmed), Excerpt: Excerpt(trimmed, ExcerptLength)}
	}

	cleaned := Sanitize(trimmed)
	root, err := decode(cleaned)
	if err == nil {
		return ParseOutcome{Kind: ParseOK, Root: root}
	}

	root, err2 := decode(nonPrintables.ReplaceAll(cleaned, nil))
	if err2 == nil {
		return ParseOutcome{Kind: ParseOK, Root: root, Aggressive: true}
	}

	return ParseOutcome{
		Kind:    ParseFailed,
		Err:     fmt.Errorf("invalid XML: %w", err),
		Excerpt: Excerpt(trimmed, ExcerptLength),
	}
}

// IsHTML reports whether the body starts with an HTML document marker.
func IsHTML(body []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(body))
	if len(head) > 32 {
		head = head[:32]
	}
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}

// Sanitize strips control characters and repairs ampersands outside CDATA sections:
// double-encoded entities are collapsed and bare or unknown ones are escaped.
func Sanitize(body []byte) []byte {
	body = controlChars.ReplaceAll(body, nil)

	var buf bytes.Buffer
	buf.Grow(len(body) + 16)
	for i := 0; i < len(body); i++ {
		rest := body[i:]

		if bytes.HasPrefix(rest, cdataOpen) {
			end := bytes.Index(rest, cdataClose)
			if end < 0 {
				buf.Write(rest)
				break
			}
			buf.Write(rest[:end+len(cdataClose)])
			i += end + len(cdataClose) - 1
			continue
		}

		if body[i] != '&' {
			buf.WriteByte(body[i])
			continue
		}

		if bytes.HasPrefix(rest, ampEntity) {
			j := len(ampEntity)
			for bytes.HasPrefix(rest[j:], ampTail) {
				j += len(ampTail)
			}
			buf.Write(ampEntity)
			i += j - 1
			continue
		}

		if m := entityRef.FindSubmatch(rest); m != nil && knownEntity(string(m[1])) {
			buf.Write(m[0])
			i += len(m[0]) - 1
			continue
		}

		buf.Write(ampEntity)
	}
	return buf.Bytes()
}

func knownEntity(name string) bool {
	if strings.HasPrefix(name, "#") {
		return true
	}
	switch name {
	case "amp", "lt", "gt", "quot", "apos":
		return true
	}
	_, ok := xml.HTMLEntity[name]
	return ok
}

// Excerpt returns at most n runes of body, for logs and audit rows.
func Excerpt(body []byte, n int) string {
	s := string(body)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "?")
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func decode(body []byte) (*Node, error) {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.Strict = true
	d.Entity = xml.HTMLEntity
	d.CharsetReader = charset.NewReaderLabel

	var root Node
	if err := d.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

func htmlTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
