package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Garbage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ParseKind
	}{
		{"Empty", "", ParseFailed},
		{"Whitespace", " \n\t ", ParseFailed},
		{"PlainText", "Service Unavailable", ParseFailed},
		{"Truncated", "<response><item><status>succ", ParseFailed},
		{"Mismatched", "<response><item></response>", ParseFailed},
		{"JSON", `{"status":"success"}`, ParseFailed},
		{"BinaryNoise", "\x00\x01\x02\xff\xfe", ParseFailed},
		{"HTMLDoctype", "<!DOCTYPE html><html><head><title>Login</title></head></html>", ParseHTML},
		{"HTMLLower", "  <html><body>error</body></html>", ParseHTML},
		{"Minimal", "<response/>", ParseOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out ParseOutcome
			assert.NotPanics(t, func() { out = Parse([]byte(tt.body)) })
			assert.Equal(t, tt.want, out.Kind, out.Err)
			if tt.want == ParseOK {
				assert.NotNil(t, out.Root)
			} else {
				assert.Nil(t, out.Root)
			}
		})
	}
}

func TestParse_HTMLTitle(t *testing.T) {
	out := Parse([]byte("<!doctype html><html><head><title> Wartungsarbeiten </title></head><body></body></html>"))
	assert.Equal(t, ParseHTML, out.Kind)
	assert.Equal(t, "Wartungsarbeiten", out.Title)
	assert.NotEmpty(t, out.Excerpt)
}

func TestParse_Repairs(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"BareAmpersand", "<r><message>Tom & Jerry</message></r>", "Tom & Jerry"},
		{"DoubleEncoded", "<r><message>Tom &amp;amp;amp; Jerry</message></r>", "Tom & Jerry"},
		{"HTMLEntity", "<r><message>a&nbsp;b</message></r>", "a\u00a0b"},
		{"UnknownEntity", "<r><message>&bogus; value</message></r>", "&bogus; value"},
		{"NumericEntity", "<r><message>&#252;ber</message></r>", "über"},
		{"ControlChars", "<r><message>li\x01ne\x1f</message></r>", "line"},
		{"CDATAUntouched", "<r><message><![CDATA[a & b &amp; c]]></message></r>", "a & b &amp; c"},
		{"BOM", "\xef\xbb\xbf<r><message>ok</message></r>", "ok"},
		{"Latin1", "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><r><message>M\xfcller</message></r>", "Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Parse([]byte(tt.body))
			require.Equal(t, ParseOK, out.Kind, out.Err)
			assert.False(t, out.Aggressive)
			assert.Equal(t, tt.message, out.Root.ChildText("message"))
		})
	}
}

func TestParse_AggressivePass(t *testing.T) {
	out := Parse([]byte("<r><message>bad \xff\xfe bytes</message></r>"))
	require.Equal(t, ParseOK, out.Kind, out.Err)
	assert.True(t, out.Aggressive)
	assert.Equal(t, "bad  bytes", out.Root.ChildText("message"))
}

func TestParse_FailureExcerpt(t *testing.T) {
	body := "<broken" + strings.Repeat("x", 2000)
	out := Parse([]byte(body))
	assert.Equal(t, ParseFailed, out.Kind)
	assert.Error(t, out.Err)
	assert.Len(t, []rune(out.Excerpt), ExcerptLength)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt; c", string(Sanitize([]byte("a & b &lt; c"))))
	assert.Equal(t, "&amp;", string(Sanitize([]byte("&amp;amp;"))))
	assert.Equal(t, "x &amp;", string(Sanitize([]byte("x &"))))
	assert.Equal(t, "<![CDATA[&]]>&amp;", string(Sanitize([]byte("<![CDATA[&]]>&"))))
	assert.Equal(t, "<![CDATA[open &", string(Sanitize([]byte("<![CDATA[open &"))))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "äöü", Excerpt([]byte("äöüß"), 3))
	assert.Equal(t, "short", Excerpt([]byte("short"), 10))
	assert.Equal(t, "a?b", Excerpt([]byte("a\xffb"), 10))
}

func TestNode_NilSafe(t *testing.T) {
	var n *Node
	assert.Equal(t, "", n.Name())
	assert.Equal(t, "", n.Text())
	assert.Equal(t, "", n.Attr("x"))
	assert.Nil(t, n.Child("x"))
	assert.Nil(t, n.Find("x"))
	assert.Empty(t, n.FindAll("x"))
	assert.Equal(t, "", n.Path("a", "b").ChildText("c"))
}

func TestNode_Find(t *testing.T) {
	out := Parse([]byte(`<api><response><items><item id="1"><itemID>1</itemID></item><item><itemID>2</itemID></item></items></response></api>`))
	require.Equal(t, ParseOK, out.Kind)

	root := out.Root
	assert.Equal(t, "api", root.Name())
	assert.Nil(t, root.Find("api"))
	assert.Equal(t, "1", root.Find("item").Attr("id"))
	assert.Len(t, root.FindAll("item"), 2)
	assert.Len(t, root.FindAll("itemID"), 2)
	assert.Equal(t, "2", root.Path("response", "items").ChildrenNamed("item")[1].ChildText("itemID"))
}
