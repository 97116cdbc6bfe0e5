package templates

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownEngine = goldmark.New(goldmark.WithExtensions(extension.GFM))
	sanitizer      = bluemonday.UGCPolicy()
)

// Markdown converts article markdown into sanitized HTML. The output is
// sanitized after conversion, so raw HTML embedded in the source cannot
// reach the page.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
