package handlers

import (
	"bytes"
	"html/template"
	"log"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var descriptionPolicy = bluemonday.UGCPolicy()

// RenderDescription renders a backend-supplied product description, treated
// as Markdown, into sanitized HTML. Render failures degrade to escaped plain
// text; nothing from the backend reaches the page unsanitized.
func RenderDescription(markdown string) template.HTML {
	if markdown == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		log.Printf("RenderDescription - Markdown render failed: %v", err)
		return template.HTML(template.HTMLEscapeString(markdown))
	}
	return template.HTML(descriptionPolicy.SanitizeBytes(buf.Bytes()))
}
