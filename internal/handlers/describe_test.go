package handlers

import (
	"strings"
	"testing"
)

func TestRenderDescriptionMarkdown(t *testing.T) {
	got := string(RenderDescription("Pure **Kanjivaram** silk\n\n- zari border\n- temple motif"))
	if !strings.Contains(got, "<strong>Kanjivaram</strong>") {
		t.Errorf("bold markdown not rendered: %q", got)
	}
	if !strings.Contains(got, "<li>") {
		t.Errorf("list markdown not rendered: %q", got)
	}
}

func TestRenderDescriptionStripsScripts(t *testing.T) {
	got := string(RenderDescription(`Nice saree <script>alert("x")</script> indeed`))
	if strings.Contains(got, "<script") {
		t.Errorf("script tag survived sanitization: %q", got)
	}
	if !strings.Contains(got, "Nice saree") {
		t.Errorf("benign text lost: %q", got)
	}
}

func TestRenderDescriptionEmpty(t *testing.T) {
	if got := string(RenderDescription("")); got != "" {
		t.Errorf("RenderDescription(\"\") = %q, want empty", got)
	}
}
