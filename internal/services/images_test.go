package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
)

// uploadHeaders builds real multipart file headers from in-memory parts.
func uploadHeaders(t *testing.T, files []struct {
	name, contentType, body string
}) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="newImages"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		if _, err := part.Write([]byte(f.body)); err != nil {
			t.Fatalf("Write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["newImages"]
}

func oneUpload(t *testing.T, name, contentType, body string) *multipart.FileHeader {
	t.Helper()
	headers := uploadHeaders(t, []struct{ name, contentType, body string }{
		{name, contentType, body},
	})
	if len(headers) != 1 {
		t.Fatalf("got %d headers, want 1", len(headers))
	}
	return headers[0]
}

func TestValidateImageUpload(t *testing.T) {
	good := oneUpload(t, "saree.jpg", "image/jpeg", "jpegbytes")
	if err := ValidateImageUpload(good); err != nil {
		t.Errorf("ValidateImageUpload(image) = %v, want nil", err)
	}

	notImage := oneUpload(t, "notes.pdf", "application/pdf", "pdfbytes")
	if err := ValidateImageUpload(notImage); err == nil {
		t.Error("ValidateImageUpload accepted a non-image")
	}

	big := oneUpload(t, "huge.jpg", "image/jpeg", "x")
	big.Size = MaxImageUploadBytes + 1
	if err := ValidateImageUpload(big); err == nil {
		t.Error("ValidateImageUpload accepted an oversized file")
	}
}

func TestEncodeImageFile(t *testing.T) {
	header := oneUpload(t, "saree.png", "image/png", "pngbytes")
	got, err := EncodeImageFile(header)
	if err != nil {
		t.Fatalf("EncodeImageFile = %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("EncodeImageFile prefix = %q", got)
	}
}

func TestResolveImageOrder(t *testing.T) {
	uploads := uploadHeaders(t, []struct{ name, contentType, body string }{
		{"a.png", "image/png", "aaa"},
		{"b.png", "image/png", "bbb"},
	})

	sources, err := ResolveImageOrder([]string{"new:1", "existing:/img/kept.jpg", "new:0"}, uploads)
	if err != nil {
		t.Fatalf("ResolveImageOrder = %v", err)
	}
	if len(sources) != 3 {
		t.Fatalf("got %d sources, want 3", len(sources))
	}
	if sources[1] != "/img/kept.jpg" {
		t.Errorf("existing source misplaced: %v", sources)
	}
	if !strings.HasPrefix(sources[0], "data:image/png;base64,") || sources[0] == sources[2] {
		t.Errorf("new uploads not resolved in order: %v", sources)
	}
}

func TestResolveImageOrderFailures(t *testing.T) {
	uploads := uploadHeaders(t, []struct{ name, contentType, body string }{
		{"a.png", "image/png", "aaa"},
	})

	tests := []struct {
		name string
		refs []string
	}{
		{"out of range index", []string{"new:5"}},
		{"negative index", []string{"new:-1"}},
		{"garbage reference", []string{"wat:/img/a.jpg"}},
		{"empty existing source", []string{"existing: "}},
		{"failure aborts whole list", []string{"existing:/img/ok.jpg", "new:9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveImageOrder(tt.refs, uploads); err == nil {
				t.Errorf("ResolveImageOrder(%v) succeeded, want error", tt.refs)
			}
		})
	}
}

func TestResolveImageOrderRejectsBadUpload(t *testing.T) {
	uploads := uploadHeaders(t, []struct{ name, contentType, body string }{
		{"notes.txt", "text/plain", "hello"},
	})
	if _, err := ResolveImageOrder([]string{"new:0"}, uploads); err == nil {
		t.Error("ResolveImageOrder accepted a non-image upload")
	}
}
