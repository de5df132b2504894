package service

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"litgen_backend/internal/config"
)

func TestFormatForDocs(t *testing.T) {
	content := "1\tThe first paragraph.\n\n2\tThe second paragraph.\n\n---------- Footnotes ----------\nhabitat: a natural home."
	got := FormatForDocs(content)

	if !strings.Contains(got, "1. The first paragraph.") {
		t.Errorf("paragraph 1 not renumbered: %q", got)
	}
	if !strings.Contains(got, "2. The second paragraph.") {
		t.Errorf("paragraph 2 not renumbered: %q", got)
	}
	if !strings.Contains(got, "** Footnotes **\n") {
		t.Errorf("section marker not converted: %q", got)
	}
	if strings.Contains(got, "\t") {
		t.Errorf("tabs survived formatting: %q", got)
	}
}

func TestFormatForDocsIgnoresInlineNumbers(t *testing.T) {
	content := "1\tIn 1969, 12\tpeople is not a paragraph marker."
	got := FormatForDocs(content)

	if !strings.HasPrefix(got, "1. ") {
		t.Errorf("leading marker not converted: %q", got)
	}
	if strings.Contains(got, "12. people") {
		t.Errorf("mid-line number was converted: %q", got)
	}
}

func TestExportToGoogleDocs(t *testing.T) {
	svc := NewExportService(config.ExportConfig{
		GoogleDocsBaseURL: "https://docs.google.com/document/create",
	}, nil)

	result := svc.ExportToGoogleDocs(context.Background(), "My Passage & Notes", "1\tBody.")

	if result.URL != "https://docs.google.com/document/create?title=My+Passage+%26+Notes" {
		t.Errorf("url = %q", result.URL)
	}
	if !result.IsLargeDocument {
		t.Error("IsLargeDocument must be true for the clipboard flow")
	}
	if !result.Success {
		t.Error("Success should be true")
	}
	if result.Content != "1. Body." {
		t.Errorf("content = %q", result.Content)
	}
	if result.StorageURL != "" {
		t.Errorf("no storage configured but StorageURL = %q", result.StorageURL)
	}
}

// Clients read the document link from the "url" field; the wire shape
// is part of the API contract.
func TestExportResultWireShape(t *testing.T) {
	svc := NewExportService(config.ExportConfig{
		GoogleDocsBaseURL: "https://docs.google.com/document/create",
	}, nil)

	result := svc.ExportToGoogleDocs(context.Background(), "T", "1\tBody.")

	payload, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"url", "content", "isLargeDocument", "success"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("payload missing %q: %s", key, payload)
		}
	}
	if _, ok := decoded["documentUrl"]; ok {
		t.Errorf("payload carries a stray documentUrl field: %s", payload)
	}
	if _, ok := decoded["storageUrl"]; ok {
		t.Errorf("storageUrl should be omitted when no copy is kept: %s", payload)
	}
}

type memoryStorage struct {
	files map[string]string
}

func (m *memoryStorage) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if m.files == nil {
		m.files = make(map[string]string)
	}
	m.files[filename] = string(body)
	return "/exports/" + filename, nil
}

func (m *memoryStorage) Delete(ctx context.Context, filename string) error {
	delete(m.files, filename)
	return nil
}

func (m *memoryStorage) GetURL(filename string) string {
	return "/exports/" + filename
}

func TestExportKeepsCopyWhenConfigured(t *testing.T) {
	store := &memoryStorage{}
	svc := NewExportService(config.ExportConfig{
		GoogleDocsBaseURL: "https://docs.google.com/document/create",
		KeepCopies:        true,
	}, store)

	result := svc.ExportToGoogleDocs(context.Background(), "Title", "1\tBody.")

	if len(store.files) != 1 {
		t.Fatalf("stored %d copies, want 1", len(store.files))
	}
	if result.StorageURL == "" {
		t.Error("StorageURL should point at the stored copy")
	}
	for _, body := range store.files {
		if !strings.Contains(body, "1. Body.") {
			t.Errorf("stored copy not formatted: %q", body)
		}
	}
}
