package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"litgen_backend/internal/config"
	"litgen_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	paragraphNumberPattern = regexp.MustCompile(`(?m)^(\d+)\t`)
	sectionBreakPattern    = regexp.MustCompile(`---------- (.*?) ----------`)
)

// ExportService prepares passage documents for Google Docs. Docs has no
// unauthenticated import API, so the flow is clipboard-based: the
// content is reformatted for pasting, and the returned URL opens a new
// blank document titled after the passage. When KeepCopies is on, the
// formatted text is also written to the storage provider.
type ExportService struct {
	config  config.ExportConfig
	storage StorageProvider
}

func NewExportService(cfg config.ExportConfig, storage StorageProvider) *ExportService {
	return &ExportService{config: cfg, storage: storage}
}

// ExportResult tells the client what to open and what to paste.
// IsLargeDocument signals that the client must use the clipboard flow
// rather than packing content into the URL; every passage qualifies.
type ExportResult struct {
	URL             string `json:"url"`
	StorageURL      string `json:"storageUrl,omitempty"`
	Content         string `json:"content"`
	IsLargeDocument bool   `json:"isLargeDocument"`
	Success         bool   `json:"success"`
}

// ExportToGoogleDocs reformats the passage for a word processor and
// builds the create-document URL.
func (s *ExportService) ExportToGoogleDocs(ctx context.Context, title, content string) *ExportResult {
	formatted := FormatForDocs(content)

	docURL := s.config.GoogleDocsBaseURL + "?title=" + url.QueryEscape(title)

	storageURL := ""
	if s.config.KeepCopies && s.storage != nil {
		filename := uuid.New().String() + ".txt"
		body := title + "\n\n" + formatted
		u, err := s.storage.Upload(ctx, filename, strings.NewReader(body), int64(len(body)), "text/plain")
		if err != nil {
			logger.Log.Warn("failed to keep export copy", zap.String("file", filename), zap.Error(err))
		} else {
			storageURL = u
		}
	}

	return &ExportResult{
		URL:             docURL,
		StorageURL:      storageURL,
		Content:         formatted,
		IsLargeDocument: true,
		Success:         true,
	}
}

// FormatForDocs converts the internal passage layout to one that pastes
// cleanly: tab-numbered paragraphs become "N. " and dashed section
// markers become bold headings.
func FormatForDocs(content string) string {
	out := paragraphNumberPattern.ReplaceAllString(content, "$1. ")
	out = sectionBreakPattern.ReplaceAllString(out, "** $1 **\n")
	return out
}
