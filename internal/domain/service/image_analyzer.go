package service

import (
	"context"
	"io"
)

// ListingSuggestion is the best-effort structured guess returned by the image
// analyzer. Every field is optional and advisory; the autofill merge decides
// what actually lands in the draft.
type ListingSuggestion struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Category    string   `json:"category,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Color       string   `json:"color,omitempty"`
	Height      float64  `json:"height,omitempty"`
	Width       float64  `json:"width,omitempty"`
	Depth       float64  `json:"depth,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ImageAnalyzer is the AI collaborator behind listing autofill. Failure of
// the analyzer must never block manual listing entry.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, image io.Reader, contentType string) (*ListingSuggestion, error)
}

type FileUploadService interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string, isPublic bool) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	Close() error
}
