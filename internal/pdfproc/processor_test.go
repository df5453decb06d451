package pdfproc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/docstrata/strata-mcp/internal/logger"
)

func TestNewProcessorDefaults(t *testing.T) {
	proc := NewProcessor(0, nil)
	if proc.MaxFileSize != defaultMaxFileSize {
		t.Errorf("Expected default max file size %d, got %d", defaultMaxFileSize, proc.MaxFileSize)
	}

	proc = NewProcessor(1024, logger.NewNoOpLogger())
	if proc.MaxFileSize != 1024 {
		t.Errorf("Expected max file size 1024, got %d", proc.MaxFileSize)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4 stub content"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	upperPath := filepath.Join(dir, "REPORT.PDF")
	if err := os.WriteFile(upperPath, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	txtPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txtPath, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	proc := NewProcessor(0, logger.NewNoOpLogger())

	t.Run("valid pdf", func(t *testing.T) {
		if err := proc.ValidateFile(pdfPath); err != nil {
			t.Errorf("Expected valid file, got error: %v", err)
		}
	})

	t.Run("uppercase extension", func(t *testing.T) {
		if err := proc.ValidateFile(upperPath); err != nil {
			t.Errorf("Expected valid file, got error: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		err := proc.ValidateFile(filepath.Join(dir, "missing.pdf"))
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("Expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		err := proc.ValidateFile(dir)
		if !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("Expected ErrInvalidDocument, got %v", err)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		err := proc.ValidateFile(txtPath)
		if !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("Expected ErrInvalidDocument, got %v", err)
		}
	})

	t.Run("file too large", func(t *testing.T) {
		small := NewProcessor(4, logger.NewNoOpLogger())
		err := small.ValidateFile(pdfPath)
		if !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("Expected ErrInvalidDocument, got %v", err)
		}
	})
}
