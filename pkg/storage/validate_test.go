package storage_test

import (
	"testing"

	"go-jobboard-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
)

func TestValidateResume(t *testing.T) {
	pdf := append([]byte("%PDF-1.7"), make([]byte, 64)...)
	docx := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 64)...)
	doc := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 64)...)

	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  bool
	}{
		{"valid pdf", "resume.pdf", pdf, false},
		{"valid docx", "resume.docx", docx, false},
		{"valid doc", "resume.doc", doc, false},
		{"uppercase extension", "RESUME.PDF", pdf, false},
		{"disallowed extension", "resume.exe", pdf, true},
		{"no extension", "resume", pdf, true},
		{"spoofed content", "resume.pdf", docx, true},
		{"renamed binary", "resume.docx", []byte{0x7F, 0x45, 0x4C, 0x46, 0x02, 0x01}, true},
		{"empty file", "resume.pdf", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.ValidateResume(tt.filename, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
