package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Magic byte signatures for the allowed resume formats.
var resumeMagicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},         // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                 // ZIP (PK..)
}

// ValidateResume checks that the upload is a pdf, doc or docx and that its
// content matches the claimed extension. Extension whitelisting alone is not
// enough; a renamed binary must not pass.
func ValidateResume(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ErrInvalidResume{Reason: "file has no extension"}
	}

	signatures, ok := resumeMagicBytes[ext]
	if !ok {
		return ErrInvalidResume{Reason: "file extension not allowed: " + ext}
	}

	if len(data) < 4 {
		return ErrInvalidResume{Reason: "file too small to validate"}
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return nil
		}
	}
	return ErrInvalidResume{Reason: "file content does not match extension"}
}

type ErrInvalidResume struct {
	Reason string
}

func (e ErrInvalidResume) Error() string {
	return "invalid resume: " + e.Reason
}
