package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxFilenameLength bounds upload filenames.
const maxFilenameLength = 255

// ValidateUploadFilename checks the name of an uploaded ontology file.
//
// The rules mirror what the upload endpoint accepts:
//   - the name cannot be empty
//   - no control characters
//   - no path separators (a plain basename)
//   - the extension must be .json (case-insensitive)
func ValidateUploadFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "no file selected")
	}

	if len(name) > maxFilenameLength {
		return New(ErrCodeInvalidInput, "filename too long (max %d characters)", maxFilenameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "filename contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "filename cannot contain path separators")
	}

	if !strings.EqualFold(filepath.Ext(name), ".json") {
		return New(ErrCodeInvalidFormat, "file must be a JSON file")
	}

	return nil
}

// ValidateFormats checks requested render formats against the supported set.
func ValidateFormats(formats []string, supported map[string]bool) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "no output format requested")
	}
	for _, f := range formats {
		if !supported[f] {
			return New(ErrCodeInvalidFormat, "unsupported format %q", f)
		}
	}
	return nil
}
