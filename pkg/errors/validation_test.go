package errors

import "testing"

func TestValidateUploadFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantCode Code
	}{
		{"valid", "ontology.json", ""},
		{"uppercase extension", "PLANT.JSON", ""},
		{"empty", "", ErrCodeInvalidInput},
		{"path", "../etc/ontology.json", ErrCodeInvalidInput},
		{"windows path", `C:\x\ontology.json`, ErrCodeInvalidInput},
		{"control char", "onto\x00logy.json", ErrCodeInvalidInput},
		{"wrong extension", "ontology.yaml", ErrCodeInvalidFormat},
		{"no extension", "ontology", ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploadFilename(tt.filename)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateUploadFilename(%q) = %v, want nil", tt.filename, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateUploadFilename(%q) = %v, want code %v", tt.filename, err, tt.wantCode)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	supported := map[string]bool{"svg": true, "dot": true}

	if err := ValidateFormats([]string{"svg", "dot"}, supported); err != nil {
		t.Errorf("ValidateFormats(valid) = %v", err)
	}
	if err := ValidateFormats(nil, supported); !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats(nil) = %v, want INVALID_FORMAT", err)
	}
	if err := ValidateFormats([]string{"svg", "gif"}, supported); !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats(gif) = %v, want INVALID_FORMAT", err)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput, ErrCodeInvalidJSON, ErrCodeInvalidDocument, ErrCodeInvalidFormat,
		ErrCodeInvalidConfig, ErrCodeNotFound, ErrCodeNoGraphLoaded, ErrCodeInternal,
	}
	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate error code %q", c)
		}
		seen[c] = true
	}
}
