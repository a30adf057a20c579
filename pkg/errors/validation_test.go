package errors

import "testing"

func TestValidateLayoutName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "My Dashboard", false},
		{"autosave", "Autosave", false},
		{"unicode", "Морнинг Борд", false},
		{"empty", "", true},
		{"traversal", "../secrets", true},
		{"separator", "a/b", true},
		{"backslash", `a\b`, true},
		{"control char", "bad\x07name", true},
		{"too long", string(make([]byte, 200)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error should carry %s, got %v", ErrCodeInvalidName, err)
			}
		})
	}
}

func TestValidateSnapshotID(t *testing.T) {
	if err := ValidateSnapshotID("0b8f4a2e-90cf-4a7e-b9f1-6f8b1c2d3e4f"); err != nil {
		t.Errorf("uuid id should validate: %v", err)
	}
	if err := ValidateSnapshotID("current_layout-2"); err != nil {
		t.Errorf("token id should validate: %v", err)
	}
	if err := ValidateSnapshotID(""); err == nil {
		t.Error("empty id should be rejected")
	}
	if err := ValidateSnapshotID("a/b"); err == nil {
		t.Error("id with separator should be rejected")
	}
}
