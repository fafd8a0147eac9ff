package errors

import "testing"

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "42", false},
		{"with dash", "best-run_3", false},
		{"uuid", "0f8fad5b-d9cb-469f-a165-70867728950e", false},
		{"empty", "", true},
		{"traversal", "../etc", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"null byte", "a\x00b", true},
		{"control", "a\nb", true},
		{"hidden", ".secret", true},
		{"too long", string(make([]byte, 129)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateIndex(t *testing.T) {
	if err := ValidateIndex(ErrCodeInvalidProblem, "edge 0", 2, 3); err != nil {
		t.Errorf("in range: %v", err)
	}
	for _, idx := range []int{-1, 3} {
		err := ValidateIndex(ErrCodeInvalidProblem, "edge 0", idx, 3)
		if !Is(err, ErrCodeInvalidProblem) {
			t.Errorf("ValidateIndex(%d) = %v, want INVALID_PROBLEM", idx, err)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidProblem,
		ErrCodeInvalidSolution,
		ErrCodeInvalidConfig,
		ErrCodeInvalidMode,
		ErrCodeInvalidName,
		ErrCodeNotSubmittable,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeSolutionNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
