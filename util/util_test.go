package util

import "testing"

func TestExitCodes(t *testing.T) {
	codes := map[string]int{
		"Success":       Success,
		"ErrLocalExe":   ErrLocalExe,
		"ErrLocalParse": ErrLocalParse,
	}

	if Success != 0 {
		t.Errorf("Success = %d, want 0", Success)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if other, ok := seen[code]; ok {
			t.Errorf("%s and %s share exit code %d", name, other, code)
		}
		seen[code] = name
	}
}
