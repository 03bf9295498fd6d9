package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValidator(t *testing.T) {
	v := NewPasswordValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "Sup3r-Secret", false},
		{"minimum viable password", "aB3!aB3!", false},
		{"too short", "aB3!", true},
		{"too long", strings.Repeat("aB3!", 26), true},
		{"missing lowercase", "AB3!AB3!AB", true},
		{"missing uppercase", "ab3!ab3!ab", true},
		{"missing digit", "abC!abC!ab", true},
		{"missing symbol", "abC3abC3ab", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
