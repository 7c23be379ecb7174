package middleware

import "testing"

func TestStaticPasswordAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		password string
		expected bool
	}{
		{"exact match", "faizan123", "faizan123", true},
		{"wrong password", "faizan123", "guess", false},
		{"empty password", "faizan123", "", false},
		{"case sensitive", "faizan123", "Faizan123", false},
		{"empty secret denies everything", "", "", false},
		{"empty secret denies nonempty", "", "anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewStaticPassword(tt.secret)
			if got := auth.Authorize(tt.password); got != tt.expected {
				t.Errorf("Authorize(%q) with secret %q = %v, want %v", tt.password, tt.secret, got, tt.expected)
			}
		})
	}
}
