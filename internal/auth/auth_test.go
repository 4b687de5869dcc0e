package auth

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		user string
		pass string
		want bool
	}{
		{"valid", "admin", "admin", true},
		{"wrong pass", "admin", "letmein", false},
		{"wrong user", "root", "admin", false},
		{"empty", "", "", false},
		{"case sensitive", "Admin", "admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.user, tt.pass); got != tt.want {
				t.Errorf("Check(%q, %q) = %v, want %v", tt.user, tt.pass, got, tt.want)
			}
		})
	}
}
