package validators

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"a.b+c@sub.domain.org",
	}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@domain.com",
		"user@",
		"user@domain",
		"user @domain.com",
		"user@dom ain.com",
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Abcdef1!", true},
		{"Sen4a!forte", true},
		{"abcdef1!", false}, // sem maiúscula
		{"ABCDEF1!", false}, // sem minúscula
		{"Abcdefg!", false}, // sem dígito
		{"Abcdefg1", false}, // sem símbolo
		{"Ab1!", false},     // curta
		{"", false},
	}
	for _, tc := range cases {
		if got := IsStrongPassword(tc.password); got != tc.want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}
