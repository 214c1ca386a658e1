package validators

import "testing"

func TestNormalizeCPF(t *testing.T) {
	if got := NormalizeCPF("529.982.247-25"); got != "52998224725" {
		t.Fatalf("NormalizeCPF: got %q", got)
	}
	if got := NormalizeCPF("abc123"); got != "123" {
		t.Fatalf("NormalizeCPF: got %q", got)
	}
}

func TestIsValidCPF_KnownValid(t *testing.T) {
	valid := []string{
		"52998224725",
		"11144477735",
	}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("expected %s to be valid", cpf)
		}
	}
}

func TestIsValidCPF_RepeatedDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := ""
		for i := 0; i < 11; i++ {
			cpf += string(d)
		}
		if IsValidCPF(cpf) {
			t.Errorf("expected %s to be invalid", cpf)
		}
	}
}

func TestIsValidCPF_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"5299822472",    // curto
		"529982247255",  // longo
		"52998224724",   // segundo verificador errado
		"52998224735",   // primeiro verificador errado
		"5299822472a",   // não numérico
		"529.98224725",  // pontuação não normalizada
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("expected %q to be invalid", cpf)
		}
	}
}
