package validators

import "regexp"

var nonDigits = regexp.MustCompile(`[^\d]+`)

// NormalizeCPF remove pontuação e qualquer caractere não numérico.
func NormalizeCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// IsValidCPF valida um CPF já normalizado (11 dígitos numéricos).
// Sequências de dígitos repetidos são sempre inválidas; os dois
// dígitos verificadores são calculados por soma ponderada módulo 11,
// com resto >= 10 mapeado para 0.
func IsValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	digits := make([]int, 11)
	repeated := true
	for i, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			repeated = false
		}
	}
	if repeated {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	first := 11 - (sum % 11)
	if first >= 10 {
		first = 0
	}
	if first != digits[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	second := 11 - (sum % 11)
	if second >= 10 {
		second = 0
	}
	return second == digits[10]
}
