package validators

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail faz uma checagem estrutural: parte local, arroba e
// domínio com pelo menos um ponto. Não consulta DNS.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
