package httperr

import "errors"

// BusinessError carrega um código estável de regra de negócio
// ("pet_not_found", "already_cancelled", ...). Os casos de uso
// devolvem o código; a tradução para status HTTP e mensagem em
// português fica nos handlers.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string { return e.Code }

// ErrBusiness embala um código de negócio como error.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness testa se err carrega exatamente o código informado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
