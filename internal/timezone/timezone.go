package timezone

import "time"

// O petshop opera em um único fuso; carimbos de data/hora do domínio
// usam o relógio local da loja.
const ShopTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(ShopTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
