package enrich

import "strings"

// MaskedCVV reemplaza cualquier CVV recibido.
const MaskedCVV = "***"

const cardMask = "****"

// MaskCardNumber conserva solo los últimos 4 dígitos. Separadores (espacios, guiones)
// se ignoran; un número con menos de 4 dígitos se enmascara completo.
func MaskCardNumber(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if digits == "" {
		return ""
	}
	if len(digits) < 4 {
		return cardMask
	}
	return cardMask + digits[len(digits)-4:]
}
