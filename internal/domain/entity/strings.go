package entity

import "strings"

func normalizarMayusculas(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// capitalizar pone la primera letra en mayúscula y el resto en minúscula ("auto" -> "Auto").
func capitalizar(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
