package validators

import "strings"

// IsEmailShapeValid faz uma checagem superficial de formato. O painel roda
// offline, então nada de consultas DNS: só rejeita o que com certeza não é
// um e-mail.
func IsEmailShapeValid(email string) bool {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}

	return !strings.ContainsAny(email, " \t")
}
