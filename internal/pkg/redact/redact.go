// redact маскирует персональные данные и секреты перед записью в лог.
package redact

import "strings"

const mask = "***"

// Email оставляет первую руну локальной части и домен: "a***@uni.edu".
// Строка без единственного '@' маскируется целиком.
func Email(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return mask
	}

	r := []rune(local)
	return string(r[0]) + mask + "@" + domain
}

// Tail оставляет последние n символов значения (например, FCM-токена),
// чтобы записи лога можно было сопоставить с устройством.
// Значения не длиннее 2n маскируются целиком.
func Tail(s string, n int) string {
	if n <= 0 || len(s) <= 2*n {
		return mask
	}

	return mask + s[len(s)-n:]
}
