// Пакет redact — маскирование реквизитов подключения в тексте ошибок до записи в логи.
package redact

import "regexp"

// Marker — чем заменяется секрет.
const Marker = "[REDACTED]"

var (
	// key=value для реквизитов подключения (DSN в формате libpq, сообщения драйвера).
	credentialToken = regexp.MustCompile(
		"(?i)\\b(host|hostaddr|user|username|password|passwd|pwd|database|dbname)\\b(\\s*=\\s*)(\"[^\"]*\"|'[^']*'|[^\\s;,&\x60]+)",
	)
	// key: value — только для паролей; у остальных ключей ":" встречается в обычном тексте.
	secretColon = regexp.MustCompile(
		"(?i)\\b(password|passwd|pwd)\\b(\\s*:\\s*)(\"[^\"]*\"|'[^']*'|[^\\s;,&\x60]+)",
	)
	// scheme://user:pass@ в URL.
	urlUserInfo = regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.\-]*://)[^/\s:@]+(:[^/\s@]*)?@`)

	// Хост вне key=value: ошибки резолвера и net.OpError, адрес pgx вида "ip:port (host)".
	dnsLookup   = regexp.MustCompile(`\b(lookup) [^\s:]+( on |:)`)
	netOp       = regexp.MustCompile(`\b((?:dial|read|write) (?:tcp|udp|unix)[46]?) (\S+?)(:\s|$)`)
	addrAndHost = regexp.MustCompile(`(?:\[[0-9A-Fa-f:.]+\]|\d{1,3}(?:\.\d{1,3}){3}):\d+ \([^)\s]+\)`)
)

// String — возвращает s с замаскированными реквизитами.
func String(s string) string {
	if s == "" {
		return s
	}
	s = urlUserInfo.ReplaceAllString(s, "${1}"+Marker+"@")
	s = credentialToken.ReplaceAllString(s, "${1}${2}"+Marker)
	s = secretColon.ReplaceAllString(s, "${1}${2}"+Marker)
	s = addrAndHost.ReplaceAllString(s, Marker)
	s = netOp.ReplaceAllString(s, "${1} "+Marker+"${3}")
	return dnsLookup.ReplaceAllString(s, "${1} "+Marker+"${2}")
}

// Error — текст ошибки с замаскированными реквизитами; nil → "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
