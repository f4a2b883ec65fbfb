package helpers

import "strings"

// NormaliseHeaders returns a copy of headers with lower-cased keys.
// When several keys differ only by case, the last one visited wins.
func NormaliseHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[strings.ToLower(k)] = v
	}
	return out
}

// Header looks up name in headers ignoring case.
func Header(headers map[string]string, name string) (string, bool) {
	if v, found := headers[name]; found {
		return v, true
	}
	lname := strings.ToLower(name)
	for k, v := range headers {
		if strings.ToLower(k) == lname {
			return v, true
		}
	}
	return "", false
}
