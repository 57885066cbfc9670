package i18n

import (
	"reflect"
	"strings"
)

// Localize returns the prefix field of record in lang, e.g. TitleDe for ("title", German).
// Missing or empty translations fall back to the English field, then to "".
// record may be a struct, a pointer to struct, map[string]string or map[string]any.
func Localize(record any, prefix string, lang Language) string {
	if v, ok := lookup(record, prefix, lang.Suffix()); ok {
		return v
	}
	if v, ok := lookup(record, prefix, English.Suffix()); ok {
		return v
	}
	return ""
}

func lookup(record any, prefix, suffix string) (string, bool) {
	switch r := record.(type) {
	case nil:
		return "", false
	case map[string]string:
		return nonEmpty(r[lowerFirst(prefix)+suffix])
	case map[string]any:
		return stringValue(reflect.ValueOf(r[lowerFirst(prefix)+suffix]))
	}

	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", false
	}

	return stringValue(v.FieldByName(upperFirst(prefix) + suffix))
}

func stringValue(v reflect.Value) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.String {
		return "", false
	}
	return nonEmpty(v.String())
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
