package message

import (
	"encoding/json"
	"regexp"
	"strings"
)

// VersionVariable is the only recognized placeholder.
const VersionVariable = "version"

// placeholderPattern matches an alphabetic identifier enclosed in braces, e.g. {version}
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

// Substitute replaces every placeholder in s with its value from vars.
// Unknown placeholders are replaced with the empty string.
func Substitute(s string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		name := token[1 : len(token)-1]
		return vars[name]
	})
}

// substituteVersion applies the version placeholder to plain text
func substituteVersion(s, version string) string {
	return Substitute(s, map[string]string{VersionVariable: version})
}

// substituteObject serializes obj, substitutes placeholders and parses the result back.
// Values are JSON-escaped so a version can never break the document.
func substituteObject(obj map[string]any, version string) (Payload, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	replaced := Substitute(string(raw), map[string]string{VersionVariable: jsonEscape(version)})
	return ParsePayload([]byte(replaced))
}

func jsonEscape(s string) string {
	quoted, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return strings.TrimSuffix(strings.TrimPrefix(string(quoted), `"`), `"`)
}
