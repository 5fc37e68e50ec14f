package seq

import "strings"

// Runes converts s into its vector of characters (runes, not bytes), so
// multi-byte characters survive as single elements.
func Runes(s string) []rune {
	return []rune(s)
}

// ToSnakeCase lowercases s and replaces every space with an underscore.
// It does not split camelCase boundaries; "myVar Name" becomes "myvar_name".
func ToSnakeCase(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
