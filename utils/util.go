package utils

import (
	"strings"
	"unicode"

	"github.com/sanity-io/litter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)
var titleCaser = cases.Title(language.English)

var prettyOpts = litter.Options{
	Compact:           false,
	StripPackageNames: true,
	HidePrivateFields: false,
	HideZeroValues:    false,
}

// Dumps any value in a readable Go-like form. Used for CLI output and debugging.
func Prettify(v any) string {
	return prettyOpts.Sdump(v)
}

// Same as [fmt.Sprintf] but numbers are formatted with thousands separators, i.e. 1234567 -> 1,234,567.
func HumanizedSprintf(format string, args ...any) string {
	return printer.Sprintf(format, args...)
}

// Turns an API field key into a label fit for display.
//
//	"numResidents" -> "Num Residents"
//	"last_online"  -> "Last Online"
func TitleCase(key string) string {
	var sb strings.Builder

	prev := ' '
	for _, r := range key {
		switch {
		case r == '_' || r == '-':
			r = ' '
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			sb.WriteRune(' ')
		}

		sb.WriteRune(r)
		prev = r
	}

	return titleCaser.String(strings.Join(strings.Fields(sb.String()), " "))
}
