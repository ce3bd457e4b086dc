package converter

import (
	"regexp"

	"github.com/frherrer/atomic-docgen/internal/domain"
)

var placeholderPattern = regexp.MustCompile(`#\{[^}]+\}`)

// Substitute replaces every #{name} token in text with the default value of
// the matching input argument. Tokens that name no declared argument are
// left in place so hand-edited or partially specified documents still
// render. The pass is textual and not recursive: a default value containing
// another placeholder is inserted verbatim and never rescanned.
func Substitute(text string, args []domain.InputArgument) string {
	if text == "" || len(args) == 0 {
		return text
	}

	defaults := make(map[string]string, len(args))
	for _, a := range args {
		defaults[a.Name] = a.Default
	}

	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := token[2 : len(token)-1]
		if val, ok := defaults[name]; ok {
			return val
		}
		return token
	})
}
