package converter

import "strings"

// fenceLangs maps executor names to Markdown fence language tags. The manual
// executor gets an untagged fence. The mapping is total: anything not listed
// falls back to "text" so rendering never fails on an unknown executor.
var fenceLangs = map[string]string{
	"command_prompt": "cmd",
	"cmd":            "cmd",
	"powershell":     "powershell",
	"pwsh":           "powershell",
	"bash":           "bash",
	"sh":             "sh",
	"manual":         "",
}

// FenceLang resolves an executor name to a fence language tag.
func FenceLang(executorName string) string {
	name := strings.ToLower(strings.TrimSpace(executorName))
	if lang, ok := fenceLangs[name]; ok {
		return lang
	}
	return "text"
}
