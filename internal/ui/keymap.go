package ui

import "strings"

var keyLabels = map[string]string{
	"ctrl":      "Ctrl",
	"alt":       "Alt",
	"shift":     "Shift",
	"meta":      "⌘",
	"cmd":       "⌘",
	"command":   "⌘",
	"esc":       "Esc",
	"tab":       "Tab",
	"enter":     "Enter",
	"backspace": "⌫",
	"delete":    "⌦",
	"space":     "Space",
	"up":        "↑",
	"down":      "↓",
	"left":      "←",
	"right":     "→",
}

// FormatKey renders a single key name for display. Unknown keys are
// upper-cased.
func FormatKey(key string) string {
	if label, ok := keyLabels[strings.ToLower(key)]; ok {
		return label
	}
	return strings.ToUpper(key)
}

// FormatKeymap renders a "+"-joined shortcut such as "ctrl+k" as "Ctrl+K".
func FormatKeymap(keymap string) string {
	keys := strings.Split(keymap, "+")
	for i, k := range keys {
		keys[i] = FormatKey(k)
	}
	return strings.Join(keys, "+")
}

// renderKeyHint renders a shortcut badge followed by its description.
func renderKeyHint(keymap, desc string) string {
	return keyHintStyle.Render(FormatKeymap(keymap)) + " " + hintStyle.Render(desc)
}
