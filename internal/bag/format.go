package bag

import "strings"

// applyFormat renders one message through a format template, substituting
// ":message" with the raw text and ":key" with the owning key. The default
// template short-circuits to the raw message. Substitution is sequential,
// ":message" first, matching the reference behaviour when a message itself
// contains ":key".
func applyFormat(format, key, message string) string {
	if format == DefaultFormat {
		return message
	}
	out := strings.ReplaceAll(format, ":message", message)
	return strings.ReplaceAll(out, ":key", key)
}

func formatAll(format, key string, msgs []string) []string {
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		out[i] = applyFormat(format, key, msg)
	}
	return out
}
