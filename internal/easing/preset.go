package easing

import "strings"

// presets maps curve names to their curves. Both "ease-out-cubic" and
// "easeOutCubic" spellings resolve; see normalize.
var presets = map[string]Curve{
	"linear":              Linear(),
	"ease-in-quad":        Quad(In),
	"ease-out-quad":       Quad(Out),
	"ease-in-out-quad":    Quad(InOut),
	"ease-in-cubic":       Cubic(In),
	"ease-out-cubic":      Cubic(Out),
	"ease-in-out-cubic":   Cubic(InOut),
	"ease-in-quart":       Quart(In),
	"ease-out-quart":      Quart(Out),
	"ease-in-out-quart":   Quart(InOut),
	"ease-in-quint":       Quint(In),
	"ease-out-quint":      Quint(Out),
	"ease-in-out-quint":   Quint(InOut),
	"ease-in-sine":        Sine(In),
	"ease-out-sine":       Sine(Out),
	"ease-in-out-sine":    Sine(InOut),
	"ease-in-expo":        Expo(In),
	"ease-out-expo":       Expo(Out),
	"ease-in-out-expo":    Expo(InOut),
	"ease-in-circ":        Circ(In),
	"ease-out-circ":       Circ(Out),
	"ease-in-out-circ":    Circ(InOut),
	"ease-in-back":        Back(In, 0),
	"ease-out-back":       Back(Out, 0),
	"ease-in-out-back":    Back(InOut, 0),
	"ease-in-elastic":     Elastic(In, 0, 0),
	"ease-out-elastic":    Elastic(Out, 0, 0),
	"ease-in-out-elastic": Elastic(InOut, 0, 0),
	"ease-in-bounce":      Bounce(In),
	"ease-out-bounce":     Bounce(Out),
	"ease-in-out-bounce":  Bounce(InOut),
}

// Preset resolves a curve name. Unknown or empty names fall back to
// ease-out-cubic so a misspelled preset degrades the motion instead of
// aborting a render.
func Preset(name string) Curve {
	if c, ok := presets[normalize(name)]; ok {
		return c
	}
	return Default()
}

// Known reports whether name resolves to an actual preset rather than the
// fallback. Build-time validators use it to warn about typos early.
func Known(name string) bool {
	_, ok := presets[normalize(name)]
	return ok
}

// normalize lowercases camelCase spellings into the canonical dashed form:
// "easeOutCubic" -> "ease-out-cubic".
func normalize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
