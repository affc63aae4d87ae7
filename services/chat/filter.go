// File: services/chat/filter.go
package chat

import "strings"

// stigmatizedWords are terms the support bot must never echo back. Multi-word
// phrases from the source list are matched after tokenization, so only the
// single-word entries are kept here; each token is cleaned of surrounding
// punctuation before lookup.
var stigmatizedWords = map[string]struct{}{
	"crazy": {}, "insane": {}, "lunatic": {}, "psycho": {}, "psychotic": {},
	"maniac": {}, "nuts": {}, "cuckoo": {}, "loony": {}, "mad": {},
	"mental": {}, "deranged": {}, "unstable": {}, "unhinged": {}, "bonkers": {},
	"fruitcake": {}, "nutjob": {}, "crackpot": {}, "headcase": {}, "freak": {},
	"weirdo": {}, "oddball": {}, "spazz": {}, "lazy": {}, "unmotivated": {},
	"weak": {}, "fragile": {}, "hopeless": {}, "moody": {}, "emo": {},
	"downer": {}, "dramatic": {}, "failure": {}, "quitter": {}, "pathetic": {},
	"pessimist": {}, "miserable": {}, "overreacting": {}, "worrier": {}, "paranoid": {},
	"jittery": {}, "snowflake": {}, "jumpy": {}, "fidgety": {}, "neurotic": {},
	"obsessive": {}, "nitpicky": {}, "high-strung": {}, "stress-head": {}, "damaged": {},
	"broken": {}, "weak-minded": {}, "baggage": {}, "triggered": {}, "meltdown": {},
	"attention-seeker": {}, "manipulative": {}, "selfish": {}, "cowardly": {}, "dangerous": {},
	"schizo": {}, "delusional": {}, "hallucinating": {}, "manic": {}, "unpredictable": {},
	"two-faced": {}, "hysterical": {}, "perfectionist": {}, "anal": {}, "rigid": {},
	"fussy": {}, "over-the-top": {}, "uptight": {}, "compulsive": {}, "anorexic": {},
	"bulimic": {}, "skeleton": {}, "stick": {}, "twig": {}, "fatty": {},
	"whale": {}, "pig": {}, "glutton": {}, "greedy": {}, "disgusting": {},
	"gross": {}, "vain": {}, "retarded": {}, "slow": {}, "dumb": {},
	"stupid": {}, "idiot": {}, "moron": {}, "imbecile": {}, "simpleton": {},
	"thick": {}, "handicapped": {}, "sped": {}, "special": {}, "window-licker": {},
	"shrink": {}, "quack": {}, "pill-popper": {}, "druggie": {}, "medicated": {},
	"institutionalized": {}, "lobotomized": {}, "labelled": {}, "disordered": {},
}

// replacements swaps a few terms for supportive alternatives instead of
// dropping them.
var replacements = map[string]string{
	"crazy":    "overwhelming",
	"insane":   "overwhelming",
	"nuts":     "overwhelming",
	"mad":      "overwhelming",
	"weak":     "human",
	"fragile":  "human",
	"failure":  "capable",
	"hopeless": "capable",
	"broken":   "healing",
	"damaged":  "healing",
}

// FilterStigmatizedLanguage removes or replaces stigmatized words in a
// response. Matching is case-insensitive and tolerant of surrounding
// punctuation; casing of kept words is preserved.
func FilterStigmatizedLanguage(text string) string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		clean := strings.ToLower(strings.Trim(word, ".,!?;:\"()[]{}"))
		if _, bad := stigmatizedWords[clean]; !bad {
			filtered = append(filtered, word)
			continue
		}
		if alt, ok := replacements[clean]; ok {
			filtered = append(filtered, alt)
		}
		// Otherwise drop the word entirely.
	}
	return strings.Join(filtered, " ")
}
