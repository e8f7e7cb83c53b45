package bot

import "strings"

// Keyword lists used to tell French from English input. Hits are counted
// by substring containment, not whole words, matching the reference
// front-end behavior.
var (
	frenchKeywords = []string{
		"bonjour", "merci", "salut", "bonsoir", "au revoir",
		"aide", "comment", "quoi", "pourquoi", "qui",
	}
	englishKeywords = []string{
		"hello", "thanks", "help", "what", "how", "why", "who", "bye", "hi",
	}
)

// DetectLanguage classifies the input into one of the supported
// languages. Arabic script wins outright; otherwise English needs
// strictly more keyword hits than French, and every tie (including
// zero hits) falls back to French.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return LangArabic
		}
	}

	lower := strings.ToLower(text)

	frenchCount := 0
	for _, kw := range frenchKeywords {
		if strings.Contains(lower, kw) {
			frenchCount++
		}
	}

	englishCount := 0
	for _, kw := range englishKeywords {
		if strings.Contains(lower, kw) {
			englishCount++
		}
	}

	if englishCount > frenchCount {
		return LangEnglish
	}
	return LangFrench
}
