package bot

import "fmt"

// personalTemplates carries the per-intent, per-language phrasings that
// embed the stored display name. These are distinct literals rather than
// one parameterized greeting: word order and punctuation differ between
// languages and between greeting types.
var personalTemplates = map[Intent]map[Language]string{
	IntentGreeting: {
		LangFrench:  "Bonjour %s ! 👋 Comment puis-je vous aider aujourd'hui ?",
		LangEnglish: "Hello %s! 👋 How can I help you today?",
		LangArabic:  "مرحبا %s! 👋 كيف يمكنني مساعدتك اليوم؟",
	},
	IntentEveningGreeting: {
		LangFrench:  "Bonsoir %s ! 🌙 Comment puis-je vous aider ce soir ?",
		LangEnglish: "Good evening %s! 🌙 How can I help you tonight?",
		LangArabic:  "مساء الخير %s! 🌙 كيف يمكنني مساعدتك الليلة؟",
	},
	IntentFarewell: {
		LangFrench:  "Au revoir %s ! À bientôt pour de nouvelles analyses 👋",
		LangEnglish: "Goodbye %s! See you soon for new analyses 👋",
		LangArabic:  "وداعا %s! أراك قريبا لتحليلات جديدة 👋",
	},
}

// Personalize substitutes the display name into the intent's localized
// phrasing. With no stored name, or for intents that have no personal
// variant, it returns the plain catalog template unchanged.
func Personalize(intent Intent, lang Language, displayName string) string {
	if displayName == "" {
		return Response(intent, lang)
	}
	byLang, ok := personalTemplates[intent]
	if !ok {
		return Response(intent, lang)
	}
	tmpl, ok := byLang[lang]
	if !ok {
		tmpl = byLang[DefaultLanguage]
	}
	return fmt.Sprintf(tmpl, displayName)
}
