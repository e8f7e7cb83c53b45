package analysis

import "github.com/agrisense/plant-chatbot/pkg/bot"

// recommendationTranslations localizes the canonical French
// recommendation phrases the classifier emits. Coverage is deliberately
// partial: an unknown phrase passes through unmodified since the
// classifier may send free-form text.
var recommendationTranslations = map[bot.Language]map[string]string{
	bot.LangEnglish: {
		"Retirer les feuilles touchées":       "Remove affected leaves",
		"Traiter avec fongicide":              "Treat with fungicide",
		"Améliorer la circulation d'air":      "Improve air circulation",
		"Réduire l'arrosage":                  "Reduce watering",
		"Augmenter l'arrosage":                "Increase watering",
		"Appliquer un traitement préventif":   "Apply preventative treatment",
		"Surveiller l'évolution":              "Monitor progression",
		"Éliminer les plants infectés":        "Remove infected plants",
		"Désinfecter les outils":              "Disinfect tools",
		"Espacer les plants":                  "Space out plants",
	},
	bot.LangArabic: {
		"Retirer les feuilles touchées":       "إزالة الأوراق المصابة",
		"Traiter avec fongicide":              "العلاج بمبيد الفطريات",
		"Améliorer la circulation d'air":      "تحسين دوران الهواء",
		"Réduire l'arrosage":                  "تقليل الري",
		"Augmenter l'arrosage":                "زيادة الري",
		"Appliquer un traitement préventif":   "تطبيق العلاج الوقائي",
		"Surveiller l'évolution":              "مراقبة التطور",
		"Éliminer les plants infectés":        "إزالة النباتات المصابة",
		"Désinfecter les outils":              "تعقيم الأدوات",
		"Espacer les plants":                  "التباعد بين النباتات",
	},
}

// TranslateRecommendation maps a canonical French recommendation to the
// target language, returning the input untouched when no entry exists
// or the target is French.
func TranslateRecommendation(text string, lang bot.Language) string {
	table, ok := recommendationTranslations[lang]
	if !ok {
		return text
	}
	if translated, ok := table[text]; ok {
		return translated
	}
	return text
}
