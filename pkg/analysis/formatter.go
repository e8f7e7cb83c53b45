package analysis

import (
	"fmt"

	"github.com/agrisense/plant-chatbot/pkg/bot"
)

// labels are the localized captions used by the display model
var labels = map[string]map[bot.Language]string{
	"resultHeader": {
		bot.LangFrench:  "Résultat du diagnostic",
		bot.LangEnglish: "Diagnosis result",
		bot.LangArabic:  "نتيجة التشخيص",
	},
	"watering": {
		bot.LangFrench:  "Arrosage recommandé",
		bot.LangEnglish: "Watering recommended",
		bot.LangArabic:  "ينصح بالري",
	},
}

func label(key string, lang bot.Language) string {
	byLang := labels[key]
	if text, ok := byLang[lang]; ok {
		return text
	}
	return byLang[bot.DefaultLanguage]
}

// Format maps a classifier result into the localized display model
func Format(res Result, lang bot.Language) Display {
	isHealthy := res.Prediction == HealthyLabel

	header := label("resultHeader", lang)
	if isHealthy {
		header = "✅ " + header
	} else {
		header = "⚠️ " + header
	}

	severityClass := ClassWarning
	switch {
	case isHealthy:
		severityClass = ClassHealthy
	case res.Severity == SeverityHigh:
		severityClass = ClassDanger
	}

	var recommendations []string
	for _, rec := range res.Recommendations {
		recommendations = append(recommendations, TranslateRecommendation(rec, lang))
	}

	display := Display{
		HeaderText:          header,
		DiagnosisLabel:      DiseaseName(res.Prediction, lang),
		ConfidencePercent:   fmt.Sprintf("%.1f", res.Confidence*100),
		SeverityClass:       severityClass,
		RecommendationLines: recommendations,
	}

	if res.ShouldWater {
		display.WateringLine = "💧 " + label("watering", lang)
	}

	return display
}

// Summary is the short plain-text line appended to the conversation log
// for one analysis, distinct from the rich display model.
func Summary(display Display) string {
	return fmt.Sprintf("Analyse effectuée: %s (%s%% confiance)",
		display.DiagnosisLabel, display.ConfidencePercent)
}
