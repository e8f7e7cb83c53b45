package analysis

import "github.com/agrisense/plant-chatbot/pkg/bot"

// HealthyLabel is the classifier label meaning no disease was found
const HealthyLabel = "Tomato_healthy"

// Severity values reported by the classifier
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Result is the JSON payload returned by the remote classifier for one
// submitted photo. The service only interprets it; content is owned by
// the classifier.
type Result struct {
	Prediction      string   `json:"prediction"`
	Confidence      float64  `json:"confidence"`
	Severity        string   `json:"severity,omitempty"`
	Recommendations []string `json:"recommendations"`
	ShouldWater     bool     `json:"shouldWater"`
}

// Display is the structured, localized model handed to the UI for rich
// rendering of one analysis.
type Display struct {
	HeaderText          string   `json:"header_text"`
	DiagnosisLabel      string   `json:"diagnosis_label"`
	ConfidencePercent   string   `json:"confidence_percent"`
	SeverityClass       string   `json:"severity_class"`
	RecommendationLines []string `json:"recommendation_lines"`
	WateringLine        string   `json:"watering_line,omitempty"`
}

// Severity classes used for visual emphasis in the chat bubble
const (
	ClassHealthy = "healthy"
	ClassDanger  = "danger"
	ClassWarning = "warning"
)

// diseaseNames maps every supported classifier label to its display
// name per language. An unmapped label degrades to the raw identifier.
var diseaseNames = map[string]map[bot.Language]string{
	"Tomato_healthy": {
		bot.LangFrench:  "Sain",
		bot.LangEnglish: "Healthy",
		bot.LangArabic:  "سليم",
	},
	"Tomato_bacterial_spot": {
		bot.LangFrench:  "Tache bactérienne",
		bot.LangEnglish: "Bacterial spot",
		bot.LangArabic:  "بقعة بكتيرية",
	},
	"Tomato_early_blight": {
		bot.LangFrench:  "Mildiou précoce",
		bot.LangEnglish: "Early blight",
		bot.LangArabic:  "لفحة مبكرة",
	},
	"Tomato_late_blight": {
		bot.LangFrench:  "Mildiou tardif",
		bot.LangEnglish: "Late blight",
		bot.LangArabic:  "لفحة متأخرة",
	},
	"Tomato_leaf_mold": {
		bot.LangFrench:  "Moisissure des feuilles",
		bot.LangEnglish: "Leaf mold",
		bot.LangArabic:  "عفن الأوراق",
	},
	"Tomato_septoria_leaf_spot": {
		bot.LangFrench:  "Tache septorienne",
		bot.LangEnglish: "Septoria leaf spot",
		bot.LangArabic:  "بقعة سبتوريا",
	},
	"Tomato_spider_mites_two-spotted_spider_mite": {
		bot.LangFrench:  "Acariens",
		bot.LangEnglish: "Spider mites",
		bot.LangArabic:  "عث العنكبوت",
	},
	"Tomato_target_spot": {
		bot.LangFrench:  "Tache cible",
		bot.LangEnglish: "Target spot",
		bot.LangArabic:  "بقعة مستهدفة",
	},
	"Tomato_mosaic_virus": {
		bot.LangFrench:  "Virus de la mosaïque",
		bot.LangEnglish: "Mosaic virus",
		bot.LangArabic:  "فيروس الموزاييك",
	},
	"Tomato_yellow_leaf_curl_virus": {
		bot.LangFrench:  "Virus de l'enroulement jaune",
		bot.LangEnglish: "Yellow leaf curl virus",
		bot.LangArabic:  "فيروس تجعد الأوراق الأصفر",
	},
}

// DiseaseName returns the localized display name for a classifier
// label, or the raw label when no translation exists.
func DiseaseName(label string, lang bot.Language) string {
	byLang, ok := diseaseNames[label]
	if !ok {
		return label
	}
	if name, ok := byLang[lang]; ok {
		return name
	}
	return byLang[bot.DefaultLanguage]
}
