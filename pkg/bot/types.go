package bot

// Language identifies one of the supported reply languages
type Language string

const (
	LangFrench  Language = "fr"
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// DefaultLanguage is used when detection is inconclusive and as the
// fallback for any missing translation.
const DefaultLanguage = LangFrench

// Intent is the conversational category resolved for a user message
type Intent string

const (
	IntentGreeting        Intent = "greeting"
	IntentEveningGreeting Intent = "greeting_evening"
	IntentFarewell        Intent = "farewell"
	IntentStatus          Intent = "status"
	IntentCapabilities    Intent = "capabilities"
	IntentThanks          Intent = "thanks"
	IntentHelp            Intent = "help"
	IntentWhoAmI          Intent = "who_am_i"
	IntentHowItWorks      Intent = "how_it_works"
	IntentDiseasesList    Intent = "diseases_list"
	IntentPhotoRequest    Intent = "photo_request"
	IntentDetailRequest   Intent = "detail_request"
	IntentDefault         Intent = "default"
)

// DetailTopic is the sub-category matched under IntentDetailRequest
type DetailTopic string

const (
	TopicFungicide   DetailTopic = "fungicide"
	TopicCirculation DetailTopic = "circulation"
	TopicWatering    DetailTopic = "watering"
	TopicPruning     DetailTopic = "pruning"
	TopicPrevention  DetailTopic = "prevention"
)

// Reply is the resolved outcome of one text turn
type Reply struct {
	Intent   Intent      `json:"intent"`
	Topic    DetailTopic `json:"topic,omitempty"`
	Language Language    `json:"language"`
	Message  string      `json:"message"`
}
