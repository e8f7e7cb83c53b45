package bot

import (
	"strings"

	"github.com/agrisense/plant-chatbot/pkg/logger"
)

// rule binds one keyword set to an intent. Rules are evaluated in slice
// order with first-match semantics; the ordering is load-bearing because
// the keyword sets overlap (e.g. "comment" belongs to the status,
// how-it-works and detail sets).
type rule struct {
	intent   Intent
	keywords []string
}

// intentRules is the fixed priority order for intent resolution
var intentRules = []rule{
	{IntentGreeting, []string{"bonjour", "hello", "hi", "مرحبا", "السلام"}},
	{IntentEveningGreeting, []string{"bonsoir", "good evening", "مساء"}},
	{IntentFarewell, []string{"revoir", "bye", "adieu", "وداع", "مع السلامة"}},
	{IntentStatus, []string{"ça va", "comment vas", "comment allez", "how are", "كيف حالك"}},
	{IntentCapabilities, []string{"que peux", "tu peux", "capable", "what can", "can you", "ماذا يمكنك", "هل يمكنك"}},
	{IntentThanks, []string{"merci", "thank", "شكرا", "super", "parfait", "génial"}},
	{IntentHelp, []string{"aide", "help", "مساعدة"}},
	{IntentWhoAmI, []string{"qui", "who are", "من أنت"}},
	{IntentHowItWorks, []string{"comment", "how", "كيف"}},
	{IntentDiseasesList, []string{"maladie", "disease", "supporte", "أمراض", "مرض"}},
	{IntentPhotoRequest, []string{"image", "photo", "analyser", "analyze", "صورة", "تحليل"}},
	{IntentDetailRequest, []string{"détail", "detail", "تفاصيل", "expliquer", "explain", "شرح", "comment", "how", "كيف"}},
}

// topicRules is the second-level scan run when a detail request matches
type topicRule struct {
	topic    DetailTopic
	keywords []string
}

var topicRules = []topicRule{
	{TopicFungicide, []string{"fongicide", "fungicide", "الفطريات"}},
	{TopicCirculation, []string{"circulation", "air", "الهواء"}},
	{TopicWatering, []string{"arrosage", "arroser", "water", "الري"}},
	{TopicPruning, []string{"taill", "prune", "couper", "التقليم"}},
	{TopicPrevention, []string{"prévention", "prévenir", "prevent", "الوقاية"}},
}

// Engine resolves user text into an intent and a reply string
type Engine struct {
	logger logger.Logger
}

// NewEngine creates a resolver engine. It fails when the response
// catalog does not cover every intent and topic in French.
func NewEngine(log logger.Logger) (*Engine, error) {
	if err := Validate(); err != nil {
		return nil, err
	}
	return &Engine{logger: log}, nil
}

// Reply runs one text turn: language detection, ordered intent
// resolution, catalog lookup and personalization.
func (e *Engine) Reply(message, displayName string) Reply {
	lang := DetectLanguage(message)
	lower := strings.ToLower(message)

	for _, r := range intentRules {
		if !matchesAny(lower, r.keywords) {
			continue
		}

		reply := Reply{Intent: r.intent, Language: lang}
		switch r.intent {
		case IntentGreeting, IntentEveningGreeting, IntentFarewell:
			reply.Message = Personalize(r.intent, lang, displayName)
		case IntentDetailRequest:
			reply.Topic, reply.Message = resolveTopic(lower, lang)
		default:
			reply.Message = Response(r.intent, lang)
		}

		e.logger.Debug("intent resolved",
			"intent", r.intent,
			"topic", reply.Topic,
			"language", lang)
		return reply
	}

	// No rule matched: ask for a photo
	return Reply{
		Intent:   IntentDefault,
		Language: lang,
		Message:  Response(IntentDefault, lang),
	}
}

// resolveTopic scans the five topic keyword sets in order; no match
// yields the localized topic menu.
func resolveTopic(lower string, lang Language) (DetailTopic, string) {
	for _, r := range topicRules {
		if matchesAny(lower, r.keywords) {
			return r.topic, TopicResponse(r.topic, lang)
		}
	}
	return "", TopicMenu(lang)
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
