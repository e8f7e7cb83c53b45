package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/plant-chatbot/pkg/logger"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(logger.NewLogger())
	require.NoError(t, err)
	return engine
}

// The rule ordering is a deliberate, load-bearing artifact: keyword sets
// overlap and the first match wins.
func TestIntentPriorityOrder(t *testing.T) {
	want := []Intent{
		IntentGreeting,
		IntentEveningGreeting,
		IntentFarewell,
		IntentStatus,
		IntentCapabilities,
		IntentThanks,
		IntentHelp,
		IntentWhoAmI,
		IntentHowItWorks,
		IntentDiseasesList,
		IntentPhotoRequest,
		IntentDetailRequest,
	}

	var got []Intent
	for _, r := range intentRules {
		got = append(got, r.intent)
	}
	assert.Equal(t, want, got)
}

func TestReplyIntents(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name       string
		message    string
		wantIntent Intent
		wantLang   Language
	}{
		{"french greeting", "bonjour", IntentGreeting, LangFrench},
		{"english greeting", "hello", IntentGreeting, LangEnglish},
		{"evening greeting", "bonsoir tout le monde", IntentEveningGreeting, LangFrench},
		{"farewell", "au revoir", IntentFarewell, LangFrench},
		// "comment ça va" matches both the status and the how-it-works
		// sets; status is checked earlier.
		{"status beats how-it-works", "comment ça va", IntentStatus, LangFrench},
		{"capabilities", "que peux-tu faire", IntentCapabilities, LangFrench},
		{"thanks", "merci beaucoup", IntentThanks, LangFrench},
		{"help", "aide-moi", IntentHelp, LangFrench},
		{"who am i", "qui es-tu", IntentWhoAmI, LangFrench},
		{"how it works", "comment fonctionne le diagnostic", IntentHowItWorks, LangFrench},
		{"diseases list", "quelles maladies sont supportées", IntentDiseasesList, LangFrench},
		{"photo request", "je veux envoyer une photo", IntentPhotoRequest, LangFrench},
		{"arabic greeting", "مرحبا", IntentGreeting, LangArabic},
		{"fallback", "xyzzy", IntentDefault, LangFrench},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := engine.Reply(tt.message, "")
			assert.Equal(t, tt.wantIntent, reply.Intent)
			assert.Equal(t, tt.wantLang, reply.Language)
			assert.Equal(t, Response(tt.wantIntent, tt.wantLang), reply.Message)
		})
	}
}

func TestReplyGreetingPersonalization(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("no stored name returns the plain template", func(t *testing.T) {
		reply := engine.Reply("bonjour", "")
		assert.Equal(t, "Bonjour ! 👋 Comment puis-je vous aider aujourd'hui ?", reply.Message)
	})

	t.Run("stored name personalizes the greeting", func(t *testing.T) {
		reply := engine.Reply("bonjour", "Alice")
		assert.Equal(t, "Bonjour Alice ! 👋 Comment puis-je vous aider aujourd'hui ?", reply.Message)
	})

	t.Run("farewell is personalized too", func(t *testing.T) {
		reply := engine.Reply("au revoir", "Alice")
		assert.Equal(t, "Au revoir Alice ! À bientôt pour de nouvelles analyses 👋", reply.Message)
	})

	t.Run("status is never personalized", func(t *testing.T) {
		reply := engine.Reply("comment ça va", "Alice")
		assert.NotContains(t, reply.Message, "Alice")
	})
}

func TestReplyDetailTopics(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name      string
		message   string
		wantTopic DetailTopic
	}{
		{"watering", "peux-tu m'expliquer l'arrosage", TopicWatering},
		{"fungicide", "donne-moi des détails sur le fongicide", TopicFungicide},
		{"circulation", "expliquer la circulation", TopicCirculation},
		{"pruning", "expliquer la taille", TopicPruning},
		{"prevention", "expliquer la prévention", TopicPrevention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := engine.Reply(tt.message, "")
			require.Equal(t, IntentDetailRequest, reply.Intent)
			assert.Equal(t, tt.wantTopic, reply.Topic)
			assert.Equal(t, TopicResponse(tt.wantTopic, reply.Language), reply.Message)
		})
	}

	t.Run("no topic keyword returns the menu", func(t *testing.T) {
		reply := engine.Reply("peux-tu m'expliquer", "")
		require.Equal(t, IntentDetailRequest, reply.Intent)
		assert.Empty(t, reply.Topic)
		assert.Equal(t, TopicMenu(LangFrench), reply.Message)
	})
}
