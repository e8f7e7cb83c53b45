package bot

import "fmt"

// catalog maps (intent, language) to the canned reply template. The
// tables are fixed at build time; Validate checks the French coverage
// invariant once during wiring.
var catalog = map[Intent]map[Language]string{
	IntentGreeting: {
		LangFrench:  "Bonjour ! 👋 Comment puis-je vous aider aujourd'hui ?",
		LangEnglish: "Hello! 👋 How can I help you today?",
		LangArabic:  "مرحبا! 👋 كيف يمكنني مساعدتك اليوم؟",
	},
	IntentEveningGreeting: {
		LangFrench:  "Bonsoir ! 🌙 Comment puis-je vous aider ce soir ?",
		LangEnglish: "Good evening! 🌙 How can I help you tonight?",
		LangArabic:  "مساء الخير! 🌙 كيف يمكنني مساعدتك الليلة؟",
	},
	IntentThanks: {
		LangFrench:  "Avec plaisir ! N'hésitez pas si vous avez d'autres questions 😊",
		LangEnglish: "You're welcome! Feel free to ask if you have any other questions 😊",
		LangArabic:  "على الرحب والسعة! لا تتردد في السؤال إذا كان لديك أي أسئلة أخرى 😊",
	},
	IntentFarewell: {
		LangFrench:  "Au revoir ! À bientôt pour de nouvelles analyses 👋",
		LangEnglish: "Goodbye! See you soon for new analyses 👋",
		LangArabic:  "وداعا! أراك قريبا لتحليلات جديدة 👋",
	},
	IntentHelp: {
		LangFrench:  "Je peux vous aider à :\n• 📸 Analyser une photo de votre plante\n• 🔍 Détecter les maladies des tomates\n• 💡 Donner des recommandations\n• ℹ️ Expliquer les maladies supportées",
		LangEnglish: "I can help you with:\n• 📸 Analyze a photo of your plant\n• 🔍 Detect tomato diseases\n• 💡 Give recommendations\n• ℹ️ Explain supported diseases",
		LangArabic:  "يمكنني مساعدتك في:\n• 📸 تحليل صورة نباتك\n• 🔍 اكتشاف أمراض الطماطم\n• 💡 تقديم التوصيات\n• ℹ️ شرح الأمراض المدعومة",
	},
	IntentStatus: {
		LangFrench:  "Je vais très bien, merci ! Prêt à analyser vos plantes 😊",
		LangEnglish: "I'm doing great, thanks! Ready to analyze your plants 😊",
		LangArabic:  "أنا بخير، شكرا! جاهز لتحليل نباتاتك 😊",
	},
	IntentCapabilities: {
		LangFrench:  "Je peux analyser des photos de plants de tomates et détecter 10 maladies différentes ! Envoyez-moi une image 📸",
		LangEnglish: "I can analyze photos of tomato plants and detect 10 different diseases! Send me an image 📸",
		LangArabic:  "يمكنني تحليل صور نباتات الطماطم واكتشاف 10 أمراض مختلفة! أرسل لي صورة 📸",
	},
	IntentHowItWorks: {
		LangFrench:  "C'est simple ! Envoyez-moi une photo de votre plant de tomate et je vous donnerai un diagnostic précis avec des recommandations. Cliquez sur le bouton caméra 📷",
		LangEnglish: "It's simple! Send me a photo of your tomato plant and I'll give you an accurate diagnosis with recommendations. Click the camera button 📷",
		LangArabic:  "إنه بسيط! أرسل لي صورة نبات الطماطم الخاص بك وسأعطيك تشخيصًا دقيقًا مع التوصيات. انقر على زر الكاميرا 📷",
	},
	IntentWhoAmI: {
		LangFrench:  "Je suis un assistant IA intelligent conçu pour vous aider à diagnostiquer les maladies de vos plants de tomates 🍅",
		LangEnglish: "I'm an intelligent AI assistant designed to help you diagnose diseases in your tomato plants 🍅",
		LangArabic:  "أنا مساعد ذكاء اصطناعي مصمم لمساعدتك في تشخيص أمراض نباتات الطماطم 🍅",
	},
	IntentDiseasesList: {
		LangFrench:  "🌱 Je peux détecter les maladies suivantes :\n\n✅ Sain\n🦠 Tache bactérienne\n🍂 Mildiou précoce\n🍂 Mildiou tardif\n🍄 Moisissure des feuilles\n🔴 Tache septorienne\n🕷️ Acariens\n🎯 Tache cible\n🦠 Virus de la mosaïque\n🟡 Virus de l'enroulement jaune\n\n📸 Envoyez une photo !",
		LangEnglish: "🌱 I can detect the following diseases:\n\n✅ Healthy\n🦠 Bacterial spot\n🍂 Early blight\n🍂 Late blight\n🍄 Leaf mold\n🔴 Septoria leaf spot\n🕷️ Spider mites\n🎯 Target spot\n🦠 Mosaic virus\n🟡 Yellow leaf curl virus\n\n📸 Send a photo!",
		LangArabic:  "🌱 يمكنني اكتشاف الأمراض التالية:\n\n✅ سليم\n🦠 بقعة بكتيرية\n🍂 لفحة مبكرة\n🍂 لفحة متأخرة\n🍄 عفن الأوراق\n🔴 بقعة سبتوريا\n🕷️ عث العنكبوت\n🎯 بقعة مستهدفة\n🦠 فيروس الموزاييك\n🟡 فيروس تجعد الأوراق الأصفر\n\n📸 أرسل صورة!",
	},
	IntentPhotoRequest: {
		LangFrench:  "📸 Pour analyser votre plante, cliquez sur le bouton caméra 📷 en bas à gauche pour sélectionner une photo, puis cliquez sur le bouton d'envoi ➤\n\nAssurez-vous que la photo est claire et montre bien les feuilles !",
		LangEnglish: "📸 To analyze your plant, click the camera button 📷 at the bottom left to select a photo, then click the send button ➤\n\nMake sure the photo is clear and shows the leaves well!",
		LangArabic:  "📸 لتحليل نباتك، انقر على زر الكاميرا 📷 في الأسفل واختر صورة، ثم انقر على زر الإرسال ➤\n\nتأكد من أن الصورة واضحة وتظهر الأوراق بشكل جيد!",
	},
	IntentDefault: {
		LangFrench:  "Pour mieux vous aider, pourriez-vous m'envoyer une photo de votre plante ? 📸",
		LangEnglish: "To better help you, could you send me a photo of your plant? 📸",
		LangArabic:  "لمساعدتك بشكل أفضل، هل يمكنك إرسال صورة لنباتك؟ 📸",
	},
}

// Response returns the template for the given intent and language,
// falling back to French when the language has no entry. An unknown
// intent yields an empty string; the caller owns the final fallback.
func Response(intent Intent, lang Language) string {
	byLang, ok := catalog[intent]
	if !ok {
		return ""
	}
	if tmpl, ok := byLang[lang]; ok {
		return tmpl
	}
	return byLang[DefaultLanguage]
}

// allIntents enumerates every intent that must have a catalog entry
var allIntents = []Intent{
	IntentGreeting, IntentEveningGreeting, IntentFarewell, IntentThanks,
	IntentHelp, IntentStatus, IntentCapabilities, IntentWhoAmI,
	IntentHowItWorks, IntentDiseasesList, IntentPhotoRequest, IntentDefault,
}

// allTopics enumerates every detail topic that must have a template
var allTopics = []DetailTopic{
	TopicFungicide, TopicCirculation, TopicWatering, TopicPruning, TopicPrevention,
}

// Validate checks the catalog coverage invariant: every intent and every
// detail topic (including the topic menu) must carry a French entry.
func Validate() error {
	for _, intent := range allIntents {
		byLang, ok := catalog[intent]
		if !ok {
			return fmt.Errorf("catalog: intent %q has no entries", intent)
		}
		if byLang[DefaultLanguage] == "" {
			return fmt.Errorf("catalog: intent %q has no French entry", intent)
		}
	}
	for _, topic := range allTopics {
		byLang, ok := topicCatalog[topic]
		if !ok {
			return fmt.Errorf("catalog: topic %q has no entries", topic)
		}
		if byLang[DefaultLanguage] == "" {
			return fmt.Errorf("catalog: topic %q has no French entry", topic)
		}
	}
	if topicMenu[DefaultLanguage] == "" {
		return fmt.Errorf("catalog: topic menu has no French entry")
	}
	return nil
}
