package bot

import "fmt"

// Fixed session messages outside the intent flow: the startup welcome,
// the post-reset prompt and the settings-save confirmations. The welcome
// and reset texts are French only, like the reference.

const welcomeTemplate = "Bonjour ! 👋 Je suis votre assistant IA pour la détection des maladies des plantes.\n\n📸 Envoyez-moi une photo de votre plant de tomate et je vous donnerai un diagnostic précis avec des recommandations !"

const welcomePersonalTemplate = "Bonjour %s ! 👋 Je suis votre assistant IA pour la détection des maladies des plantes.\n\n📸 Envoyez-moi une photo de votre plant de tomate et je vous donnerai un diagnostic précis avec des recommandations !"

const resetTemplate = "Bonjour ! 👋 Prêt à analyser vos plantes ! Envoyez-moi une photo pour commencer."

const settingsSavedTemplate = "✅ Paramètres enregistrés avec succès !"

var settingsSavedPersonal = map[Language]string{
	LangFrench:  "✅ Paramètres enregistrés !\n\n👋 Ravi de vous rencontrer, %s ! Je suis prêt à analyser vos plantes 🌱",
	LangEnglish: "✅ Settings saved!\n\n👋 Nice to meet you, %s! I'm ready to analyze your plants 🌱",
	LangArabic:  "✅ تم حفظ الإعدادات!\n\n👋 سعيد بلقائك، %s! أنا جاهز لتحليل نباتاتك 🌱",
}

// WelcomeMessage returns the startup greeting, personalized when a
// display name is stored.
func WelcomeMessage(displayName string) string {
	if displayName == "" {
		return welcomeTemplate
	}
	return fmt.Sprintf(welcomePersonalTemplate, displayName)
}

// ResetMessage returns the prompt shown after the history is cleared
func ResetMessage() string {
	return resetTemplate
}

// SettingsSavedMessage returns the save confirmation. When the display
// name just changed to a non-empty value, the bot introduces itself to
// the user in the given language.
func SettingsSavedMessage(lang Language, displayName string, nameChanged bool) string {
	if displayName == "" || !nameChanged {
		return settingsSavedTemplate
	}
	tmpl, ok := settingsSavedPersonal[lang]
	if !ok {
		tmpl = settingsSavedPersonal[DefaultLanguage]
	}
	return fmt.Sprintf(tmpl, displayName)
}
