package bot

// topicCatalog holds the detailed gardening/treatment explanations
// served when a detail request names a specific topic.
var topicCatalog = map[DetailTopic]map[Language]string{
	TopicFungicide: {
		LangFrench:  "🍄 **Traitement fongicide** :\n\n✅ Produits recommandés :\n• Cuivre (bouillie bordelaise)\n• Soufre mouillable\n• Bicarbonate de sodium\n\n📋 Application :\n• Pulvériser tôt le matin ou en soirée\n• Répéter tous les 10-14 jours\n• Éviter les périodes de pluie\n\n⚠️ Précautions : Respecter les doses indiquées",
		LangEnglish: "🍄 **Fungicide treatment** :\n\n✅ Recommended products:\n• Copper (Bordeaux mixture)\n• Wettable sulfur\n• Sodium bicarbonate\n\n📋 Application:\n• Spray early morning or evening\n• Repeat every 10-14 days\n• Avoid rainy periods\n\n⚠️ Precautions: Follow recommended dosages",
		LangArabic:  "🍄 **العلاج بمبيد الفطريات** :\n\n✅ المنتجات الموصى بها:\n• النحاس (خليط بوردو)\n• الكبريت القابل للبلل\n• بيكربونات الصوديوم\n\n📋 الاستخدام:\n• رش في الصباح الباكر أو المساء\n• كرر كل 10-14 يوماً\n• تجنب فترات المطر\n\n⚠️ احتياطات: اتبع الجرعات الموصى بها",
	},
	TopicCirculation: {
		LangFrench:  "💨 **Améliorer la circulation d'air** :\n\n✅ Méthodes :\n• Tailler les feuilles basses\n• Espacer les plants (50-60 cm)\n• Utiliser des tuteurs\n• Aérer la serre régulièrement\n\n📋 Avantages :\n• Réduit l'humidité\n• Sèche plus vite les feuilles\n• Limite les maladies fongiques",
		LangEnglish: "💨 **Improve air circulation** :\n\n✅ Methods:\n• Prune lower leaves\n• Space plants (50-60 cm)\n• Use stakes\n• Ventilate greenhouse regularly\n\n📋 Benefits:\n• Reduces humidity\n• Dries leaves faster\n• Limits fungal diseases",
		LangArabic:  "💨 **تحسين دوران الهواء** :\n\n✅ الطرق:\n• تقليم الأوراق السفلية\n• التباعد بين النباتات (50-60 سم)\n• استخدام الدعامات\n• تهوية الدفيئة بانتظام\n\n📋 الفوائد:\n• يقلل الرطوبة\n• يجفف الأوراق بشكل أسرع\n• يحد من الأمراض الفطرية",
	},
	TopicWatering: {
		LangFrench:  "💧 **Gestion de l'arrosage** :\n\n✅ Bonnes pratiques :\n• Arroser au pied (pas les feuilles)\n• Le matin de préférence\n• Eau à température ambiante\n• Sol humide mais pas détrempé\n\n📋 Fréquence :\n• Été : tous les 2-3 jours\n• Printemps/Automne : 2 fois/semaine\n• Adapter selon la météo\n\n⚠️ Éviter l'excès d'eau !",
		LangEnglish: "💧 **Watering management** :\n\n✅ Best practices:\n• Water at base (not leaves)\n• Morning preferred\n• Room temperature water\n• Moist but not soggy soil\n\n📋 Frequency:\n• Summer: every 2-3 days\n• Spring/Fall: twice weekly\n• Adjust for weather\n\n⚠️ Avoid overwatering!",
		LangArabic:  "💧 **إدارة الري** :\n\n✅ أفضل الممارسات:\n• الري عند القاعدة (وليس الأوراق)\n• يفضل في الصباح\n• ماء بدرجة حرارة الغرفة\n• تربة رطبة وليست مشبعة\n\n📋 التكرار:\n• الصيف: كل 2-3 أيام\n• الربيع/الخريف: مرتين في الأسبوع\n• التكيف حسب الطقس\n\n⚠️ تجنب الإفراط في الري!",
	},
	TopicPruning: {
		LangFrench:  "✂️ **Taille et entretien** :\n\n✅ Quand tailler :\n• Feuilles infectées : immédiatement\n• Gourmands : régulièrement\n• Feuilles basses : dès la floraison\n\n📋 Technique :\n• Outils désinfectés (alcool 70°)\n• Coupe nette et franche\n• Jeter les déchets (ne pas composter)\n• Désinfecter entre chaque plant\n\n⚠️ Ne pas tailler par temps humide",
		LangEnglish: "✂️ **Pruning and maintenance** :\n\n✅ When to prune:\n• Infected leaves: immediately\n• Suckers: regularly\n• Lower leaves: at flowering\n\n📋 Technique:\n• Disinfected tools (70° alcohol)\n• Clean, sharp cut\n• Dispose of waste (don't compost)\n• Disinfect between plants\n\n⚠️ Don't prune in wet weather",
		LangArabic:  "✂️ **التقليم والصيانة** :\n\n✅ متى يتم التقليم:\n• الأوراق المصابة: فوراً\n• البراعم الجانبية: بانتظام\n• الأوراق السفلية: عند الإزهار\n\n📋 التقنية:\n• أدوات معقمة (كحول 70°)\n• قطع نظيف وحاد\n• التخلص من النفايات (لا تستخدم كسماد)\n• التعقيم بين النباتات\n\n⚠️ لا تقلم في الطقس الرطب",
	},
	TopicPrevention: {
		LangFrench:  "🛡️ **Prévention des maladies** :\n\n✅ Mesures préventives :\n• Rotation des cultures (3-4 ans)\n• Variétés résistantes\n• Paillage du sol\n• Éviter l'eau sur feuillage\n• Désherbage régulier\n\n📋 Surveillance :\n• Inspection hebdomadaire\n• Agir dès les premiers signes\n• Isoler plants malades\n\n💡 Mieux vaut prévenir que guérir !",
		LangEnglish: "🛡️ **Disease prevention** :\n\n✅ Preventive measures:\n• Crop rotation (3-4 years)\n• Resistant varieties\n• Soil mulching\n• Avoid water on foliage\n• Regular weeding\n\n📋 Monitoring:\n• Weekly inspection\n• Act at first signs\n• Isolate sick plants\n\n💡 Prevention is better than cure!",
		LangArabic:  "🛡️ **الوقاية من الأمراض** :\n\n✅ تدابير وقائية:\n• تناوب المحاصيل (3-4 سنوات)\n• أصناف مقاومة\n• نشارة التربة\n• تجنب الماء على الأوراق\n• إزالة الأعشاب بانتظام\n\n📋 المراقبة:\n• فحص أسبوعي\n• التصرف عند أول علامة\n• عزل النباتات المريضة\n\n💡 الوقاية خير من العلاج!",
	},
}

// topicMenu is returned when a detail request names no known topic
var topicMenu = map[Language]string{
	LangFrench:  "💡 **Je peux vous expliquer en détail** :\n\n1️⃣ Traitement fongicide\n2️⃣ Améliorer la circulation d'air\n3️⃣ Gestion de l'arrosage\n4️⃣ Taille et entretien\n5️⃣ Prévention des maladies\n\n📝 Posez votre question ou choisissez un sujet !",
	LangEnglish: "💡 **I can explain in detail** :\n\n1️⃣ Fungicide treatment\n2️⃣ Improve air circulation\n3️⃣ Watering management\n4️⃣ Pruning and maintenance\n5️⃣ Disease prevention\n\n📝 Ask your question or choose a topic!",
	LangArabic:  "💡 **يمكنني الشرح بالتفصيل** :\n\n1️⃣ العلاج بمبيد الفطريات\n2️⃣ تحسين دوران الهواء\n3️⃣ إدارة الري\n4️⃣ التقليم والصيانة\n5️⃣ الوقاية من الأمراض\n\n📝 اطرح سؤالك أو اختر موضوعاً!",
}

// TopicResponse returns the detailed template for a topic, falling back
// to French when the language has no entry.
func TopicResponse(topic DetailTopic, lang Language) string {
	byLang, ok := topicCatalog[topic]
	if !ok {
		return ""
	}
	if tmpl, ok := byLang[lang]; ok {
		return tmpl
	}
	return byLang[DefaultLanguage]
}

// TopicMenu returns the localized five-topic menu
func TopicMenu(lang Language) string {
	if tmpl, ok := topicMenu[lang]; ok {
		return tmpl
	}
	return topicMenu[DefaultLanguage]
}
