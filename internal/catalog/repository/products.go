package repository

// catalogProducts is the shop's product list. Order is significant: lookup
// results and tie-breaks follow this order.
var catalogProducts = []Product{
	{
		Name:        "12 Herb Bath Soak for Removing Dampness",
		UsedFor:     "Dampness, cold, joint pain, poor circulation, menstrual discomfort",
		Description: "A herbal bath soak to expel dampness and cold from the body, improving circulation and relieving pain.",
	},
	{
		Name:        "Harmony Mood Herbal Tea for Liver",
		UsedFor:     "Emotional balance, mood fluctuations, restlessness, healthy circulation, skin radiance",
		Description: "A herbal tea blend designed to soothe the liver, promote emotional balance, and improve circulation for healthy, radiant skin.",
	},
	{
		Name:        "Navel Patch for Dampness Cold Regulate Chi and Blood Digestion System Sleep Lose Weight",
		UsedFor:     "Dampness, cold, uterine cold, cold hands and feet, digestive health, bloating, indigestion, pain relief, insomnia, weight management, immune enhancement",
		Description: "A navel patch that combines moxibustion heat and warming herbs to eliminate dampness and cold, improve digestion, regulate qi and blood, and aid in weight management and sleep.",
	},
	{
		Name:        "Ginger & Wormwood Herbal Foot Soak",
		UsedFor:     "Cold hands and feet, poor blood circulation, muscle aches, insomnia",
		Description: "An herbal foot soak that warms the meridians, promotes blood circulation, and soothes the mind for better sleep.",
	},
	{
		Name:        "Dang Gui & Goji Berry Herbal Soup Pack",
		UsedFor:     "Blood deficiency, fatigue, pale complexion, general weakness",
		Description: "A nourishing herbal soup pack to tonify blood, boost energy, and improve overall vitality.",
	},
	{
		Name:        "Herbal Face Steam for Radiance",
		UsedFor:     "Dull skin, skin radiance concerns, facial tension, stress relief",
		Description: "A blend of liver-soothing herbs for a face steam to promote a healthy complexion and relieve stress-induced muscle tension.",
	},
	{
		Name:        "Herbal Compress for Joint Pain",
		UsedFor:     "Joint pain, muscle aches, wind-dampness, rheumatoid stiffness",
		Description: "A warm herbal compress to expel wind and dampness, relax tendons, and promote circulation to alleviate joint and muscle pain.",
	},
}
