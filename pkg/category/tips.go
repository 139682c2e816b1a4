package category

// moneySavingTips holds per-category saving advice shown on the tips tab.
var moneySavingTips = map[string][]string{
	"accommodation": {
		"Consider booking hostels or homestays instead of hotels",
		"Try house-sitting or home exchange programs",
		"Book accommodations with kitchen access to save on meals",
	},
	"food": {
		"Eat where locals eat - usually cheaper and more authentic",
		"Visit local markets and prepare some meals yourself",
		"Look for lunch specials rather than dining out for dinner",
		"Look for tips reccomended on Reddit and Tiktok",
	},
	"activities": {
		"Look for free walking tours or city attractions",
		"Check for museum free days or discounted hours",
		"Research city passes that bundle attractions at a discount",
	},
	"transportation": {
		"Use public transportation instead of taxis",
		"Consider weekly transit passes if staying longer",
		"Walk or rent bikes for short distances",
	},
	"shopping": {
		"Set a specific souvenir budget before your trip",
		"Look for local markets rather than tourist shops",
		"Consider practical souvenirs you'll actually use",
	},
	"other": {
		"Use free WiFi instead of expensive data plans",
		"Bring basic medications from home",
		"Check if your hotel offers free laundry facilities",
	},
}

// GeneralTips returns destination-agnostic advice used when a trip has
// no expenses yet.
func GeneralTips() []string {
	return []string{
		"Set a daily spending limit before your trip",
		"Research the average costs at your destination",
		"Look for destination-specific discounts before traveling",
	}
}

// TipsFor returns the saving tips for the given category id, falling
// back to the "other" tips for unknown ids.
func TipsFor(id string) []string {
	if tips, ok := moneySavingTips[id]; ok {
		return tips
	}
	return moneySavingTips["other"]
}
