package domain

// Mood identifies the visual theme of a newsletter.
type Mood string

const (
	MoodCelebration  Mood = "Celebration"
	MoodUrgent       Mood = "Urgent"
	MoodThankYou     Mood = "ThankYou"
	MoodCalm         Mood = "Calm"
	MoodProfessional Mood = "Professional"
	MoodCreative     Mood = "Creative"
	MoodMotivational Mood = "Motivational"
	MoodSeasonal     Mood = "Seasonal"
)

// DefaultMood is used whenever an unrecognized mood key is encountered.
const DefaultMood = MoodCelebration

// MoodInfo holds the presentation attributes for a mood. The color fields are
// design-system tokens consumed by the recipient view templates.
type MoodInfo struct {
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	BorderColor string `json:"borderColor"`
	TextColor   string `json:"textColor"`
	CTAColor    string `json:"ctaColor"`
	Description string `json:"description"`
}

var moodTable = map[Mood]MoodInfo{
	MoodCelebration: {
		Icon:        "🎉",
		Color:       "bg-yellow-50",
		BorderColor: "border-yellow-300",
		TextColor:   "text-yellow-900",
		CTAColor:    "bg-yellow-500 hover:bg-yellow-600",
		Description: "Bright and festive, for announcements worth celebrating.",
	},
	MoodUrgent: {
		Icon:        "🚨",
		Color:       "bg-red-50",
		BorderColor: "border-red-300",
		TextColor:   "text-red-900",
		CTAColor:    "bg-red-500 hover:bg-red-600",
		Description: "High-contrast and attention-grabbing, for time-sensitive news.",
	},
	MoodThankYou: {
		Icon:        "💝",
		Color:       "bg-pink-50",
		BorderColor: "border-pink-300",
		TextColor:   "text-pink-900",
		CTAColor:    "bg-pink-500 hover:bg-pink-600",
		Description: "Warm and appreciative, for thanking your audience.",
	},
	MoodCalm: {
		Icon:        "🌊",
		Color:       "bg-blue-50",
		BorderColor: "border-blue-300",
		TextColor:   "text-blue-900",
		CTAColor:    "bg-blue-500 hover:bg-blue-600",
		Description: "Soft and soothing, for gentle updates and check-ins.",
	},
	MoodProfessional: {
		Icon:        "💼",
		Color:       "bg-gray-50",
		BorderColor: "border-gray-300",
		TextColor:   "text-gray-900",
		CTAColor:    "bg-gray-700 hover:bg-gray-800",
		Description: "Clean and businesslike, for formal communication.",
	},
	MoodCreative: {
		Icon:        "🎨",
		Color:       "bg-purple-50",
		BorderColor: "border-purple-300",
		TextColor:   "text-purple-900",
		CTAColor:    "bg-purple-500 hover:bg-purple-600",
		Description: "Colorful and playful, for showcasing new ideas.",
	},
	MoodMotivational: {
		Icon:        "🚀",
		Color:       "bg-orange-50",
		BorderColor: "border-orange-300",
		TextColor:   "text-orange-900",
		CTAColor:    "bg-orange-500 hover:bg-orange-600",
		Description: "Energetic and inspiring, for rallying your readers.",
	},
	MoodSeasonal: {
		Icon:        "🍂",
		Color:       "bg-amber-50",
		BorderColor: "border-amber-300",
		TextColor:   "text-amber-900",
		CTAColor:    "bg-amber-500 hover:bg-amber-600",
		Description: "Themed for holidays and the time of year.",
	},
}

// Moods returns the closed set of supported moods in display order.
func Moods() []Mood {
	return []Mood{
		MoodCelebration, MoodUrgent, MoodThankYou, MoodCalm,
		MoodProfessional, MoodCreative, MoodMotivational, MoodSeasonal,
	}
}

// Info returns the presentation attributes for the mood. Unknown keys fall
// back to DefaultMood rather than rendering with zero-value styling.
func (m Mood) Info() MoodInfo {
	if info, ok := moodTable[m]; ok {
		return info
	}
	return moodTable[DefaultMood]
}

// Valid reports whether m is one of the supported mood keys.
func (m Mood) Valid() bool {
	_, ok := moodTable[m]
	return ok
}

// Normalize returns m if it is a supported mood, DefaultMood otherwise.
func (m Mood) Normalize() Mood {
	if m.Valid() {
		return m
	}
	return DefaultMood
}
