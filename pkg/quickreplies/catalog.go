// Package quickreplies holds the static quick-reply catalog offered to the
// frontend and used to validate quick-reply selections. Never mutated at
// runtime.
package quickreplies

// QuickReply maps a machine-readable payload to its display text.
type QuickReply struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Payload     string `json:"payload"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

var catalog = []QuickReply{
	{
		ID:          "GET_WORKOUT_PLAN",
		Text:        "Get My Workout Plan",
		Payload:     "GET_WORKOUT_PLAN",
		Category:    "workout",
		Description: "Generate a personalized workout plan based on your goals",
	},
	{
		ID:          "GET_COMPLETE_DIET",
		Text:        "Get My Diet Plan",
		Payload:     "GET_COMPLETE_DIET",
		Category:    "nutrition",
		Description: "Create a complete nutrition plan tailored to your needs",
	},
	{
		ID:          "VIEW_RECOVERY_TIPS",
		Text:        "Recovery & Wellness Tips",
		Payload:     "VIEW_RECOVERY_TIPS",
		Category:    "recovery",
		Description: "Get personalized recovery and wellness recommendations",
	},
	{
		ID:          "GET_FITNESS_TIPS",
		Text:        "Fitness Tips & Advice",
		Payload:     "GET_FITNESS_TIPS",
		Category:    "tips",
		Description: "Receive expert fitness tips and training advice",
	},
	{
		ID:          "GET_FULL_OVERVIEW",
		Text:        "My Complete Overview",
		Payload:     "GET_FULL_OVERVIEW",
		Category:    "analytics",
		Description: "Get a comprehensive analysis of your fitness journey",
	},
}

// All returns a copy of the full catalog.
func All() []QuickReply {
	out := make([]QuickReply, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory filters the catalog by category.
func ByCategory(category string) []QuickReply {
	var out []QuickReply
	for _, r := range catalog {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// ByPayload resolves a payload code to its catalog entry.
func ByPayload(payload string) (QuickReply, bool) {
	for _, r := range catalog {
		if r.Payload == payload {
			return r, true
		}
	}
	return QuickReply{}, false
}

// AllowedPayloads lists the payload codes accepted by the insight service.
func AllowedPayloads() []string {
	out := make([]string, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, r.Payload)
	}
	return out
}
