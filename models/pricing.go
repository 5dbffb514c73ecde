package models

// FreeSignupCredits is what a fresh account starts with. The marketing
// copy used to say 5 in one place and 3 in another; 3 is what sign-up
// actually grants, so 3 it is everywhere.
const FreeSignupCredits = 3

const PlanFree = "free"

// PricingTier is reference data, never written at runtime.
type PricingTier struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	PriceUnit   string   `json:"priceUnit"` // "forever" or "month"
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Credits     int      `json:"credits"`
	Recommended bool     `json:"recommended,omitempty"`
}

// PricingTiers is the static plan catalog shown on the pricing page and
// used to resolve how many credits a purchase grants.
var PricingTiers = []PricingTier{
	{
		ID:          PlanFree,
		Name:        "Free",
		Price:       0,
		PriceUnit:   "forever",
		Description: "Perfect for trying out our services",
		Features: []string{
			"3 Credits",
			"Basic AI Humanizer",
			"Limited History (7 days)",
			"Standard Support",
		},
		Credits: FreeSignupCredits,
	},
	{
		ID:          "basic",
		Name:        "Basic",
		Price:       9.99,
		PriceUnit:   "month",
		Description: "Great for occasional use",
		Features: []string{
			"150 Credits per month",
			"Advanced AI Humanizer",
			"Full History",
			"Priority Support",
			"Download as PDF",
			"Plagiarism Detection (5/mo)",
		},
		Credits: 150,
	},
	{
		ID:          "premium",
		Name:        "Premium",
		Price:       19.99,
		PriceUnit:   "month",
		Description: "Ideal for regular content creators",
		Features: []string{
			"500 Credits per month",
			"Premium AI Humanizer",
			"Full History",
			"Priority Support",
			"Download in multiple formats",
			"Unlimited Plagiarism Detection",
			"Advanced Style Controls",
			"Tone Adjustment",
		},
		Credits:     500,
		Recommended: true,
	},
	{
		ID:          "enterprise",
		Name:        "Enterprise",
		Price:       49.99,
		PriceUnit:   "month",
		Description: "For professional and business use",
		Features: []string{
			"2000 Credits per month",
			"Enterprise AI Humanizer",
			"Unlimited History",
			"Dedicated Support",
			"API Access",
			"Advanced Analytics",
			"Team Collaboration",
			"Custom Branding",
			"Priority Processing",
			"Custom Style Guides",
		},
		Credits: 2000,
	},
}

// TierByID resolves a plan id against the catalog. Second return is
// false for plans we do not sell.
func TierByID(id string) (PricingTier, bool) {
	for _, t := range PricingTiers {
		if t.ID == id {
			return t, true
		}
	}
	return PricingTier{}, false
}
