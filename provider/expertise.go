package provider

// Expertise categories form a fixed list; provider registrations may only
// pick tags from it and the by-expertise listing endpoint validates against
// it before touching the database.
var expertiseCategories = []string{
	"plumbing",
	"electrical",
	"carpentry",
	"painting",
	"cleaning",
	"gardening",
	"appliance-repair",
	"heating-cooling",
	"roofing",
	"flooring",
	"pest-control",
	"locksmith",
}

// ExpertiseCategories returns a copy of the fixed category list.
func ExpertiseCategories() []string {
	out := make([]string, len(expertiseCategories))
	copy(out, expertiseCategories)
	return out
}

// IsValidExpertise reports whether tag is one of the fixed categories.
func IsValidExpertise(tag string) bool {
	for _, c := range expertiseCategories {
		if c == tag {
			return true
		}
	}
	return false
}
