package intent

// Classifier maps free-text questions to intent categories by keyword
// scoring. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	profiles        []Profile
	confidenceFloor float64
}

// New creates a Classifier. A non-positive floor falls back to the default.
func New(confidenceFloor float64) *Classifier {
	if confidenceFloor <= 0 {
		confidenceFloor = DefaultConfidenceFloor
	}
	return &Classifier{
		profiles:        profiles,
		confidenceFloor: confidenceFloor,
	}
}

// Profile returns the profile for the given type, falling back to general.
func (c *Classifier) Profile(t Type) Profile {
	for _, p := range c.profiles {
		if p.Type == t {
			return p
		}
	}
	return c.general()
}

func (c *Classifier) general() Profile {
	for _, p := range c.profiles {
		if p.Type == TypeGeneral {
			return p
		}
	}
	// The static table always carries a general profile.
	return Profile{Type: TypeGeneral, ContextLabel: "información general"}
}
