package intent

import "strings"

// Detect classifies a question into an intent category.
//
// Confidence for a profile = keyword hits / total keywords; the profile with
// the strictly highest confidence wins, ties keeping declaration order. A
// winning confidence below the floor forces general. Pure function of the
// input and the static profile table.
func (c *Classifier) Detect(question string) Result {
	q := strings.ToLower(question)

	best := Result{Type: TypeGeneral, Confidence: 0}
	for _, p := range c.profiles {
		if len(p.Keywords) == 0 {
			continue
		}
		hits := 0
		for _, kw := range p.Keywords {
			if strings.Contains(q, kw) {
				hits++
			}
		}
		confidence := float64(hits) / float64(len(p.Keywords))
		if confidence > best.Confidence {
			best = Result{Type: p.Type, Confidence: confidence}
		}
	}

	if best.Confidence < c.confidenceFloor {
		return Result{Type: TypeGeneral, Confidence: best.Confidence}
	}
	return best
}
