package grading

// defaultZoneRadius applies when a hotspot option has a position without a
// radius.
const defaultZoneRadius = 8

// hotspotGrader classifies each click against the correct zones. Correct
// clicks beyond the zone count earn nothing extra; each stray click deducts
// 1/totalOptions from the fraction. The split denominator (zones vs. total
// options) matches the authoring tool's published scoring and is kept as-is.
type hotspotGrader struct{}

func (hotspotGrader) Grade(q Question, answer interface{}) (bool, float64) {
	var zones []Position
	for _, o := range q.Options {
		if !o.IsCorrect || o.Position == nil {
			continue
		}
		z := *o.Position
		if z.Radius <= 0 {
			z.Radius = defaultZoneRadius
		}
		zones = append(zones, z)
	}
	if len(zones) == 0 {
		// No gradable zones: the question cannot be answered correctly.
		return false, 0
	}

	correct, incorrect := 0, 0
	for _, c := range clickPoints(answer) {
		hit := false
		for _, z := range zones {
			if PointInZone(c.X, c.Y, z.X, z.Y, z.Radius) {
				hit = true
				break
			}
		}
		if hit {
			correct++
		} else {
			incorrect++
		}
	}

	capped := correct
	if capped > len(zones) {
		capped = len(zones)
	}
	frac := float64(capped)/float64(len(zones)) - float64(incorrect)/float64(len(q.Options))
	if frac < 0 {
		frac = 0
	}
	full := correct >= len(zones) && incorrect == 0
	return full, frac * q.MaxPoints()
}
