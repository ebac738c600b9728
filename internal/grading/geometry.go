package grading

import "math"

// zoneTolerance widens every hotspot zone by 20% to absorb pointer
// imprecision on small targets.
const zoneTolerance = 1.2

// PointInZone reports whether a click lands inside a circular zone,
// tolerance included. Callers filter out malformed zone data beforehand.
func PointInZone(clickX, clickY, zoneX, zoneY, radius float64) bool {
	return math.Hypot(clickX-zoneX, clickY-zoneY) <= radius*zoneTolerance
}
