package grading

import "math"

// pointsEpsilon absorbs float noise when comparing client-claimed points
// against the server's recomputation.
const pointsEpsilon = 0.01

// Verdict is the outcome of validating one response claim. IsCorrect and
// Points are always the authoritative values to store; Agrees reports
// whether the client's claim matched them.
type Verdict struct {
	Agrees    bool
	IsCorrect bool
	Points    float64
}

// Validate regrades one response server-side and compares the result against
// the client's claim. Empty answers only ever validate as incorrect/zero.
// Question types without a grader are a documented trust boundary: the claim
// is accepted verbatim.
func Validate(q Question, answer interface{}, claimedCorrect bool, claimedPoints float64) Verdict {
	if isEmptyAnswer(answer) {
		return verdictAgainst(false, 0, claimedCorrect, claimedPoints)
	}
	g := GraderFor(q.Type)
	if g == nil {
		return Verdict{Agrees: true, IsCorrect: claimedCorrect, Points: claimedPoints}
	}
	correct, points := g.Grade(q, answer)
	return verdictAgainst(correct, points, claimedCorrect, claimedPoints)
}

func verdictAgainst(correct bool, points float64, claimedCorrect bool, claimedPoints float64) Verdict {
	agrees := correct == claimedCorrect && math.Abs(points-claimedPoints) < pointsEpsilon
	return Verdict{Agrees: agrees, IsCorrect: correct, Points: points}
}
