package grading

import (
	"math"
	"strings"
)

type multipleChoiceGrader struct{}

func (multipleChoiceGrader) Grade(q Question, answer interface{}) (bool, float64) {
	idx, ok := optionIndex(answer)
	if !ok || idx < 0 || idx >= len(q.Options) {
		return false, 0
	}
	if !q.Options[idx].IsCorrect {
		return false, 0
	}
	return true, q.MaxPoints()
}

// multipleResponseGrader awards full credit for the exact correct set and
// otherwise partial credit of (hits - misses) / |correct|, floored at zero.
// Wrong picks cost as much as right picks earn.
type multipleResponseGrader struct{}

func (multipleResponseGrader) Grade(q Question, answer interface{}) (bool, float64) {
	selected, ok := indexSet(answer)
	if !ok {
		return false, 0
	}
	correct := map[int]bool{}
	for i, o := range q.Options {
		if o.IsCorrect {
			correct[i] = true
		}
	}
	hits, misses := 0, 0
	for i := range selected {
		if correct[i] {
			hits++
		} else {
			misses++
		}
	}
	if len(correct) > 0 && hits == len(correct) && misses == 0 {
		return true, q.MaxPoints()
	}
	if len(correct) == 0 {
		return false, 0
	}
	frac := float64(hits-misses) / float64(len(correct))
	if frac < 0 {
		frac = 0
	}
	return false, math.Min(frac, 1) * q.MaxPoints()
}

type trueFalseGrader struct{}

func (trueFalseGrader) Grade(q Question, answer interface{}) (bool, float64) {
	// The correct side is whichever option is marked correct and reads "True".
	want := false
	for _, o := range q.Options {
		if o.IsCorrect && strings.EqualFold(strings.TrimSpace(o.Text), "true") {
			want = true
			break
		}
	}
	if coerceBool(answer) != want {
		return false, 0
	}
	return true, q.MaxPoints()
}

type shortAnswerGrader struct{}

func (shortAnswerGrader) Grade(q Question, answer interface{}) (bool, float64) {
	text, ok := answer.(string)
	if !ok {
		return false, 0
	}
	got := strings.ToLower(strings.TrimSpace(text))
	if got == "" {
		return false, 0
	}
	for _, o := range q.Options {
		if strings.ToLower(strings.TrimSpace(o.Text)) == got {
			return true, q.MaxPoints()
		}
	}
	return false, 0
}

// questionnaireGrader sums assignment credit per subquestion, capped at the
// question's point value. There is no single right answer: any credit at all
// counts the question as answered correctly.
type questionnaireGrader struct{}

func (questionnaireGrader) Grade(q Question, answer interface{}) (bool, float64) {
	sel, ok := selections(answer)
	if !ok {
		return false, 0
	}
	total := 0.0
	if len(q.Subquestions) > 0 {
		for i, sq := range q.Subquestions {
			chosen := sel[i]
			if len(chosen) == 0 {
				continue
			}
			for _, a := range sq.Assignments {
				if chosen[a.OptionID] {
					total += a.Points
				}
			}
		}
	} else {
		// Legacy rows keep per-subquestion credit on the options themselves;
		// match any selected id against options that carry a subquestion text.
		union := map[string]bool{}
		for _, ids := range sel {
			for id := range ids {
				union[id] = true
			}
		}
		for _, o := range q.Options {
			if o.SubquestionText != "" && union[o.ID] {
				total += o.Points
			}
		}
	}
	points := math.Min(total, q.MaxPoints())
	if points < 0 {
		points = 0
	}
	return total > 0, points
}
