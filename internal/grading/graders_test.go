package grading

import (
	"encoding/json"
	"math"
	"testing"
)

func mcQuestion(points float64, correct ...int) Question {
	opts := []Option{{Text: "A"}, {Text: "B"}, {Text: "C"}, {Text: "D"}}
	for _, i := range correct {
		opts[i].IsCorrect = true
	}
	return Question{Type: MultipleChoice, Points: points, Options: opts}
}

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return v
}

func assertGrade(t *testing.T, q Question, answer interface{}, wantCorrect bool, wantPoints float64) {
	t.Helper()
	g := GraderFor(q.Type)
	if g == nil {
		t.Fatalf("no grader for type %q", q.Type)
	}
	correct, points := g.Grade(q, answer)
	if correct != wantCorrect {
		t.Fatalf("correct=%v, want %v", correct, wantCorrect)
	}
	if math.Abs(points-wantPoints) > 1e-9 {
		t.Fatalf("points=%v, want %v", points, wantPoints)
	}
	// graders are pure: a second call must agree with the first
	correct2, points2 := g.Grade(q, answer)
	if correct2 != correct || points2 != points {
		t.Fatalf("grader not deterministic: (%v,%v) then (%v,%v)", correct, points, correct2, points2)
	}
	if points < 0 || points > q.MaxPoints() {
		t.Fatalf("points %v outside [0,%v]", points, q.MaxPoints())
	}
}

func TestMultipleChoice(t *testing.T) {
	q := mcQuestion(3, 1)
	tests := []struct {
		name    string
		answer  interface{}
		correct bool
		points  float64
	}{
		{"correct bare index", float64(1), true, 3},
		{"wrong index", float64(0), false, 0},
		{"index object", decode(t, `{"index": 1}`), true, 3},
		{"numeric string", "1", true, 3},
		{"out of range", float64(9), false, 0},
		{"negative", float64(-1), false, 0},
		{"garbage", decode(t, `{"foo": "bar"}`), false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertGrade(t, q, tc.answer, tc.correct, tc.points)
		})
	}
}

func TestMultipleResponse(t *testing.T) {
	q := mcQuestion(4, 0, 2)
	q.Type = MultipleResponse
	tests := []struct {
		name    string
		answer  interface{}
		correct bool
		points  float64
	}{
		{"exact set", decode(t, `[0, 2]`), true, 4},
		{"order irrelevant", decode(t, `[2, 0]`), true, 4},
		{"one right one wrong extra", decode(t, `[0, 1, 2]`), false, 2}, // (2-1)/2 * 4
		{"half right", decode(t, `[0]`), false, 2},
		{"all wrong floors at zero", decode(t, `[1, 3]`), false, 0},
		{"wrong outweighs right", decode(t, `[0, 1, 3]`), false, 0},
		{"malformed", "nope", false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertGrade(t, q, tc.answer, tc.correct, tc.points)
		})
	}

	t.Run("no correct options", func(t *testing.T) {
		empty := mcQuestion(4)
		empty.Type = MultipleResponse
		assertGrade(t, empty, decode(t, `[0]`), false, 0)
	})
}

func TestTrueFalse(t *testing.T) {
	q := Question{Type: TrueFalse, Points: 2, Options: []Option{
		{Text: "True", IsCorrect: true},
		{Text: "False"},
	}}
	tests := []struct {
		name    string
		answer  interface{}
		correct bool
		points  float64
	}{
		{"bool true", true, true, 2},
		{"string true", "true", true, 2},
		{"numeric one", float64(1), true, 2},
		{"string false", "false", false, 0},
		{"garbage is false", "whatever", false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertGrade(t, q, tc.answer, tc.correct, tc.points)
		})
	}

	t.Run("correct side is false", func(t *testing.T) {
		q := Question{Type: TrueFalse, Points: 2, Options: []Option{
			{Text: "True"},
			{Text: "False", IsCorrect: true},
		}}
		assertGrade(t, q, false, true, 2)
		assertGrade(t, q, "true", false, 0)
	})
}

func TestShortAnswer(t *testing.T) {
	q := Question{Type: ShortAnswer, Points: 1, Options: []Option{
		{Text: "Photosynthesis"},
		{Text: "photo synthesis"},
	}}
	tests := []struct {
		name    string
		answer  interface{}
		correct bool
		points  float64
	}{
		{"exact", "Photosynthesis", true, 1},
		{"case and whitespace", "  photosynthesis \n", true, 1},
		{"second accepted answer", "PHOTO SYNTHESIS", true, 1},
		{"no fuzzy match", "fotosynthesis", false, 0},
		{"non-string", float64(3), false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertGrade(t, q, tc.answer, tc.correct, tc.points)
		})
	}
}

func TestQuestionnaireStructured(t *testing.T) {
	q := Question{Type: Questionnaire, Points: 5, Subquestions: []Subquestion{
		{Assignments: []Assignment{{OptionID: "a", Points: 2}, {OptionID: "b", Points: 1}}},
		{Assignments: []Assignment{{OptionID: "c", Points: 3}}},
	}}
	tests := []struct {
		name    string
		answer  interface{}
		correct bool
		points  float64
	}{
		{"both rows credited", decode(t, `{"0": ["a"], "1": ["c"]}`), true, 5},
		{"partial first row", decode(t, `{"0": ["b"]}`), true, 1},
		{"multi-select in one row", decode(t, `{"0": ["a", "b"]}`), true, 3},
		{"scalar selection accepted", decode(t, `{"1": "c"}`), true, 3},
		{"no credit earned", decode(t, `{"0": ["z"]}`), false, 0},
		{"malformed keys", decode(t, `{"first": ["a"]}`), false, 0},
		{"non-object", decode(t, `[1, 2]`), false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertGrade(t, q, tc.answer, tc.correct, tc.points)
		})
	}

	t.Run("total capped at question points", func(t *testing.T) {
		capped := q
		capped.Points = 3
		assertGrade(t, capped, decode(t, `{"0": ["a", "b"], "1": ["c"]}`), true, 3)
	})
}

func TestQuestionnaireLegacyFallback(t *testing.T) {
	// No structured subquestions: credit lives on options tagged with a
	// subquestion text, matched by selected option id.
	q := Question{Type: Questionnaire, Points: 4, Options: []Option{
		{ID: "10", Text: "agree", Points: 2, SubquestionText: "row one"},
		{ID: "11", Text: "disagree", Points: 1, SubquestionText: "row two"},
		{ID: "12", Text: "untagged", Points: 9},
	}}
	assertGrade(t, q, decode(t, `{"0": ["10"], "1": ["11"]}`), true, 3)
	// untagged options never earn credit
	assertGrade(t, q, decode(t, `{"0": ["12"]}`), false, 0)
	// numeric selections canonicalize to the same ids
	assertGrade(t, q, decode(t, `{"0": [10]}`), true, 2)
}

func TestHotspot(t *testing.T) {
	q := Question{Type: Hotspot, Points: 6, Options: []Option{
		{Text: "zone a", IsCorrect: true, Position: &Position{X: 100, Y: 100, Radius: 10}},
		{Text: "zone b", IsCorrect: true, Position: &Position{X: 200, Y: 200, Radius: 10}},
		{Text: "decoy", Position: &Position{X: 300, Y: 300, Radius: 10}},
	}}
	tests := []struct {
		name    string
		answer  interface{}
		correct bool
		points  float64
	}{
		{"both zones hit", decode(t, `[{"x":100,"y":100},{"x":200,"y":200}]`), true, 6},
		{"one zone hit", decode(t, `[{"x":100,"y":100}]`), false, 3},
		{"stray click penalized by option count", decode(t, `[{"x":100,"y":100},{"x":200,"y":200},{"x":0,"y":0}]`), false, 4}, // 2/2 - 1/3
		{"extra correct clicks earn nothing", decode(t, `[{"x":100,"y":100},{"x":101,"y":100},{"x":200,"y":200}]`), true, 6},
		{"all strays floor at zero", decode(t, `[{"x":0,"y":0},{"x":1,"y":1},{"x":2,"y":2}]`), false, 0},
		{"string coords parse, bad entry dropped", decode(t, `[{"x":"100","y":100},{"y":5}]`), false, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertGrade(t, q, tc.answer, tc.correct, tc.points)
		})
	}

	t.Run("no correct zones is ungradable", func(t *testing.T) {
		q := Question{Type: Hotspot, Points: 6, Options: []Option{
			{Text: "decoy", Position: &Position{X: 0, Y: 0, Radius: 10}},
			{Text: "no position", IsCorrect: true},
		}}
		assertGrade(t, q, decode(t, `[{"x":0,"y":0}]`), false, 0)
	})

	t.Run("radius defaults to 8", func(t *testing.T) {
		q := Question{Type: Hotspot, Points: 2, Options: []Option{
			{Text: "zone", IsCorrect: true, Position: &Position{X: 50, Y: 50}},
		}}
		// 8 * 1.2 = 9.6 tolerance radius
		assertGrade(t, q, decode(t, `[{"x":59,"y":50}]`), true, 2)
		assertGrade(t, q, decode(t, `[{"x":60,"y":50}]`), false, 0)
	})
}

func TestDefaultPointsValue(t *testing.T) {
	q := mcQuestion(0, 1)
	assertGrade(t, q, float64(1), true, 1)
}
