package service

import (
	"reflect"

	"lexilearn_backend/internal/model"
)

// QuizAnswer is one submitted answer, matched to a question by index.
type QuizAnswer struct {
	QuestionIndex  int         `json:"questionIndex"`
	SelectedAnswer interface{} `json:"selectedAnswer"`
}

// GradeResult is the outcome of grading one submission.
type GradeResult struct {
	Answers         []model.SubmissionAnswer `json:"answers"`
	TotalScore      int                      `json:"totalScore"`
	MaxScore        int                      `json:"maxScore"`
	Percentage      int                      `json:"percentage"`
	CorrectAnswers  int                      `json:"correctAnswers"`
	TotalQuestions  int                      `json:"totalQuestions"`
	PerQuestionTime int                      `json:"perQuestionTime"`
}

// GradeSubmission grades answers against questions. Stateless and
// idempotent: identical inputs always produce identical results.
//
// A question with no submitted answer is scored incorrect with zero points
// and a nil recorded answer; it is not an error. Per-question time is the
// total apportioned uniformly, since clients only report the total.
func GradeSubmission(questions []model.Question, answers []QuizAnswer, timeSpent int) GradeResult {
	byIndex := make(map[int]QuizAnswer, len(answers))
	for _, a := range answers {
		byIndex[a.QuestionIndex] = a
	}

	result := GradeResult{
		Answers:        make([]model.SubmissionAnswer, 0, len(questions)),
		TotalQuestions: len(questions),
	}

	for i, q := range questions {
		result.MaxScore += q.Points

		graded := model.SubmissionAnswer{QuestionIndex: i}
		if a, ok := byIndex[i]; ok {
			graded.SelectedAnswer = a.SelectedAnswer
			if AnswerMatches(q.CorrectAnswer, a.SelectedAnswer) {
				graded.IsCorrect = true
				graded.Points = q.Points
				result.TotalScore += q.Points
				result.CorrectAnswers++
			}
		}
		result.Answers = append(result.Answers, graded)
	}

	if result.MaxScore > 0 {
		result.Percentage = int(float64(result.TotalScore)/float64(result.MaxScore)*100 + 0.5)
	}
	if len(questions) > 0 {
		result.PerQuestionTime = timeSpent / len(questions)
	}

	return result
}

// AnswerMatches compares a submitted answer to the expected one. When the
// expected answer is a list, any member counts (multi-key accepted answers);
// otherwise the comparison is exact.
func AnswerMatches(correct, got interface{}) bool {
	if list, ok := correct.([]interface{}); ok {
		for _, c := range list {
			if scalarEqual(c, got) {
				return true
			}
		}
		return false
	}
	return scalarEqual(correct, got)
}

// scalarEqual compares two scalars. Values that round-tripped through JSON
// arrive as float64, while values built in Go are often int, so numbers are
// compared numerically.
func scalarEqual(a, b interface{}) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}
