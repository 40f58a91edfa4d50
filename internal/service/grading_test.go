package service

import (
	"testing"

	"lexilearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeSubmissionScoresAndPercentage(t *testing.T) {
	questions := []model.Question{
		{Text: "pick one", CorrectAnswer: 1, Points: 10},
		{Text: "pick any", CorrectAnswer: []interface{}{2, 3}, Points: 5},
	}
	answers := []QuizAnswer{
		{QuestionIndex: 0, SelectedAnswer: 1},
		{QuestionIndex: 1, SelectedAnswer: 3},
	}

	result := GradeSubmission(questions, answers, 60)

	assert.Equal(t, 15, result.TotalScore)
	assert.Equal(t, 15, result.MaxScore)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 30, result.PerQuestionTime)
}

func TestGradeSubmissionUnansweredQuestion(t *testing.T) {
	questions := []model.Question{
		{CorrectAnswer: "a", Points: 10},
		{CorrectAnswer: "b", Points: 10},
	}
	answers := []QuizAnswer{
		{QuestionIndex: 0, SelectedAnswer: "a"},
	}

	result := GradeSubmission(questions, answers, 0)

	require.Len(t, result.Answers, 2)
	assert.Equal(t, 10, result.TotalScore)
	assert.Equal(t, 20, result.MaxScore)
	assert.Equal(t, 50, result.Percentage)
	assert.Equal(t, 1, result.CorrectAnswers)

	missed := result.Answers[1]
	assert.False(t, missed.IsCorrect)
	assert.Zero(t, missed.Points)
	assert.Nil(t, missed.SelectedAnswer)
}

func TestGradeSubmissionZeroMaxScore(t *testing.T) {
	questions := []model.Question{
		{CorrectAnswer: 1, Points: 0},
	}
	result := GradeSubmission(questions, []QuizAnswer{{QuestionIndex: 0, SelectedAnswer: 1}}, 10)

	assert.Equal(t, 0, result.Percentage)
	assert.Equal(t, 1, result.CorrectAnswers)
}

func TestGradeSubmissionNoQuestions(t *testing.T) {
	result := GradeSubmission(nil, nil, 30)

	assert.Zero(t, result.TotalScore)
	assert.Zero(t, result.MaxScore)
	assert.Zero(t, result.Percentage)
	assert.Zero(t, result.PerQuestionTime)
	assert.Empty(t, result.Answers)
}

func TestGradeSubmissionIdempotent(t *testing.T) {
	questions := []model.Question{
		{CorrectAnswer: []interface{}{"x", "y"}, Points: 3},
		{CorrectAnswer: 2, Points: 7},
	}
	answers := []QuizAnswer{
		{QuestionIndex: 0, SelectedAnswer: "y"},
		{QuestionIndex: 1, SelectedAnswer: 5},
	}

	first := GradeSubmission(questions, answers, 40)
	second := GradeSubmission(questions, answers, 40)

	assert.Equal(t, first, second)
}

func TestGradeSubmissionIgnoresOutOfRangeIndex(t *testing.T) {
	questions := []model.Question{
		{CorrectAnswer: 1, Points: 10},
	}
	answers := []QuizAnswer{
		{QuestionIndex: 5, SelectedAnswer: 1},
	}

	result := GradeSubmission(questions, answers, 0)

	assert.Zero(t, result.TotalScore)
	assert.Zero(t, result.CorrectAnswers)
}

func TestAnswerMatches(t *testing.T) {
	tests := []struct {
		name    string
		correct interface{}
		got     interface{}
		want    bool
	}{
		{"exact int", 1, 1, true},
		{"json float vs int", float64(1), 1, true},
		{"wrong int", 1, 2, false},
		{"string match", "paris", "paris", true},
		{"string case sensitive", "paris", "Paris", false},
		{"list membership", []interface{}{2, 3}, 3, true},
		{"list miss", []interface{}{2, 3}, 4, false},
		{"list of strings", []interface{}{"a", "b"}, "b", true},
		{"number vs string", 1, "1", false},
		{"nil answer", "a", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnswerMatches(tt.correct, tt.got))
		})
	}
}
