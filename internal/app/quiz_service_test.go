package app_test

import (
	"testing"

	"console-quiz-service/internal/app"
	"console-quiz-service/internal/domain"
	"console-quiz-service/internal/infra/memory"
)

func newScoringService(t *testing.T) *app.QuizService {
	t.Helper()
	store := memory.NewQuestionStore()
	// Q1: correct answer at slot 2, Q2: correct answer at slot 1.
	store.Add(domain.Question{
		Text: "Q1",
		Answers: []domain.Answer{
			{Text: "wrong"},
			{Text: "right", Correct: true},
		},
	})
	store.Add(domain.Question{
		Text: "Q2",
		Answers: []domain.Answer{
			{Text: "right", Correct: true},
			{Text: "wrong"},
		},
	})
	return app.NewQuizService(store)
}

func TestStartQuizScoring(t *testing.T) {
	user := domain.User{Role: domain.RoleStudent, Username: "sam"}
	cases := []struct {
		name        string
		chosen      []int
		wantCorrect int
	}{
		{"all correct", []int{2, 1}, 2},
		{"one correct", []int{1, 1}, 1},
		{"zero choices", []int{0, 0}, 0},
		{"out of range choices", []int{9, -3}, 0},
		{"short choice vector", []int{2}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := newScoringService(t)
			result := service.StartQuiz(user, tc.chosen)
			if result.CorrectAnswers != tc.wantCorrect {
				t.Fatalf("expected %d correct, got %d", tc.wantCorrect, result.CorrectAnswers)
			}
			if result.TotalQuestions != 2 {
				t.Fatalf("expected 2 total questions, got %d", result.TotalQuestions)
			}
			if result.User != user {
				t.Fatalf("result carries wrong user: %+v", result.User)
			}
		})
	}
}

func TestStartQuizEmptyStore(t *testing.T) {
	service := app.NewQuizService(memory.NewQuestionStore())
	result := service.StartQuiz(domain.User{Username: "sam"}, []int{1, 2, 3})
	if result.CorrectAnswers != 0 || result.TotalQuestions != 0 {
		t.Fatalf("expected 0/0, got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
}

func TestQuestionsSnapshotMatchesScoringOrder(t *testing.T) {
	service := newScoringService(t)
	questions := service.Questions()
	if len(questions) != 2 || questions[0].Text != "Q1" || questions[1].Text != "Q2" {
		t.Fatalf("unexpected question order: %+v", questions)
	}
}
