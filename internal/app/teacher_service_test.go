package app_test

import (
	"errors"
	"testing"

	"console-quiz-service/internal/app"
	"console-quiz-service/internal/domain"
	"console-quiz-service/internal/infra/memory"
)

func twoAnswers() []domain.Answer {
	return []domain.Answer{
		{Text: "wrong"},
		{Text: "right", Correct: true},
	}
}

func TestTeacherAddValidation(t *testing.T) {
	store := memory.NewQuestionStore()
	service := app.NewTeacherService(store)

	if err := service.Add("   ", twoAnswers()); !errors.Is(err, domain.ErrBlankQuestion) {
		t.Fatalf("blank text: expected ErrBlankQuestion, got %v", err)
	}
	if err := service.Add("What is Go?", nil); !errors.Is(err, domain.ErrNoAnswers) {
		t.Fatalf("no answers: expected ErrNoAnswers, got %v", err)
	}
	if store.Size() != 0 {
		t.Fatalf("rejected adds must not change the store, size %d", store.Size())
	}
}

func TestTeacherAddDetectsDuplicateByNormalizedText(t *testing.T) {
	store := memory.NewQuestionStore()
	service := app.NewTeacherService(store)

	if err := service.Add("What is Go?", twoAnswers()); err != nil {
		t.Fatalf("add: %v", err)
	}
	for _, text := range []string{"What is Go?", "  what is go?  ", "WHAT   IS   GO?"} {
		if err := service.Add(text, twoAnswers()); !errors.Is(err, domain.ErrDuplicateQuestion) {
			t.Fatalf("%q: expected ErrDuplicateQuestion, got %v", text, err)
		}
	}
	if err := service.Add("What is Rust?", twoAnswers()); err != nil {
		t.Fatalf("different question rejected: %v", err)
	}
	if store.Size() != 2 {
		t.Fatalf("expected 2 questions, got %d", store.Size())
	}
}

func TestTeacherUpdate(t *testing.T) {
	store := memory.NewQuestionStore()
	service := app.NewTeacherService(store)
	if err := service.Add("original", twoAnswers()); err != nil {
		t.Fatalf("add: %v", err)
	}

	newAnswers := []domain.Answer{{Text: "only", Correct: true}}
	if err := service.Update(1, "updated", newAnswers); err != nil {
		t.Fatalf("update: %v", err)
	}
	q, err := store.Get(0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q.Text != "updated" || len(q.Answers) != 1 {
		t.Fatalf("update not applied: %+v", q)
	}
}

func TestTeacherUpdateRejectsBlankAndLeavesStoreUnchanged(t *testing.T) {
	store := memory.NewQuestionStore()
	service := app.NewTeacherService(store)
	if err := service.Add("original", twoAnswers()); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := service.Update(1, "  ", twoAnswers()); !errors.Is(err, domain.ErrBlankQuestion) {
		t.Fatalf("blank text: expected ErrBlankQuestion, got %v", err)
	}
	if err := service.Update(1, "new text", nil); !errors.Is(err, domain.ErrNoAnswers) {
		t.Fatalf("empty answers: expected ErrNoAnswers, got %v", err)
	}
	if err := service.Update(2, "new text", twoAnswers()); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("unknown number: expected ErrQuestionNotFound, got %v", err)
	}

	q, err := store.Get(0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q.Text != "original" || len(q.Answers) != 2 {
		t.Fatalf("rejected update mutated the stored question: %+v", q)
	}
}

func TestTeacherDelete(t *testing.T) {
	store := memory.NewQuestionStore()
	service := app.NewTeacherService(store)
	for _, text := range []string{"first", "second"} {
		if err := service.Add(text, twoAnswers()); err != nil {
			t.Fatalf("add %s: %v", text, err)
		}
	}

	deleted, err := service.Delete(1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Text != "first" {
		t.Fatalf("expected deleted question %q, got %q", "first", deleted.Text)
	}
	if store.Size() != 1 {
		t.Fatalf("expected size 1, got %d", store.Size())
	}

	if _, err := service.Delete(5); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("beyond size: expected ErrQuestionNotFound, got %v", err)
	}
	if store.Size() != 1 {
		t.Fatalf("failed delete must not change size, got %d", store.Size())
	}
}

func TestTeacherListSnapshot(t *testing.T) {
	store := memory.NewQuestionStore()
	service := app.NewTeacherService(store)
	if got := service.List(); len(got) != 0 {
		t.Fatalf("empty store: expected no questions, got %d", len(got))
	}
	if err := service.Add("only", twoAnswers()); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := service.List()
	if len(got) != 1 || got[0].Text != "only" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}
