package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cafemine/mine-backend/internal/model"
	"github.com/rs/zerolog"
)

type stubMenu struct {
	categories []model.MenuCategory
	err        error
}

func (s stubMenu) ListMenu(ctx context.Context, includeUnavailable bool) ([]model.MenuCategory, error) {
	return s.categories, s.err
}

func populatedMenu() []model.MenuCategory {
	return []model.MenuCategory{
		{
			Name: "نوشیدنی گرم",
			Items: []model.MenuItem{
				{
					PersianName: "لاته",
					Options:     []model.MenuItemOption{{Label: "بزرگ", Price: 120000}},
				},
			},
		},
	}
}

func TestAnswerEmptyQuestion(t *testing.T) {
	s := &AssistantService{menu: stubMenu{categories: populatedMenu()}, log: zerolog.Nop()}

	for _, question := range []string{"", "   ", "\n\t"} {
		if _, err := s.Answer(context.Background(), question); !errors.Is(err, ErrEmptyQuestion) {
			t.Errorf("Answer(%q) = %v, want ErrEmptyQuestion", question, err)
		}
	}
}

func TestAnswerEmptyMenu(t *testing.T) {
	// Categories without items still count as an empty menu.
	s := &AssistantService{
		menu: stubMenu{categories: []model.MenuCategory{{Name: "کیک"}}},
		log:  zerolog.Nop(),
	}

	if _, err := s.Answer(context.Background(), "چی پیشنهاد میدی؟"); !errors.Is(err, ErrMenuEmpty) {
		t.Errorf("Answer with empty menu = %v, want ErrMenuEmpty", err)
	}
}

func TestAnswerNotConfigured(t *testing.T) {
	s := &AssistantService{menu: stubMenu{categories: populatedMenu()}, log: zerolog.Nop()}

	if _, err := s.Answer(context.Background(), "چی پیشنهاد میدی؟"); !errors.Is(err, ErrAssistantNotConfigured) {
		t.Errorf("Answer without a client = %v, want ErrAssistantNotConfigured", err)
	}
}

func TestAnswerMenuLoadError(t *testing.T) {
	loadErr := errors.New("connection refused")
	s := &AssistantService{menu: stubMenu{err: loadErr}, log: zerolog.Nop()}

	if _, err := s.Answer(context.Background(), "سلام"); !errors.Is(err, loadErr) {
		t.Errorf("Answer with failing menu load = %v, want wrapped %v", err, loadErr)
	}
}

func TestCountItems(t *testing.T) {
	if n := countItems(nil); n != 0 {
		t.Errorf("countItems(nil) = %d, want 0", n)
	}
	if n := countItems(populatedMenu()); n != 1 {
		t.Errorf("countItems = %d, want 1", n)
	}
}
