package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cafemine/mine-backend/internal/config"
	"github.com/cafemine/mine-backend/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// Assistant sentinel errors.
var (
	ErrEmptyQuestion          = errors.New("question is empty")
	ErrAssistantNotConfigured = errors.New("assistant API key is not configured")
	ErrMenuEmpty              = errors.New("menu is empty")
)

// assistantTimeout bounds a single generation call; generation latency is
// otherwise unbounded.
const assistantTimeout = 60 * time.Second

const assistantPrompt = `تو نقش باریستای یک کافه ایرانی به نام «کافه ماین» را داری. بر اساس منوی زیر، به پرسش یا درخواست مشتری جواب بده. پیشنهادت را با لحن دوستانه فارسی بده و حتماً نام نوشیدنی‌های پیشنهادی را ذکر کن. اگر لازم بود توضیح بده چرا فکر می‌کنی آن نوشیدنی مناسب است. فقط از اطلاعات منوی زیر استفاده کن و اگر چیزی در منو نیست واضح بگو موجود نیست.`

// menuProvider is the slice of CatalogService the assistant reads from.
type menuProvider interface {
	ListMenu(ctx context.Context, includeUnavailable bool) ([]model.MenuCategory, error)
}

// AssistantService answers menu questions through a Gemini generation call,
// grounded in the currently available menu.
type AssistantService struct {
	client    *genai.Client
	modelName string
	menu      menuProvider
	log       zerolog.Logger
}

// NewAssistantService creates an AssistantService. A missing GEMINI_API_KEY is
// not a startup error: the service stays up and Answer reports the
// misconfiguration per request.
func NewAssistantService(ctx context.Context, cfg *config.Config, menu menuProvider, log zerolog.Logger) (*AssistantService, error) {
	s := &AssistantService{
		modelName: cfg.GeminiModel,
		menu:      menu,
		log:       log,
	}

	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, assistant endpoint disabled")
		return s, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	s.client = client
	return s, nil
}

// Close releases the underlying API client.
func (s *AssistantService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Answer forwards a customer question to the generation model with the
// serialized available menu as context, returning the generated reply text
// unmodified. Input validation happens before any network call.
func (s *AssistantService) Answer(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	categories, err := s.menu.ListMenu(ctx, false)
	if err != nil {
		return "", fmt.Errorf("load menu: %w", err)
	}
	if countItems(categories) == 0 {
		return "", ErrMenuEmpty
	}
	if s.client == nil {
		return "", ErrAssistantNotConfigured
	}

	menuContext := BuildMenuContext(categories)

	ctx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	generative := s.client.GenerativeModel(s.modelName)
	res, err := generative.GenerateContent(ctx,
		genai.Text(assistantPrompt+"\n\nمنو:\n"+menuContext),
		genai.Text("مشتری گفت: "+question),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	reply := extractText(res)
	if reply == "" {
		return "", errors.New("empty generation response")
	}

	s.log.Debug().Int("context_bytes", len(menuContext)).Msg("assistant reply generated")
	return reply, nil
}

func countItems(categories []model.MenuCategory) int {
	n := 0
	for _, c := range categories {
		n += len(c.Items)
	}
	return n
}

func extractText(res *genai.GenerateContentResponse) string {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
