package service

import (
	"strings"
	"testing"

	"github.com/cafemine/mine-backend/internal/model"
)

func strPtr(s string) *string { return &s }

func TestFormatRial(t *testing.T) {
	got := FormatRial(250000)
	if !strings.HasSuffix(got, " ریال") {
		t.Errorf("FormatRial(250000) = %q, want the rial suffix", got)
	}
	if strings.Contains(got, "250000") {
		t.Errorf("FormatRial(250000) = %q, want localized digits with grouping", got)
	}
	if FormatRial(250000) != got {
		t.Error("FormatRial is not deterministic")
	}
}

func TestBuildMenuContext(t *testing.T) {
	categories := []model.MenuCategory{
		{
			Name:        "نوشیدنی گرم",
			Description: strPtr("بر پایه اسپرسو"),
			Items: []model.MenuItem{
				{
					PersianName: "لاته",
					EnglishName: strPtr("Latte"),
					Description: strPtr("با شیر بخارداده"),
					Options: []model.MenuItemOption{
						{Label: "کوچک", Price: 90000},
						{Label: "بزرگ", Price: 120000},
					},
				},
				{
					PersianName: "اسپرسو",
					Options:     []model.MenuItemOption{{Label: "سینگل", Price: 70000}},
				},
			},
		},
		{
			Name: "کیک",
		},
	}

	got := BuildMenuContext(categories)

	for _, want := range []string{
		"دسته نوشیدنی گرم: بر پایه اسپرسو",
		"\n- لاته (Latte) | کوچک: " + FormatRial(90000) + " / بزرگ: " + FormatRial(120000),
		"\n  توضیحات: با شیر بخارداده",
		"\n- اسپرسو | سینگل: " + FormatRial(70000),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q\nfull context:\n%s", want, got)
		}
	}

	blocks := strings.Split(got, "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[1] != "دسته کیک" {
		t.Errorf("empty category block = %q, want bare heading", blocks[1])
	}
}

func TestBuildMenuContextEmpty(t *testing.T) {
	if got := BuildMenuContext(nil); got != "" {
		t.Errorf("BuildMenuContext(nil) = %q, want empty string", got)
	}
}
