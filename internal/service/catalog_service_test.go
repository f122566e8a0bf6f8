package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cafemine/mine-backend/internal/model"
)

func intPtr(v int) *int { return &v }

func TestAssembleMenu(t *testing.T) {
	now := time.Now()
	categories := []model.MenuCategory{
		{ID: 1, Name: "نوشیدنی گرم", CreatedAt: now},
		{ID: 2, Name: "کیک", CreatedAt: now},
	}
	items := []model.MenuItem{
		{ID: 10, PersianName: "لاته", CategoryID: intPtr(1)},
		{ID: 11, PersianName: "اسپرسو", CategoryID: intPtr(1)},
		{ID: 12, PersianName: "یتیم", CategoryID: nil},
	}
	options := []model.MenuItemOption{
		{ID: 100, MenuItemID: 10, Label: "کوچک", Price: 90000},
		{ID: 101, MenuItemID: 10, Label: "بزرگ", Price: 120000},
	}

	menu := assembleMenu(categories, items, options)

	if len(menu) != 2 {
		t.Fatalf("got %d categories, want 2", len(menu))
	}

	first := menu[0]
	if first.ItemCount != 2 || len(first.Items) != 2 {
		t.Fatalf("first category has %d items (count %d), want 2", len(first.Items), first.ItemCount)
	}
	if first.Items[0].PersianName != "لاته" || first.Items[1].PersianName != "اسپرسو" {
		t.Error("item order inside category was not preserved")
	}
	if len(first.Items[0].Options) != 2 {
		t.Errorf("first item has %d options, want 2", len(first.Items[0].Options))
	}
	if first.Items[1].Options == nil || len(first.Items[1].Options) != 0 {
		t.Error("optionless item must carry an empty slice, not nil")
	}

	second := menu[1]
	if second.ItemCount != 0 || second.Items == nil || len(second.Items) != 0 {
		t.Errorf("empty category: items=%v count=%d, want empty slice and 0", second.Items, second.ItemCount)
	}
}

func TestAssembleMenuEmptyCategorySerializesItemsArray(t *testing.T) {
	// A freshly created category has no items yet; its JSON must still carry
	// "items": [] so clients can iterate it unconditionally.
	menu := assembleMenu([]model.MenuCategory{{ID: 1, Name: "نوشیدنی سرد"}}, nil, nil)

	raw, err := json.Marshal(menu)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"items":[]`) {
		t.Errorf("serialized menu missing empty items array: %s", raw)
	}
}

func TestNormalizeCategories(t *testing.T) {
	if got := normalizeCategories(nil); got == nil || len(got) != 0 {
		t.Errorf("normalizeCategories(nil) = %v, want empty slice", got)
	}

	categories := normalizeCategories([]model.MenuCategory{{ID: 1, Name: "کیک"}})
	raw, err := json.Marshal(categories)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"items":[]`) {
		t.Errorf("serialized category missing empty items array: %s", raw)
	}
}

func TestAssembleMenuDropsUncategorizedItems(t *testing.T) {
	menu := assembleMenu(
		[]model.MenuCategory{{ID: 1, Name: "کیک"}},
		[]model.MenuItem{{ID: 10, PersianName: "یتیم"}},
		nil,
	)
	if menu[0].ItemCount != 0 {
		t.Errorf("uncategorized item leaked into a category tree: %+v", menu[0])
	}
}

func TestOptional(t *testing.T) {
	if got := optional(""); got != nil {
		t.Errorf("optional(\"\") = %v, want nil", *got)
	}
	if got := optional("   "); got != nil {
		t.Errorf("optional(blank) = %v, want nil", *got)
	}
	if got := optional("  چای  "); got == nil || *got != "چای" {
		t.Errorf("optional trims to %v, want چای", got)
	}
}
