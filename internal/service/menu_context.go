package service

import (
	"strings"

	"github.com/cafemine/mine-backend/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var faPrinter = message.NewPrinter(language.Persian)

// FormatRial renders a price in rial with Persian digits and grouping,
// matching the storefront's display format.
func FormatRial(price int64) string {
	return faPrinter.Sprint(number.Decimal(price)) + " ریال"
}

// BuildMenuContext serializes a menu tree into the deterministic Persian text
// block handed to the assistant as grounding context. The shape is one block
// per category, one bullet per item with its labeled prices, and an indented
// description line when the item has one.
func BuildMenuContext(categories []model.MenuCategory) string {
	blocks := make([]string, 0, len(categories))

	for _, category := range categories {
		var b strings.Builder
		b.WriteString("دسته " + category.Name)
		if category.Description != nil && *category.Description != "" {
			b.WriteString(": " + *category.Description)
		}

		for _, item := range category.Items {
			b.WriteString("\n- " + item.PersianName)
			if item.EnglishName != nil && *item.EnglishName != "" {
				b.WriteString(" (" + *item.EnglishName + ")")
			}
			if len(item.Options) > 0 {
				prices := make([]string, 0, len(item.Options))
				for _, opt := range item.Options {
					prices = append(prices, opt.Label+": "+FormatRial(opt.Price))
				}
				b.WriteString(" | " + strings.Join(prices, " / "))
			}
			if item.Description != nil && *item.Description != "" {
				b.WriteString("\n  توضیحات: " + *item.Description)
			}
		}

		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n")
}
