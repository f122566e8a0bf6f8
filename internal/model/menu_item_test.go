package model

import (
	"encoding/json"
	"testing"
)

func TestNullableIDUnmarshal(t *testing.T) {
	type payload struct {
		CategoryID NullableID `json:"categoryId"`
	}

	tests := []struct {
		name string
		body string
		want NullableID
	}{
		{"absent", `{}`, NullableID{}},
		{"explicit null", `{"categoryId": null}`, NullableID{Set: true}},
		{"value", `{"categoryId": 3}`, NullableID{Set: true, Valid: true, Value: 3}},
		{"zero", `{"categoryId": 0}`, NullableID{Set: true, Valid: true, Value: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.CategoryID != tt.want {
				t.Errorf("got %+v, want %+v", p.CategoryID, tt.want)
			}
		})
	}
}

func TestNullableIDUnmarshalRejectsNonNumber(t *testing.T) {
	var n NullableID
	if err := json.Unmarshal([]byte(`"three"`), &n); err == nil {
		t.Error("unmarshal accepted a string value")
	}
}

func TestCreateRequestHasAmbiguousCategory(t *testing.T) {
	id := 2

	tests := []struct {
		name string
		req  CreateMenuItemRequest
		want bool
	}{
		{"neither", CreateMenuItemRequest{}, false},
		{"id only", CreateMenuItemRequest{CategoryID: &id}, false},
		{"name only", CreateMenuItemRequest{CategoryName: "کیک"}, false},
		{"both", CreateMenuItemRequest{CategoryID: &id, CategoryName: "کیک"}, true},
	}

	for _, tt := range tests {
		if got := tt.req.HasAmbiguousCategory(); got != tt.want {
			t.Errorf("%s: HasAmbiguousCategory() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUpdateRequestHasAmbiguousCategory(t *testing.T) {
	tests := []struct {
		name string
		req  UpdateMenuItemRequest
		want bool
	}{
		{"neither", UpdateMenuItemRequest{}, false},
		{"id only", UpdateMenuItemRequest{CategoryID: NullableID{Set: true, Valid: true, Value: 2}}, false},
		{"name only", UpdateMenuItemRequest{CategoryName: "کیک"}, false},
		{
			"both",
			UpdateMenuItemRequest{
				CategoryID:   NullableID{Set: true, Valid: true, Value: 2},
				CategoryName: "کیک",
			},
			true,
		},
		{
			// An explicit null plus a name is a detach-then-reattach, not a
			// conflict between two targets.
			"null plus name",
			UpdateMenuItemRequest{CategoryID: NullableID{Set: true}, CategoryName: "کیک"},
			false,
		},
	}

	for _, tt := range tests {
		if got := tt.req.HasAmbiguousCategory(); got != tt.want {
			t.Errorf("%s: HasAmbiguousCategory() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
