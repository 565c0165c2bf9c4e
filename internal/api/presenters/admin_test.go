package presenters

import (
	"testing"

	"Cookbook-Backend/domain"
)

func TestChangeURLs(t *testing.T) {
	if got := CookbookChangeURL("https://cook.example.com/", "abc"); got != "https://cook.example.com/admin/cookbooks/abc/change" {
		t.Fatalf("unexpected cookbook change url: %q", got)
	}
	if got := StepChangeURL("https://cook.example.com", "def"); got != "https://cook.example.com/admin/steps/def/change" {
		t.Fatalf("unexpected step change url: %q", got)
	}
}

func TestMaterialSummary(t *testing.T) {
	materials := []domain.Material{
		{Name: "pork belly", Amount: "500g"},
		{Name: "soy sauce"},
		{Name: "wok"},
	}
	want := "pork belly (500g), soy sauce, wok"
	if got := MaterialSummary(materials); got != want {
		t.Fatalf("MaterialSummary = %q, want %q", got, want)
	}

	if got := MaterialSummary(nil); got != "" {
		t.Fatalf("expected empty summary for no materials, got %q", got)
	}
}
