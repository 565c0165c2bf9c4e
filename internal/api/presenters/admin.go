package presenters

import (
	"fmt"
	"strings"

	"Cookbook-Backend/domain"
)

// Change-page links included in editor dashboard payloads so the frontend
// can deep-link straight into the edit forms.

func CookbookChangeURL(appURL, cookbookID string) string {
	return fmt.Sprintf("%s/admin/cookbooks/%s/change", strings.TrimRight(appURL, "/"), cookbookID)
}

func StepChangeURL(appURL, stepID string) string {
	return fmt.Sprintf("%s/admin/steps/%s/change", strings.TrimRight(appURL, "/"), stepID)
}

// MaterialSummary is the one-line material listing shown next to a step in
// the editor dashboard, e.g. "pork belly (500g), soy sauce, wok".
func MaterialSummary(materials []domain.Material) string {
	if len(materials) == 0 {
		return ""
	}

	parts := make([]string, 0, len(materials))
	for _, material := range materials {
		if material.Amount != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", material.Name, material.Amount))
			continue
		}
		parts = append(parts, material.Name)
	}
	return strings.Join(parts, ", ")
}
