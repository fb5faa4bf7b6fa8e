package scenario

import (
	"context"

	"github.com/optipenn/uxaudit/internal/browser"
	"github.com/optipenn/uxaudit/internal/score"
)

// ObserveLayout counts the structural UI element categories on the current
// page for the layout heuristic.
func ObserveLayout(ctx context.Context, b browser.Session) (score.LayoutObservation, error) {
	var (
		o   score.LayoutObservation
		err error
	)

	counts := []struct {
		dst      *int
		selector string
	}{
		{&o.Navigation, "nav, .sidebar, [role='navigation']"},
		{&o.Buttons, "button, .btn, input[type='submit']"},
		{&o.Forms, "form, .form"},
		{&o.Tables, "table, .table"},
		{&o.Cards, ".card, .panel, .widget"},
		{&o.Modals, ".modal, .dialog, [role='dialog']"},
		{&o.Responsive, "[class*='responsive'], [class*='mobile'], [class*='tablet'], [class*='desktop']"},
	}

	for _, c := range counts {
		if *c.dst, err = b.Count(ctx, c.selector); err != nil {
			return score.LayoutObservation{}, err
		}
	}

	return o, nil
}

// ObserveAccessibility gathers the raw accessibility signals on the current
// page for the accessibility heuristic.
func ObserveAccessibility(ctx context.Context, b browser.Session) (score.AccessibilityObservation, error) {
	var (
		o   score.AccessibilityObservation
		err error
	)

	counts := []struct {
		dst      *int
		selector string
	}{
		{&o.AriaElements, "[aria-label], [aria-describedby], [role]"},
		{&o.ImagesWithAlt, "img[alt]"},
		{&o.TotalImages, "img"},
		{&o.LabeledInputs, "label input, input[aria-label]"},
		{&o.TotalInputs, "input, select, textarea"},
		{&o.Headings, "h1, h2, h3, h4, h5, h6"},
	}

	for _, c := range counts {
		if *c.dst, err = b.Count(ctx, c.selector); err != nil {
			return score.AccessibilityObservation{}, err
		}
	}

	return o, nil
}
