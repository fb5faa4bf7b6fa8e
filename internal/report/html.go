package report

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/optipenn/uxaudit/internal/artifacts"
	"github.com/optipenn/uxaudit/internal/result"
)

// HTMLRenderer writes the self-contained HTML report. Screenshots are
// embedded as data URIs so the file can be shared without its directory.
type HTMLRenderer struct {
	store *artifacts.Store
	log   logrus.FieldLogger
}

// NewHTMLRenderer creates a renderer writing through the given store.
func NewHTMLRenderer(store *artifacts.Store, log logrus.FieldLogger) *HTMLRenderer {
	return &HTMLRenderer{
		store: store,
		log:   log.WithField("component", "report"),
	}
}

type resultView struct {
	result.Result

	StatusClass   string
	StatusText    string
	ScreenshotURI template.URL
	VisualAppeal  string
	Functionality string
	B2BReady      string
}

type reportView struct {
	GeneratedAt     string
	Summary         result.Summary
	Results         []resultView
	Recommendations []string
}

// Render produces the HTML report and returns its path.
func (r *HTMLRenderer) Render(ctx context.Context, results []result.Result, summary result.Summary, recommendations []string) (string, error) {
	views := make([]resultView, len(results))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, res := range results {
		g.Go(func() error {
			views[i] = buildView(res, r.encodeScreenshot(res.Screenshot))

			return nil
		})
	}

	// The group never returns errors; missing screenshots degrade to an
	// empty image slot.
	_ = g.Wait()

	view := reportView{
		GeneratedAt:     time.Now().Format("2006-01-02 15:04:05"),
		Summary:         summary,
		Results:         views,
		Recommendations: recommendations,
	}

	tmpl, err := template.New("report").Funcs(sprig.HtmlFuncMap()).Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing report template: %w", err)
	}

	path := r.store.ReportPath("html")

	f, err := os.Create(path) //nolint:gosec // path built by the artifact store
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, view); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	r.log.WithField("report", path).Info("HTML report generated")

	return path, nil
}

func buildView(res result.Result, screenshot template.URL) resultView {
	v := resultView{
		Result:        res,
		StatusClass:   "failed",
		StatusText:    "FAILED",
		ScreenshotURI: screenshot,
		VisualAppeal:  "Poor",
		Functionality: "Issues Found",
		B2BReady:      "Needs Work",
	}

	if res.Passed {
		v.StatusClass = "passed"
		v.StatusText = "PASSED"
		v.Functionality = "Working"
	}

	switch {
	case res.UXScore >= 7:
		v.VisualAppeal = "Good"
	case res.UXScore >= 4:
		v.VisualAppeal = "Needs Improvement"
	}

	if res.UXScore >= 6 && res.Passed {
		v.B2BReady = "Yes"
	}

	return v
}

func (r *HTMLRenderer) encodeScreenshot(path string) template.URL {
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path) //nolint:gosec // path recorded by the artifact store
	if err != nil {
		r.log.WithError(err).WithField("screenshot", path).Warn("Could not embed screenshot")

		return ""
	}

	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(data)) //nolint:gosec // base64 of our own PNG
}
