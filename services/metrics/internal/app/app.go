package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"

	"pacifisai/internal/util"
	"pacifisai/services/metrics/internal/dataset"
)

// Snapshot bundles every dashboard section into one payload.
type Snapshot struct {
	Overview      dataset.Overview      `json:"overview"`
	Analytics     dataset.Analytics     `json:"analytics"`
	Feedback      dataset.Feedback      `json:"feedback"`
	Knowledge     dataset.Knowledge     `json:"knowledge"`
	Escalation    dataset.Escalation    `json:"escalation"`
	Channels      dataset.Channels      `json:"channels"`
	Notifications dataset.Notifications `json:"notifications"`
	Empathy       dataset.Empathy       `json:"empathy"`
}

// App serves the dashboard datasets and owns the imported knowledge articles.
type App struct {
	extract func(r io.ReaderAt, size int64) (pages int, text string, err error)

	mu       sync.Mutex
	imported []dataset.ImportedArticle
}

// New constructs the metrics application.
func New() *App {
	return &App{extract: extractPDFText}
}

// Overview returns the overview dataset.
func (a *App) Overview() dataset.Overview { return dataset.OverviewData() }

// Analytics returns the analytics dataset.
func (a *App) Analytics() dataset.Analytics { return dataset.AnalyticsData() }

// Feedback returns the feedback dataset.
func (a *App) Feedback() dataset.Feedback { return dataset.FeedbackData() }

// Escalation returns the escalation dataset.
func (a *App) Escalation() dataset.Escalation { return dataset.EscalationData() }

// Channels returns the multi-channel dataset.
func (a *App) Channels() dataset.Channels { return dataset.ChannelsData() }

// Notifications returns the notifications dataset.
func (a *App) Notifications() dataset.Notifications { return dataset.NotificationsData() }

// Empathy returns the empathy demo dataset.
func (a *App) Empathy() dataset.Empathy { return dataset.EmpathyData() }

// Knowledge returns the knowledge dataset including imported articles.
func (a *App) Knowledge() dataset.Knowledge {
	knowledge := dataset.KnowledgeData()
	a.mu.Lock()
	defer a.mu.Unlock()
	knowledge.ImportedArticles = append([]dataset.ImportedArticle(nil), a.imported...)
	return knowledge
}

// ImportKnowledgePDF extracts text from an uploaded PDF help document and
// registers it as a knowledge article.
func (a *App) ImportKnowledgePDF(name string, data []byte) (dataset.ImportedArticle, error) {
	if len(data) == 0 {
		return dataset.ImportedArticle{}, ErrEmptyDocument
	}
	pages, text, err := a.extract(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return dataset.ImportedArticle{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return dataset.ImportedArticle{}, fmt.Errorf("%w: no extractable text", ErrInvalidDocument)
	}

	title := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if strings.TrimSpace(title) == "" {
		title = "Imported document"
	}
	article := dataset.ImportedArticle{
		ID:       util.NewID(),
		Title:    title,
		Source:   filepath.Base(name),
		Pages:    pages,
		Excerpt:  excerpt(text, 200),
		Imported: time.Now().UTC().Format(time.RFC3339),
	}
	a.mu.Lock()
	a.imported = append(a.imported, article)
	a.mu.Unlock()
	return article, nil
}

// Snapshot assembles every dashboard section concurrently.
func (a *App) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	sections := []func() error{
		func() error { snap.Overview = a.Overview(); return nil },
		func() error { snap.Analytics = a.Analytics(); return nil },
		func() error { snap.Feedback = a.Feedback(); return nil },
		func() error { snap.Knowledge = a.Knowledge(); return nil },
		func() error { snap.Escalation = a.Escalation(); return nil },
		func() error { snap.Channels = a.Channels(); return nil },
		func() error { snap.Notifications = a.Notifications(); return nil },
		func() error { snap.Empathy = a.Empathy(); return nil },
	}
	for _, section := range sections {
		fill := section
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fill()
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("assemble snapshot: %w", err)
	}
	return snap, nil
}

func extractPDFText(r io.ReaderAt, size int64) (int, string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return 0, "", fmt.Errorf("open pdf: %w", err)
	}
	totalPages := reader.NumPage()
	var builder strings.Builder
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip problematic pages instead of failing entirely
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return totalPages, builder.String(), nil
}

func excerpt(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
