package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestKnowledgeMergesImportedArticles(t *testing.T) {
	a := New()
	a.extract = func(_ io.ReaderAt, _ int64) (int, string, error) {
		return 3, "How to configure billing alerts.\nStep one: open settings.", nil
	}

	article, err := a.ImportKnowledgePDF("billing-guide.pdf", []byte("%PDF-stub"))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if article.Title != "billing-guide" || article.Pages != 3 {
		t.Fatalf("unexpected article: %+v", article)
	}
	if !strings.Contains(article.Excerpt, "billing alerts") {
		t.Fatalf("excerpt missing content: %q", article.Excerpt)
	}

	knowledge := a.Knowledge()
	if len(knowledge.ImportedArticles) != 1 || knowledge.ImportedArticles[0].ID != article.ID {
		t.Fatalf("knowledge must include the imported article: %+v", knowledge.ImportedArticles)
	}
	if len(knowledge.Categories) == 0 {
		t.Fatal("base knowledge dataset missing")
	}
}

func TestImportRejectsEmptyDocument(t *testing.T) {
	a := New()
	if _, err := a.ImportKnowledgePDF("empty.pdf", nil); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestImportRejectsUnreadableDocument(t *testing.T) {
	a := New()
	if _, err := a.ImportKnowledgePDF("junk.pdf", []byte("not a pdf at all")); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestImportRejectsTextlessDocument(t *testing.T) {
	a := New()
	a.extract = func(_ io.ReaderAt, _ int64) (int, string, error) {
		return 1, "   \n ", nil
	}
	if _, err := a.ImportKnowledgePDF("scanned.pdf", []byte("%PDF-stub")); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestSnapshotAssemblesAllSections(t *testing.T) {
	a := New()
	snap, err := a.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap.Overview.KPIs) == 0 || len(snap.Analytics.Performance) == 0 ||
		len(snap.Feedback.Recent) == 0 || len(snap.Knowledge.Categories) == 0 ||
		len(snap.Escalation.Steps) == 0 || len(snap.Channels.Channels) == 0 ||
		len(snap.Notifications.Notifications) == 0 || len(snap.Empathy.Examples) == 0 {
		t.Fatalf("snapshot has empty sections: %+v", snap)
	}
}

func TestSnapshotHonorsCancelledContext(t *testing.T) {
	a := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.Snapshot(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestExcerptTruncatesOnWordStream(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := excerpt(long, 20)
	if len([]rune(got)) != 21 || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected excerpt: %q", got)
	}
}
