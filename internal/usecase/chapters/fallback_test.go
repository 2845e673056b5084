package chapters

import (
	"testing"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

func TestEqualSplitFallbackTwoLineTranscript(t *testing.T) {
	lines := []entities.TranscriptLine{
		testLine(0, 10, "hi"),
		testLine(10, 20, "bye"),
	}

	drafts := EqualSplitFallback(lines, 10)
	// duration 20, count 10, step max(20/10,1)=2 -> ten two-second chapters
	if len(drafts) != 10 {
		t.Fatalf("expected 10 chapters, got %d", len(drafts))
	}
	for i, d := range drafts {
		if d.StartSec != i*2 {
			t.Errorf("chapter %d start = %d, want %d", i, d.StartSec, i*2)
		}
		if *d.EndSec != (i+1)*2 {
			t.Errorf("chapter %d end = %d, want %d", i, *d.EndSec, (i+1)*2)
		}
	}
	if drafts[9].StartSec != 18 || *drafts[9].EndSec != 20 {
		t.Errorf("last chapter should close at the duration, got %+v", drafts[9])
	}
}

func TestEqualSplitFallbackMetadata(t *testing.T) {
	drafts := EqualSplitFallback([]entities.TranscriptLine{testLine(0, 100, "x")}, 4)
	if len(drafts) != 4 {
		t.Fatalf("expected 4 chapters, got %d", len(drafts))
	}
	for i, d := range drafts {
		if d.Source != entities.ChapterSourceStub {
			t.Errorf("source = %q, want %q", d.Source, entities.ChapterSourceStub)
		}
		if d.Confidence == nil || *d.Confidence != 0.5 {
			t.Errorf("confidence = %v, want 0.5", d.Confidence)
		}
		if d.Order == nil || *d.Order != i+1 {
			t.Errorf("order = %v, want %d", d.Order, i+1)
		}
		if d.Summary == nil || *d.Summary == "" {
			t.Error("summary placeholder missing")
		}
		if d.Title == "" {
			t.Error("title missing")
		}
	}
}

func TestEqualSplitFallbackContiguousCoverage(t *testing.T) {
	lines := []entities.TranscriptLine{testLine(0, 3600, "stream")}
	drafts := EqualSplitFallback(lines, 7)
	if len(drafts) != 7 {
		t.Fatalf("expected 7 chapters, got %d", len(drafts))
	}
	if drafts[0].StartSec != 0 {
		t.Error("coverage should begin at zero")
	}
	for i := 1; i < len(drafts); i++ {
		if drafts[i].StartSec != *drafts[i-1].EndSec {
			t.Errorf("gap between chapter %d and %d", i-1, i)
		}
	}
	if *drafts[len(drafts)-1].EndSec != 3600 {
		t.Errorf("coverage should end at the duration, got %d", *drafts[len(drafts)-1].EndSec)
	}
}

func TestEqualSplitFallbackCapsAtTen(t *testing.T) {
	lines := []entities.TranscriptLine{testLine(0, 1000, "x")}
	if got := len(EqualSplitFallback(lines, 50)); got != 10 {
		t.Errorf("requested 50 chapters, got %d, want cap of 10", got)
	}
	if got := len(EqualSplitFallback(lines, 0)); got != 10 {
		t.Errorf("zero request should default to 10, got %d", got)
	}
}

func TestEqualSplitFallbackTinyDuration(t *testing.T) {
	lines := []entities.TranscriptLine{testLine(0, 3, "short")}
	drafts := EqualSplitFallback(lines, 10)
	if len(drafts) != 10 {
		t.Fatalf("expected 10 chapters, got %d", len(drafts))
	}
	// step is floored to 1s; ends clamp to the duration
	for i, d := range drafts {
		if d.StartSec != i {
			t.Errorf("chapter %d start = %d, want %d", i, d.StartSec, i)
		}
		if *d.EndSec > 3 {
			t.Errorf("chapter end %d exceeds duration", *d.EndSec)
		}
	}
}

func TestEqualSplitFallbackUnsortedInput(t *testing.T) {
	lines := []entities.TranscriptLine{
		testLine(50, 60, "later"),
		testLine(0, 10, "earlier"),
	}
	drafts := EqualSplitFallback(lines, 2)
	// duration comes from the last line by start order (end 60)
	if *drafts[1].EndSec != 60 {
		t.Errorf("duration should be 60, final end = %d", *drafts[1].EndSec)
	}
}

func TestEqualSplitFallbackEmpty(t *testing.T) {
	if drafts := EqualSplitFallback(nil, 10); drafts != nil {
		t.Error("empty transcript should yield no chapters")
	}
}
