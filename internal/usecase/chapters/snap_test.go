package chapters

import (
	"testing"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

func snapLines() []entities.TranscriptLine {
	return []entities.TranscriptLine{
		testLine(0, 10, "a"),
		testLine(10, 20, "b"),
		testLine(20, 30, "c"),
	}
}

func TestSnapToTranscriptAlignsBoundaries(t *testing.T) {
	drafts := []entities.ChapterDraft{
		{Title: "T", StartSec: 5, EndSec: intPtr(15), Source: entities.ChapterSourceLLM},
	}

	snapped := SnapToTranscript(drafts, snapLines())
	if len(snapped) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(snapped))
	}

	// 5 is equidistant from starts 0 and 10; the tie-break is
	// implementation-defined, membership is the contract.
	start := snapped[0].StartSec
	if start != 0 && start != 10 {
		t.Errorf("start = %d, want a member of {0,10}", start)
	}
	if *snapped[0].EndSec != 10 {
		t.Errorf("end = %d, want 10 (nearest of {10,20,30} to 15)", *snapped[0].EndSec)
	}
	if *snapped[0].EndSec < start {
		t.Error("snapped end must not precede snapped start")
	}
}

func TestSnapToTranscriptClampsOutOfRange(t *testing.T) {
	drafts := []entities.ChapterDraft{
		{Title: "early", StartSec: -50, EndSec: intPtr(-10)},
		{Title: "late", StartSec: 500, EndSec: intPtr(900)},
	}

	snapped := SnapToTranscript(drafts, snapLines())
	if snapped[0].StartSec != 0 || *snapped[0].EndSec != 10 {
		t.Errorf("early draft snapped to (%d,%d), want (0,10)", snapped[0].StartSec, *snapped[0].EndSec)
	}
	if snapped[1].StartSec != 20 || *snapped[1].EndSec != 30 {
		t.Errorf("late draft snapped to (%d,%d), want (20,30)", snapped[1].StartSec, *snapped[1].EndSec)
	}
}

func TestSnapToTranscriptMembership(t *testing.T) {
	lines := []entities.TranscriptLine{
		testLine(3, 9, "x"),
		testLine(14, 27, "y"),
		testLineNoEnd(40, "z"),
	}
	starts := map[int]bool{3: true, 14: true, 40: true}
	ends := map[int]bool{9: true, 27: true, 40: true}

	drafts := []entities.ChapterDraft{
		{StartSec: 0, EndSec: intPtr(11)},
		{StartSec: 16, EndSec: intPtr(5)},
		{StartSec: 100, EndSec: nil},
	}

	for _, d := range SnapToTranscript(drafts, lines) {
		if !starts[d.StartSec] {
			t.Errorf("start %d is not a transcript start", d.StartSec)
		}
		if d.EndSec == nil || !ends[*d.EndSec] {
			t.Errorf("end %v is not a transcript end", d.EndSec)
		}
		if *d.EndSec < d.StartSec {
			t.Errorf("inverted range %d > %d", d.StartSec, *d.EndSec)
		}
	}
}

func TestSnapToTranscriptForcesInvertedEnd(t *testing.T) {
	lines := []entities.TranscriptLine{
		testLine(0, 5, "a"),
		testLine(100, 105, "b"),
	}
	drafts := []entities.ChapterDraft{{StartSec: 100, EndSec: intPtr(10)}}

	snapped := SnapToTranscript(drafts, lines)
	if snapped[0].StartSec != 100 {
		t.Fatalf("start = %d, want 100", snapped[0].StartSec)
	}
	if *snapped[0].EndSec != 100 {
		t.Errorf("end = %d, want forced to start 100", *snapped[0].EndSec)
	}
}

func TestSnapToTranscriptNilEndUsesStart(t *testing.T) {
	drafts := []entities.ChapterDraft{{StartSec: 12, EndSec: nil}}
	snapped := SnapToTranscript(drafts, snapLines())
	if snapped[0].EndSec == nil {
		t.Fatal("end should be filled in")
	}
	if *snapped[0].EndSec != 10 {
		t.Errorf("end = %d, want 10", *snapped[0].EndSec)
	}
}

func TestSnapToTranscriptPreservesMetadata(t *testing.T) {
	summary := "s"
	tags := "a,b"
	conf := 0.9
	order := 4
	drafts := []entities.ChapterDraft{{
		Title:      "keep me",
		StartSec:   7,
		EndSec:     intPtr(13),
		Summary:    &summary,
		Tags:       &tags,
		Source:     entities.ChapterSourceLLM,
		Confidence: &conf,
		Order:      &order,
	}}

	got := SnapToTranscript(drafts, snapLines())[0]
	if got.Title != "keep me" || got.Summary != &summary || got.Tags != &tags ||
		got.Source != entities.ChapterSourceLLM || got.Confidence != &conf || got.Order != &order {
		t.Errorf("metadata was not preserved: %+v", got)
	}
}

func TestSnapToTranscriptEmptyInputs(t *testing.T) {
	drafts := []entities.ChapterDraft{{StartSec: 5}}
	if got := SnapToTranscript(nil, snapLines()); got != nil {
		t.Error("nil drafts should pass through")
	}
	if got := SnapToTranscript(drafts, nil); len(got) != 1 || got[0].StartSec != 5 {
		t.Error("empty lines should pass drafts through unchanged")
	}
}
