package chapters

import (
	"fmt"
	"sort"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
	"github.com/streamchapter-team/stream-chapters/pkg/timecode"
)

const fallbackSummary = "Placeholder summary for this segment."

// maxFallbackChapters caps the equal split regardless of the request.
const maxFallbackChapters = 10

// EqualSplitFallback produces a deterministic equal-duration chapter split.
// It is a pure function of its inputs and is used whenever the model path
// is unavailable or returned nothing usable. Empty input yields no chapters.
func EqualSplitFallback(lines []entities.TranscriptLine, maxChapters int) []entities.ChapterDraft {
	if len(lines) == 0 {
		return nil
	}

	sorted := make([]entities.TranscriptLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartSec < sorted[j].StartSec
	})

	last := sorted[len(sorted)-1]
	duration := last.EndOrStart()
	if last.StartSec > duration {
		duration = last.StartSec
	}

	chapterCount := maxChapters
	if chapterCount <= 0 || chapterCount > maxFallbackChapters {
		chapterCount = maxFallbackChapters
	}

	// A minimum step of 1s avoids zero-width chapters on tiny transcripts.
	step := duration / chapterCount
	if step < 1 {
		step = 1
	}

	drafts := make([]entities.ChapterDraft, 0, chapterCount)
	for idx := 0; idx < chapterCount; idx++ {
		start := idx * step
		end := (idx + 1) * step
		if end > duration {
			end = duration
		}
		endSec := end
		summary := fallbackSummary
		confidence := 0.5
		order := idx + 1
		drafts = append(drafts, entities.ChapterDraft{
			Title:      fmt.Sprintf("Chapter %d: %s - %s", idx+1, timecode.FormatHMS(start), timecode.FormatHMS(end)),
			StartSec:   start,
			EndSec:     &endSec,
			Summary:    &summary,
			Source:     entities.ChapterSourceStub,
			Confidence: &confidence,
			Order:      &order,
		})
	}
	return drafts
}
