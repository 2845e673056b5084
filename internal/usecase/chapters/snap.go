package chapters

import (
	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

// SnapToTranscript repairs draft boundaries so every start coincides with a
// transcript line start and every end with a line end (or start, for lines
// without an end). Boundaries are first clamped into the transcript's
// [min start, max end] extent, then moved to the nearest real timestamp.
// An end landing before its start is forced equal to the start rather than
// producing an inverted range. Empty drafts or lines pass through unchanged.
func SnapToTranscript(drafts []entities.ChapterDraft, lines []entities.TranscriptLine) []entities.ChapterDraft {
	if len(drafts) == 0 || len(lines) == 0 {
		return drafts
	}

	starts := make([]int, len(lines))
	ends := make([]int, len(lines))
	for i, line := range lines {
		starts[i] = line.StartSec
		ends[i] = line.EndOrStart()
	}

	minTime := starts[0]
	for _, s := range starts[1:] {
		if s < minTime {
			minTime = s
		}
	}
	maxTime := ends[0]
	for _, e := range ends[1:] {
		if e > maxTime {
			maxTime = e
		}
	}

	snapped := make([]entities.ChapterDraft, 0, len(drafts))
	for _, draft := range drafts {
		rawStart := clamp(draft.StartSec, minTime, maxTime)
		endSec := draft.StartSec
		if draft.EndSec != nil {
			endSec = *draft.EndSec
		}
		rawEnd := clamp(endSec, minTime, maxTime)

		snappedStart := nearestTime(rawStart, starts)
		snappedEnd := nearestTime(rawEnd, ends)
		if snappedEnd < snappedStart {
			snappedEnd = snappedStart
		}

		out := draft
		out.StartSec = snappedStart
		out.EndSec = &snappedEnd
		snapped = append(snapped, out)
	}
	return snapped
}

func clamp(value, lo, hi int) int {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}

// nearestTime returns the candidate closest to target. On equal distance the
// first candidate encountered wins; callers must not rely on that tie-break.
func nearestTime(target int, candidates []int) int {
	closest := candidates[0]
	for _, c := range candidates[1:] {
		if abs(c-target) < abs(closest-target) {
			closest = c
		}
	}
	return closest
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
