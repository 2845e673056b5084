package chapters

import (
	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

func testLine(start, end int, text string) entities.TranscriptLine {
	e := end
	return entities.TranscriptLine{StartSec: start, EndSec: &e, Text: text}
}

func testLineNoEnd(start int, text string) entities.TranscriptLine {
	return entities.TranscriptLine{StartSec: start, Text: text}
}

func intPtr(v int) *int {
	return &v
}
