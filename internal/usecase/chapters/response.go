package chapters

import (
	"encoding/json"
	"fmt"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
	"github.com/streamchapter-team/stream-chapters/pkg/ai"
	"github.com/streamchapter-team/stream-chapters/pkg/timecode"
)

// ParseIssue records one element of the model payload that could not be
// converted into a draft. Index is the element's position in the chapters
// array, or -1 when the payload itself was undecodable.
type ParseIssue struct {
	Index int
	Err   error
}

func (i ParseIssue) Error() string {
	return fmt.Sprintf("chapter element %d: %v", i.Index, i.Err)
}

// chapterPayload is the JSON document expected inside the first choice.
type chapterPayload struct {
	Chapters []chapterElement `json:"chapters"`
}

type chapterElement struct {
	Index   *int   `json:"index"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Title   string `json:"title"`
	Reason  string `json:"reason"`
	Summary string `json:"summary"`
}

// ParseModelResponse extracts chapter drafts from a chat completion.
// A nil response, empty choice list or undecodable content yields no drafts.
// Elements are converted independently: a bad element is skipped and
// reported as an issue without aborting the batch, so partial success is a
// normal outcome. The function is pure; identical input gives identical
// output.
func ParseModelResponse(resp *ai.ChatResponse) ([]entities.ChapterDraft, []ParseIssue) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, nil
	}

	var payload chapterPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return nil, []ParseIssue{{Index: -1, Err: fmt.Errorf("decode content: %w", err)}}
	}

	var drafts []entities.ChapterDraft
	var issues []ParseIssue
	for idx, el := range payload.Chapters {
		draft, err := convertElement(el, idx)
		if err != nil {
			issues = append(issues, ParseIssue{Index: idx, Err: err})
			continue
		}
		drafts = append(drafts, draft)
	}
	return drafts, issues
}

// convertElement turns one payload element into a draft, applying the
// defaults for absent fields.
func convertElement(el chapterElement, idx int) (entities.ChapterDraft, error) {
	startSec, err := clockOrZero(el.Start)
	if err != nil {
		return entities.ChapterDraft{}, fmt.Errorf("start: %w", err)
	}
	endSec, err := clockOrZero(el.End)
	if err != nil {
		return entities.ChapterDraft{}, fmt.Errorf("end: %w", err)
	}

	title := el.Title
	if title == "" {
		title = fmt.Sprintf("Chapter %d", idx+1)
	}

	var summary *string
	if el.Reason != "" {
		summary = &el.Reason
	} else if el.Summary != "" {
		summary = &el.Summary
	}

	order := idx + 1
	if el.Index != nil {
		order = *el.Index
	}

	return entities.ChapterDraft{
		Title:    title,
		StartSec: startSec,
		EndSec:   &endSec,
		Summary:  summary,
		Source:   entities.ChapterSourceLLM,
		Order:    &order,
	}, nil
}

// clockOrZero parses a MM:SS or HH:MM:SS clock string, treating an absent
// value as 00:00:00.
func clockOrZero(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return timecode.ParseClock(value)
}
