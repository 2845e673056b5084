package chapters

import (
	"reflect"
	"testing"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
	"github.com/streamchapter-team/stream-chapters/pkg/ai"
)

func chatResponse(content string) *ai.ChatResponse {
	resp := &ai.ChatResponse{}
	resp.Choices = make([]struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}, 1)
	resp.Choices[0].Message.Content = content
	return resp
}

func TestParseModelResponse(t *testing.T) {
	content := `{"chapters":[
		{"index":1,"start":"00:00:00","end":"00:05:00","title":"开场","reason":"打招呼"},
		{"index":2,"start":"00:05:00","end":"00:12:30","title":"正题","summary":"core"}
	]}`

	drafts, issues := ParseModelResponse(chatResponse(content))
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}

	first := drafts[0]
	if first.Title != "开场" || first.StartSec != 0 || *first.EndSec != 300 {
		t.Errorf("unexpected first draft %+v", first)
	}
	if first.Summary == nil || *first.Summary != "打招呼" {
		t.Errorf("reason should populate summary, got %+v", first.Summary)
	}
	if first.Source != entities.ChapterSourceLLM {
		t.Errorf("source = %q, want %q", first.Source, entities.ChapterSourceLLM)
	}
	if first.Order == nil || *first.Order != 1 {
		t.Errorf("order = %+v, want 1", first.Order)
	}

	// summary field is the fallback when reason is absent
	second := drafts[1]
	if second.Summary == nil || *second.Summary != "core" {
		t.Errorf("summary fallback not applied: %+v", second.Summary)
	}
	if *second.EndSec != 750 {
		t.Errorf("end = %d, want 750", *second.EndSec)
	}
}

func TestParseModelResponseMinutesSecondsFormat(t *testing.T) {
	drafts, issues := ParseModelResponse(chatResponse(`{"chapters":[{"start":"02:30","end":"05:00","title":"T"}]}`))
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(drafts) != 1 || drafts[0].StartSec != 150 || *drafts[0].EndSec != 300 {
		t.Fatalf("MM:SS not parsed, got %+v", drafts)
	}
}

func TestParseModelResponseDefaults(t *testing.T) {
	drafts, _ := ParseModelResponse(chatResponse(`{"chapters":[{}]}`))
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Title != "Chapter 1" {
		t.Errorf("title default = %q, want %q", d.Title, "Chapter 1")
	}
	if d.StartSec != 0 || *d.EndSec != 0 {
		t.Errorf("missing timestamps should default to zero, got %+v", d)
	}
	if d.Order == nil || *d.Order != 1 {
		t.Errorf("order should default to 1-based position, got %+v", d.Order)
	}
	if d.Summary != nil {
		t.Errorf("summary should stay nil, got %q", *d.Summary)
	}
}

func TestParseModelResponseSkipsBadElements(t *testing.T) {
	content := `{"chapters":[
		{"index":1,"start":"not-a-clock","end":"00:01:00","title":"bad"},
		{"index":2,"start":"00:01:00","end":"1:2:3:4","title":"also bad"},
		{"index":3,"start":"00:02:00","end":"00:03:00","title":"good"}
	]}`

	drafts, issues := ParseModelResponse(chatResponse(content))
	if len(drafts) != 1 {
		t.Fatalf("expected 1 surviving draft, got %d", len(drafts))
	}
	if drafts[0].Title != "good" {
		t.Errorf("wrong survivor %+v", drafts[0])
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Index != 0 || issues[1].Index != 1 {
		t.Errorf("issue indices = %d,%d, want 0,1", issues[0].Index, issues[1].Index)
	}
}

func TestParseModelResponseUndecodableContent(t *testing.T) {
	drafts, issues := ParseModelResponse(chatResponse("the model rambled instead of emitting JSON"))
	if len(drafts) != 0 {
		t.Fatalf("expected no drafts, got %d", len(drafts))
	}
	if len(issues) != 1 || issues[0].Index != -1 {
		t.Fatalf("expected one payload-level issue, got %v", issues)
	}
}

func TestParseModelResponseEmptyInputs(t *testing.T) {
	if drafts, _ := ParseModelResponse(nil); len(drafts) != 0 {
		t.Error("nil response should yield no drafts")
	}
	if drafts, _ := ParseModelResponse(&ai.ChatResponse{}); len(drafts) != 0 {
		t.Error("empty choice list should yield no drafts")
	}
}

func TestParseModelResponseIdempotent(t *testing.T) {
	content := `{"chapters":[{"index":1,"start":"00:00:05","end":"00:00:15","title":"T"}]}`
	a, aIssues := ParseModelResponse(chatResponse(content))
	b, bIssues := ParseModelResponse(chatResponse(content))
	if !reflect.DeepEqual(a, b) {
		t.Error("parsing the same response twice should give identical drafts")
	}
	if len(aIssues) != len(bIssues) {
		t.Error("issue counts should match across identical parses")
	}
}
