package chapters

import (
	"strings"
	"testing"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

func TestBuildPromptContainsDurationAndLines(t *testing.T) {
	lines := []entities.TranscriptLine{
		testLine(0, 60, "opening"),
		testLine(60, 120, "main topic"),
	}

	prompt := BuildPrompt(lines, 2)

	if !strings.Contains(prompt, "约 2 分钟") {
		t.Error("prompt should mention the duration in minutes")
	}
	if !strings.Contains(prompt, "[00:00:00 --> 00:01:00] opening") {
		t.Error("prompt should contain the first rendered line")
	}
	if !strings.Contains(prompt, "[00:01:00 --> 00:02:00] main topic") {
		t.Error("prompt should contain the second rendered line")
	}
}

func TestBuildTranscriptBlockSortsByStart(t *testing.T) {
	lines := []entities.TranscriptLine{
		testLine(120, 180, "third"),
		testLine(0, 60, "first"),
		testLine(60, 120, "second"),
	}

	block := buildTranscriptBlock(lines)
	want := "[00:00:00 --> 00:01:00] first\n" +
		"[00:01:00 --> 00:02:00] second\n" +
		"[00:02:00 --> 00:03:00] third"
	if block != want {
		t.Errorf("block = %q, want %q", block, want)
	}
}

func TestBuildTranscriptBlockEndDefaultsToStart(t *testing.T) {
	block := buildTranscriptBlock([]entities.TranscriptLine{testLineNoEnd(30, "no end")})
	if block != "[00:00:30 --> 00:00:30] no end" {
		t.Errorf("unexpected block %q", block)
	}
}

func TestBuildTranscriptBlockDoesNotMutateInput(t *testing.T) {
	lines := []entities.TranscriptLine{
		testLine(60, 120, "b"),
		testLine(0, 60, "a"),
	}
	buildTranscriptBlock(lines)
	if lines[0].StartSec != 60 {
		t.Error("input slice order should be untouched")
	}
}
