package chapters

import (
	"regexp"
	"strconv"
	"strings"
)

// transcriptPattern matches one "[HH:MM:SS --> HH:MM:SS] text" line.
var transcriptPattern = regexp.MustCompile(`^\[(\d{2}):(\d{2}):(\d{2})\s*-->\s*(\d{2}):(\d{2}):(\d{2})]\s*(.*)$`)

// generatedAtMarker prefixes the header line some ASR exports prepend.
const generatedAtMarker = "生成时间"

// ParsedLine is one transcript line extracted from raw text.
type ParsedLine struct {
	StartSec int
	EndSec   int
	Text     string
}

// ParseTranscriptTxt extracts timestamped lines from raw transcript text.
// Blank lines, comment lines, the "generated at" header and anything not
// matching the bracketed timestamp pattern are skipped without error.
// Output order equals input line order; an empty result is a valid
// "nothing to import" outcome, not a failure.
func ParseTranscriptTxt(content string) []ParsedLine {
	var lines []ParsedLine
	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, generatedAtMarker) {
			continue
		}
		match := transcriptPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		lines = append(lines, ParsedLine{
			StartSec: hmsToSeconds(match[1], match[2], match[3]),
			EndSec:   hmsToSeconds(match[4], match[5], match[6]),
			Text:     strings.TrimSpace(match[7]),
		})
	}
	return lines
}

// hmsToSeconds converts pre-validated two-digit groups. Minute or second
// values of 60+ are not rejected; they simply yield a larger offset.
func hmsToSeconds(hours, minutes, seconds string) int {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	return h*3600 + m*60 + s
}
