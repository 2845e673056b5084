package chapters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
	"github.com/streamchapter-team/stream-chapters/pkg/timecode"
)

// promptTemplate instructs the model to emit exactly 10 contiguous chapters
// as pure JSON, reusing timestamps that actually occur in the transcript.
// Enforcement of those rules happens in the snapper, not here.
const promptTemplate = `你现在扮演一名非常懂中文财经/聊天直播节奏的「长视频剪辑编辑 + 文案总监」，要帮主播给一整场直播回放做【人类风格】的章节划分。

视频总时长约 %d 分钟。

请严格输出 JSON（必须符合下面规则）：
1）必须输出 10 个章节，index 从 1 递增。
2）章节必须按时间顺序【连续覆盖】整段直播，不允许出现时间空档（gap）。
   - 第 1 章 start 必须是直播开头附近的一个 transcript 时间戳。
   - 对于 1~9 章：第 i 章的 end 必须等于第 i+1 章的 start（end = next_start）。
   - 第 10 章 end 必须是直播结束附近的一个 transcript 时间戳。
3）start 和 end 的时间戳请【优先/尽量严格使用 transcript 中已经出现过的时间戳】；不要虚构不存在的时间点。
4）不要均分时间。每章标题<=18汉字，reason<=40字。

输出 JSON 格式如下：
{
  "chapters": [
    {
      "index": 1,
      "start": "HH:MM:SS",
      "end": "HH:MM:SS",
      "title": "章节标题（不超过18个汉字）",
      "reason": "简要说明这一章的结构/逻辑作用（不超过40字）"
    }
  ]
}

标题风格参考：
- 开场 / 正题 / 小结 / 总结 / 锦囊 / 收盘
- 正题开始：2026新趋势
- 逆天SC借屏道歉
- 下周锦囊：为什么波动加大

下面是 transcript（逐字稿，带时间戳）：
%s
`

// BuildPrompt renders the generation prompt for the given transcript lines.
// durationMinutes should already be floored to whole minutes with a minimum
// of 1.
func BuildPrompt(lines []entities.TranscriptLine, durationMinutes int) string {
	return fmt.Sprintf(promptTemplate, durationMinutes, buildTranscriptBlock(lines))
}

// buildTranscriptBlock renders lines as "[HH:MM:SS --> HH:MM:SS] text",
// sorted ascending by start. Lines sharing a start keep their input order.
func buildTranscriptBlock(lines []entities.TranscriptLine) string {
	sorted := make([]entities.TranscriptLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartSec < sorted[j].StartSec
	})

	segments := make([]string, 0, len(sorted))
	for _, line := range sorted {
		segments = append(segments, fmt.Sprintf("[%s --> %s] %s",
			timecode.FormatHMS(line.StartSec),
			timecode.FormatHMS(line.EndOrStart()),
			line.Text,
		))
	}
	return strings.Join(segments, "\n")
}
