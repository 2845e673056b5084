package project

// CreateFromTranscriptRequest represents the request to create a project
// from raw timestamped transcript text
type CreateFromTranscriptRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=255"`
	Platform      *string `json:"platform,omitempty" validate:"omitempty,max=100"`
	MaxChapters   *int    `json:"max_chapters,omitempty" validate:"omitempty,min=1,max=50"`
	TranscriptTxt string  `json:"transcript_txt" validate:"required"`
}
