package chapter

// UpdateChapterRequest represents a partial chapter update
type UpdateChapterRequest struct {
	Title    *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Summary  *string  `json:"summary,omitempty"`
	StartSec *int     `json:"start_sec,omitempty" validate:"omitempty,min=0"`
	EndSec   *int     `json:"end_sec,omitempty" validate:"omitempty,min=0"`
	Tags     *string  `json:"tags,omitempty" validate:"omitempty,max=255"`
	Order    *int     `json:"order,omitempty" validate:"omitempty,min=1"`
	Version  *int     `json:"version,omitempty" validate:"omitempty,min=1"`
	Conf     *float64 `json:"confidence,omitempty" validate:"omitempty,min=0,max=1"`
}

// RegenerateChapterRequest asks for a chapter rewrite from a new start time
type RegenerateChapterRequest struct {
	NewStartSec int `json:"new_start_sec" validate:"min=0"`
}
