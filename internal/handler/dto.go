package handler

import (
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
)

// RunLineDTO is the JSON representation of a transcript line.
type RunLineDTO struct {
	Seq    int    `json:"seq"`
	Demo   string `json:"demo"`
	Stream string `json:"stream"`
	Text   string `json:"text"`
}

// RunDTO is the JSON representation of a run.
type RunDTO struct {
	ID         string       `json:"id"`
	StartedAt  string       `json:"startedAt"`
	FinishedAt *string      `json:"finishedAt"`
	Lines      []RunLineDTO `json:"lines,omitempty"`
}

func toRunDTO(r *domain.Run) RunDTO {
	dto := RunDTO{
		ID:        r.ID,
		StartedAt: r.StartedAt.Format(time.RFC3339Nano),
	}
	if r.FinishedAt != nil {
		t := r.FinishedAt.Format(time.RFC3339Nano)
		dto.FinishedAt = &t
	}
	for _, l := range r.Lines {
		dto.Lines = append(dto.Lines, RunLineDTO{
			Seq:    l.Seq,
			Demo:   l.Demo,
			Stream: string(l.Stream),
			Text:   l.Text,
		})
	}
	return dto
}

func toRunDTOs(runs []domain.Run) []RunDTO {
	dtos := make([]RunDTO, len(runs))
	for i := range runs {
		dtos[i] = toRunDTO(&runs[i])
	}
	return dtos
}

// ShareDTO is the JSON representation of an issued share link.
type ShareDTO struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt"`
}
