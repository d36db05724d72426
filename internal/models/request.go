package models

type CreateTagRequest struct {
	Text      string  `json:"text" binding:"required"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	// Defaults to DefaultTagColor when omitted
	Color string `json:"color"`
}
