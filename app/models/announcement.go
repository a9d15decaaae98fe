package models

import "time"

type Announcement struct {
	ID            string        `json:"id"`
	Title         string        `json:"title" validate:"required"`
	Message       string        `json:"message" validate:"required"`
	CreatedAt     time.Time     `json:"createdAt"`
	RecipientType RecipientType `json:"recipientType" validate:"required"`
	RecipientID   string        `json:"recipientId"`
	Read          bool          `json:"read"`
}
