package models

import "time"

type Task struct {
	ID          string     `json:"id"`
	AssignedBy  string     `json:"assignedBy"`
	AssignedTo  string     `json:"assignedTo"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    string     `json:"deadline"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}
