package models

import "time"

// ServiceRequest is a structured room-service request submitted by a guest.
type ServiceRequest struct {
	ID          string    `json:"id"`
	RoomNumber  string    `json:"room_number"`
	PhoneNumber string    `json:"phone_number"`
	Request     string    `json:"request"`
	CreatedAt   time.Time `json:"created_at"`
}
