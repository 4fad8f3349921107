package response

import "github.com/google/uuid"

type LoginResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
	Token   string    `json:"token"`
}
