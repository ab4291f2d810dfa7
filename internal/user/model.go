package user

// User is the persisted directory entry. The ID is assigned by the service
// on create and never changes afterwards.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateRequest carries the caller-supplied fields for a new user. It has no
// ID field on purpose: identity is assigned by the service.
type CreateRequest struct {
	Name        string `json:"name" validate:"required,min=8,max=12"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// UpdateRequest carries the replacement values for an existing user. The ID
// comes from the URL, never from the payload.
type UpdateRequest struct {
	Name        string `json:"name" validate:"required,min=8,max=12"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}
