package entity

// Caller is the signed-in actor supplied by the identity collaborator.
type Caller struct {
	OwnerID     string `json:"owner_id" validate:"required"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone,omitempty"`
}
