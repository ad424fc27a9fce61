package style

// CreateStyleRequest for POST /styles
type CreateStyleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=60"`
	Slug string `json:"slug" validate:"required,slug,max=60"`
}
