package handler

// --- Request types ---
// Responses reuse domain.Product directly: the catalogue's wire shape is the
// domain shape, as the legacy API returned stored documents verbatim.

type createProductRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Stock    int     `json:"stock"    validate:"gte=0"`
}
