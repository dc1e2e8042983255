package dto

// ErrorResponse is the HTTP error body. Fields optionally carries
// field-level validation messages.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// PageResponse is the page metadata attached to listings.
type PageResponse struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	Total   int   `json:"total"`
	HasPrev bool  `json:"has_prev"`
	HasNext bool  `json:"has_next"`
	Window  []int `json:"window"`
}
