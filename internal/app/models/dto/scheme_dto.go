package dto

// CreateSchemeRequest is the admin payload for publishing a scheme
type CreateSchemeRequest struct {
	SchemeName   string  `json:"schemeName" binding:"required,min=2,max=120"`
	SchemeType   string  `json:"schemeType" binding:"required"`
	Grade        string  `json:"grade"`
	Year         string  `json:"year"`
	Category     string  `json:"category"`
	Criteria     string  `json:"criteria"`
	DocsRequired string  `json:"docsRequired"`
	Amount       float64 `json:"amount" binding:"gte=0"`
	LastDate     string  `json:"lastDate" binding:"required"`
}

// UpdateSchemeRequest mirrors CreateSchemeRequest for edits
type UpdateSchemeRequest struct {
	SchemeName   string  `json:"schemeName" binding:"required,min=2,max=120"`
	SchemeType   string  `json:"schemeType" binding:"required"`
	Grade        string  `json:"grade"`
	Year         string  `json:"year"`
	Category     string  `json:"category"`
	Criteria     string  `json:"criteria"`
	DocsRequired string  `json:"docsRequired"`
	Amount       float64 `json:"amount" binding:"gte=0"`
	LastDate     string  `json:"lastDate" binding:"required"`
}
