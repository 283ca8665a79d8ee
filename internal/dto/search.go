package dto

// Profile type selector values for search.
const (
	ProfileTypeModel        = "model"
	ProfileTypePhotographer = "photographer"
)

// CityAny is the sentinel that disables the city filter. An omitted city
// falls back to the configured default city instead of meaning "anywhere".
const CityAny = "any"

// SearchProfilesRequest is bound from the query string. Numeric filters are
// pointers so gin's query binding rejects non-integer values with a 400
// instead of coercing them.
type SearchProfilesRequest struct {
	Type string `form:"type"`
	Page *int   `form:"page" validate:"omitempty,min=1"`

	ID     *int   `form:"id" validate:"omitempty,min=1"`
	Name   string `form:"name"`
	City   string `form:"city"`
	Gender string `form:"gender" validate:"omitempty,is-gender"`

	MinHeight *int `form:"minHeight" validate:"omitempty,min=50,max=272"`
	MaxHeight *int `form:"maxHeight" validate:"omitempty,min=50,max=272"`
	MinAge    *int `form:"minAge" validate:"omitempty,min=0,max=120"`
	MaxAge    *int `form:"maxAge" validate:"omitempty,min=0,max=120"`

	OpennessLevel     string `form:"opennessLevel"`
	CooperationFormat string `form:"cooperationFormat"`
	Specialization    string `form:"specialization"`
}

// Pagination is the search response metadata block.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// SearchResponse wraps either model or photographer summaries.
type SearchResponse struct {
	Profiles   interface{} `json:"profiles"`
	Pagination Pagination  `json:"pagination"`
}

// ModelSearchResult is the per-row model summary. Age is derived from the
// stored birth date and the current year at query time.
type ModelSearchResult struct {
	ID                uint    `json:"id"`
	FullName          *string `json:"fullName"`
	Age               *int    `json:"age"`
	Height            *int    `json:"height"`
	City              *string `json:"city"`
	Gender            *string `json:"gender"`
	OpennessLevel     *string `json:"opennessLevel"`
	CooperationFormat *string `json:"cooperationFormat"`
	ProfilePhotoURL   *string `json:"profilePhotoUrl"`
	LastLogin         *string `json:"lastLogin"`
}

// PhotographerSearchResult is the per-row photographer summary.
type PhotographerSearchResult struct {
	ID                uint     `json:"id"`
	FullName          *string  `json:"fullName"`
	City              *string  `json:"city"`
	Specializations   []string `json:"specializations"`
	CooperationFormat *string  `json:"cooperationFormat"`
	PriceRange        *string  `json:"priceRange"`
	ExperienceYears   *int     `json:"experienceYears"`
	ProfilePhotoURL   *string  `json:"profilePhotoUrl"`
	LastLogin         *string  `json:"lastLogin"`
}
