package models

// Artwork represents a single record from the Art Institute of Chicago artworks API
type Artwork struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}

// SelectedArtwork is the projection of an Artwork kept in the selection ledger
type SelectedArtwork struct {
	ID            int     `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	ArtistDisplay *string `json:"artist_display" yaml:"artist_display"`
}

// Minimal returns the projection stored for a selected artwork
func (a Artwork) Minimal() SelectedArtwork {
	return SelectedArtwork{
		ID:            a.ID,
		Title:         a.Title,
		ArtistDisplay: a.ArtistDisplay,
	}
}

// Pagination is the pagination block of an API response
type Pagination struct {
	Total       int     `json:"total"`
	Limit       int     `json:"limit"`
	Offset      int     `json:"offset"`
	TotalPages  int     `json:"total_pages"`
	CurrentPage int     `json:"current_page"`
	NextURL     *string `json:"next_url"`
}

// ArtworksResponse is the envelope returned by GET /artworks
type ArtworksResponse struct {
	Data       []Artwork  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// DefaultPageSize is the API's default limit, used until the first response arrives
const DefaultPageSize = 12

// PageState tracks which server page is displayed
type PageState struct {
	CurrentPage  int `json:"current_page"` // 1-based
	PageSize     int `json:"page_size"`
	TotalRecords int `json:"total_records"`
}

// First returns the zero-based offset of the first row on the current page
func (p PageState) First() int {
	if p.CurrentPage < 1 {
		return 0
	}
	return (p.CurrentPage - 1) * p.PageSize
}

// TotalPages returns the number of pages implied by the server's total and limit
func (p PageState) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalRecords + p.PageSize - 1) / p.PageSize
}
