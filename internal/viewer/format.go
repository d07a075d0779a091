package viewer

import (
	"strconv"

	"github.com/lehigh-university-libraries/artworks/internal/models"
)

const unknownArtist = "Unknown Artist"

// ChipLabel renders a selected artwork for the selection panel
func ChipLabel(item models.SelectedArtwork) string {
	return item.Title + " by " + TextOr(item.ArtistDisplay, unknownArtist)
}

// Text renders an optional string, empty when unset
func Text(s *string) string {
	return TextOr(s, "")
}

// TextOr renders an optional string with a fallback for null or empty values
func TextOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// Number renders an optional integer, empty when unset
func Number(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
