package model

import "time"

// Artifact is one stored compression result: the container bytes plus
// the summary stats a caller may display.
type Artifact struct {
	ID             string    `json:"id"`
	Name           string    `json:"name,omitempty"`
	OriginalSize   int       `json:"original_size"`
	CompressedSize int       `json:"compressed_size"`
	Ratio          float64   `json:"ratio"`
	BitLength      uint32    `json:"bit_length"`
	Blob           []byte    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
