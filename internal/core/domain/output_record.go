package domain

import "time"

// OutputRecord describes one file written by the emission stage.
type OutputRecord struct {
	Path      string    `json:"path,omitzero"`
	Hash      string    `json:"hash,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
