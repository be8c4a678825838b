package domain

// Pest pairs a pest with its remedy.
type Pest struct {
	ID                int64
	Description       string
	RemedyDescription string
}

// PestPatch carries the fields of a partial update.
type PestPatch struct {
	Description       *string
	RemedyDescription *string
}
