package domain

// SoilType describes a soil a vegetable can be grown in.
type SoilType struct {
	ID          int64
	Description string
}

// SoilTypePatch carries the fields of a partial update.
type SoilTypePatch struct {
	Description *string
}
