package domain

// Vegetable is a crop tracked by the garden catalogue.
type Vegetable struct {
	ID                  int64
	Name                string
	RecommendedSoilType *int64
}

// VegetablePatch carries the fields of a partial update; nil leaves the stored value.
type VegetablePatch struct {
	Name                *string
	RecommendedSoilType *int64
}
