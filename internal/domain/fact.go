package domain

// Fact links a vegetable to a soil type with its sowing and harvest windows.
// Dates are kept in YYYY-MM-DD form.
type Fact struct {
	ID                int64
	VegetableID       int64
	SoilTypeID        int64
	BestTimeToSow     string
	BestTimeToHarvest string
}

// FactPatch carries the fields of a partial update.
type FactPatch struct {
	VegetableID       *int64
	SoilTypeID        *int64
	BestTimeToSow     *string
	BestTimeToHarvest *string
}
