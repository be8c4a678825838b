package dto

import "github.com/michaeljohnaustria/my-garden/internal/domain"

// VegetableResponse is the wire form of a vegetable row.
type VegetableResponse struct {
	ID                  int64  `json:"vegetable_ID"`
	Name                string `json:"vegetable_Name"`
	RecommendedSoilType *int64 `json:"recommended_soil_type"`
}

// VegetableRequest is the typed view of a create/update payload.
type VegetableRequest struct {
	Name                *string `json:"vegetable_Name"`
	RecommendedSoilType *int64  `json:"recommended_soil_type"`
}

// SoilTypeResponse is the wire form of a soil type row.
type SoilTypeResponse struct {
	ID          int64  `json:"soil_type_ID"`
	Description string `json:"soil_type_Description"`
}

// SoilTypeRequest is the typed view of a create/update payload.
type SoilTypeRequest struct {
	Description *string `json:"soil_type_Description"`
}

// PestResponse is the wire form of a pest row.
type PestResponse struct {
	ID                int64  `json:"pest_ID"`
	Description       string `json:"pest_Description"`
	RemedyDescription string `json:"remedy_Description"`
}

// PestRequest is the typed view of a create/update payload.
type PestRequest struct {
	Description       *string `json:"pest_Description"`
	RemedyDescription *string `json:"remedy_Description"`
}

// FactResponse is the wire form of a fact row.
type FactResponse struct {
	ID                int64  `json:"fact_ID"`
	VegetableID       int64  `json:"vegetable_ID"`
	SoilTypeID        int64  `json:"soil_type_ID"`
	BestTimeToSow     string `json:"best_time_to_sow"`
	BestTimeToHarvest string `json:"best_time_to_harvest"`
}

// FactRequest is the typed view of a create/update payload.
type FactRequest struct {
	VegetableID       *int64  `json:"vegetable_ID"`
	SoilTypeID        *int64  `json:"soil_type_ID"`
	BestTimeToSow     *string `json:"best_time_to_sow"`
	BestTimeToHarvest *string `json:"best_time_to_harvest"`
}

func NewVegetableResponse(v domain.Vegetable) VegetableResponse {
	return VegetableResponse{ID: v.ID, Name: v.Name, RecommendedSoilType: v.RecommendedSoilType}
}

func NewSoilTypeResponse(s domain.SoilType) SoilTypeResponse {
	return SoilTypeResponse{ID: s.ID, Description: s.Description}
}

func NewPestResponse(p domain.Pest) PestResponse {
	return PestResponse{ID: p.ID, Description: p.Description, RemedyDescription: p.RemedyDescription}
}

func NewFactResponse(f domain.Fact) FactResponse {
	return FactResponse{
		ID:                f.ID,
		VegetableID:       f.VegetableID,
		SoilTypeID:        f.SoilTypeID,
		BestTimeToSow:     f.BestTimeToSow,
		BestTimeToHarvest: f.BestTimeToHarvest,
	}
}

// Patch converters; nil fields leave the stored value untouched.

func (r VegetableRequest) Patch() domain.VegetablePatch {
	return domain.VegetablePatch{Name: r.Name, RecommendedSoilType: r.RecommendedSoilType}
}

func (r SoilTypeRequest) Patch() domain.SoilTypePatch {
	return domain.SoilTypePatch{Description: r.Description}
}

func (r PestRequest) Patch() domain.PestPatch {
	return domain.PestPatch{Description: r.Description, RemedyDescription: r.RemedyDescription}
}

func (r FactRequest) Patch() domain.FactPatch {
	return domain.FactPatch{
		VegetableID:       r.VegetableID,
		SoilTypeID:        r.SoilTypeID,
		BestTimeToSow:     r.BestTimeToSow,
		BestTimeToHarvest: r.BestTimeToHarvest,
	}
}
