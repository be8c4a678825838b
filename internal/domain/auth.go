package domain

// Role names carried in token claims.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Resource identifies one of the four resource families.
type Resource string

const (
	ResourceVegetables Resource = "vegetables"
	ResourceSoilTypes  Resource = "soil_types"
	ResourcePests      Resource = "pests"
	ResourceFacts      Resource = "facts"
)
