package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Restaurant is the identity record for a restaurant, as owned by the
// restaurant-management service. Read-only here.
type Restaurant struct {
	ID          string
	Slug        string
	Name        string
	CuisineType string
	Description string
	IsActive    bool
	Avatar      AvatarConfig
}

// AvatarConfig is the per-restaurant assistant persona.
type AvatarConfig struct {
	Name                string
	Personality         string
	Greeting            string
	Tone                string
	SpecialInstructions string
}

// AvatarName returns the configured persona name, falling back to a neutral
// default so fallback responses always carry an identity.
func (r Restaurant) AvatarName() string {
	if r.Avatar.Name != "" {
		return r.Avatar.Name
	}
	return "Assistant"
}
