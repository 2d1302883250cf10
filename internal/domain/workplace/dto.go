package workplace

// WorkplaceResponse is the read-only work site detail served to the app.
type WorkplaceResponse struct {
	ID           string  `json:"id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address      string  `json:"address"`
	RadiusMeters float64 `json:"radius_meters"`
}

func (w *Workplace) ToResponse() WorkplaceResponse {
	return WorkplaceResponse{
		ID:           w.ID,
		Latitude:     w.Latitude,
		Longitude:    w.Longitude,
		Address:      w.Address,
		RadiusMeters: w.EffectiveRadius(),
	}
}
