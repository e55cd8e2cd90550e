package pricing

// FeatureRecord describes one vehicle as the fitted pipeline expects it.
// Field names map verbatim to the model's input columns; the model performs
// its own categorical encoding, so no feature engineering happens here.
// Flag fields carry 0/1 integers as in the training data.
type FeatureRecord struct {
	ModelKey                string  `json:"model_key"`
	Mileage                 float64 `json:"mileage"`
	EnginePower             float64 `json:"engine_power"`
	Fuel                    string  `json:"fuel"`
	PaintColor              string  `json:"paint_color"`
	CarType                 string  `json:"car_type"`
	PrivateParkingAvailable int     `json:"private_parking_available"`
	HasGPS                  int     `json:"has_gps"`
	HasAirConditioning      int     `json:"has_air_conditioning"`
	AutomaticCar            int     `json:"automatic_car"`
	HasGetaroundConnect     int     `json:"has_getaround_connect"`
	HasSpeedRegulator       int     `json:"has_speed_regulator"`
	WinterTires             int     `json:"winter_tires"`
}

// Numeric returns the record's numeric columns keyed by column name.
// The 0/1 flags are exposed as floats the way the training frame held them.
func (r FeatureRecord) Numeric() map[string]float64 {
	return map[string]float64{
		"mileage":                   r.Mileage,
		"engine_power":              r.EnginePower,
		"private_parking_available": float64(r.PrivateParkingAvailable),
		"has_gps":                   float64(r.HasGPS),
		"has_air_conditioning":      float64(r.HasAirConditioning),
		"automatic_car":             float64(r.AutomaticCar),
		"has_getaround_connect":     float64(r.HasGetaroundConnect),
		"has_speed_regulator":       float64(r.HasSpeedRegulator),
		"winter_tires":              float64(r.WinterTires),
	}
}

// Categorical returns the record's categorical columns keyed by column name.
func (r FeatureRecord) Categorical() map[string]string {
	return map[string]string{
		"model_key":   r.ModelKey,
		"fuel":        r.Fuel,
		"paint_color": r.PaintColor,
		"car_type":    r.CarType,
	}
}
