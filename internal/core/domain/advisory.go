package domain

// Dashboard features, used to label upstream failures and metrics.
const (
	FeatureCrops      = "crop_recommendation"
	FeatureFertilizer = "fertilizer_advice"
	FeatureYield      = "yield_prediction"
	FeatureDisease    = "disease_detection"
	FeatureTreatment  = "disease_treatment"
	FeatureChat       = "ai_assistant"
	FeatureWeather    = "weather"
	FeatureGeocode    = "reverse_geocode"
	FeatureSpeech     = "text_to_speech"
)

// MaxCropPredictions caps the ranked list returned to the dashboard.
const MaxCropPredictions = 5

// SoilSample carries the soil and climate readings used for crop advice.
type SoilSample struct {
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
	PH          float64
	Temperature float64
	Humidity    float64
	Rainfall    float64
}

// CropPrediction is one ranked crop suggestion.
type CropPrediction struct {
	Crop       string  `json:"crop"`
	Confidence float64 `json:"confidence"`
}

// FertilizerQuery asks for nutrient advice for a chosen crop.
type FertilizerQuery struct {
	Crop       string
	Nitrogen   float64
	Phosphorus float64
	Potassium  float64
}

// YieldQuery describes a field for production forecasting.
type YieldQuery struct {
	State    string
	District string
	Crop     string
	Season   string
	AreaHa   float64
	Year     int
}

// MonthlyForecast is one point of the yield service's monthly series.
type MonthlyForecast struct {
	Month       string  `json:"month"`
	Rainfall    float64 `json:"rainfall"`
	Temperature float64 `json:"temperature"`
	Production  float64 `json:"production"`
}

// EnvironmentalFactors summarises the conditions behind a yield forecast.
type EnvironmentalFactors struct {
	Rainfall         *float64 `json:"rainfall,omitempty"`
	TemperatureRange string   `json:"temperature_range,omitempty"`
	SoilType         string   `json:"soil_type,omitempty"`
	GrowingPeriod    string   `json:"growing_period,omitempty"`
}

// Revenue is the income estimate derived from a production forecast.
type Revenue struct {
	PricePerKg     float64 `json:"price_per_kg"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// YieldForecast is the production estimate for a YieldQuery.
type YieldForecast struct {
	PredictedProduction  float64               `json:"predicted_production"`
	PredictedYield       *float64              `json:"predicted_yield,omitempty"`
	Confidence           *float64              `json:"confidence,omitempty"`
	MonthlyForecast      []MonthlyForecast     `json:"monthly_forecast,omitempty"`
	EnvironmentalFactors *EnvironmentalFactors `json:"environmental_factors,omitempty"`
	Revenue              *Revenue              `json:"revenue,omitempty"`
}

// EstimateRevenue converts an annual production in tonnes and a market price
// in rupees per quintal into a per-kg price and an average monthly revenue.
func EstimateRevenue(productionTonnes, pricePerQuintal float64) Revenue {
	totalKg := productionTonnes * 1000
	pricePerKg := pricePerQuintal / 100
	return Revenue{
		PricePerKg:     pricePerKg,
		MonthlyRevenue: totalKg * pricePerKg / 12,
	}
}

// DiseaseLabel is the raw classifier output for a leaf image.
type DiseaseLabel struct {
	Name       string
	Confidence float64
}

// Treatment holds the generated description and remedies for a disease.
type Treatment struct {
	Description string
	Remedies    []string
}

// Diagnosis is the full disease detection result.
type Diagnosis struct {
	Disease     string   `json:"disease"`
	Confidence  float64  `json:"confidence"`
	Description string   `json:"description"`
	Treatments  []string `json:"treatments"`
}

// Image is an uploaded photo forwarded to the classifier.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// CurrentWeather is the present conditions at a location.
type CurrentWeather struct {
	Temp      int     `json:"temp"`
	Condition string  `json:"condition"`
	WindSpeed float64 `json:"wind_speed"`
	Humidity  int     `json:"humidity"`
}

// DailyForecast is one day of the weekly outlook.
type DailyForecast struct {
	Day       string `json:"day"`
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
}

// Weather bundles current conditions and the upcoming week.
type Weather struct {
	Current  CurrentWeather  `json:"current"`
	Forecast []DailyForecast `json:"forecast"`
}

// WeatherReport is the weather page payload, including a place name.
type WeatherReport struct {
	Location string `json:"location"`
	Weather
}

// Place is a reverse-geocoded location.
type Place struct {
	City     string
	Locality string
	Country  string
}

// Label renders the place the way the dashboard displays it.
func (p Place) Label() string {
	name := p.City
	if name == "" {
		name = p.Locality
	}
	if name == "" {
		name = "Unknown"
	}
	return name + ", " + p.Country
}

// UnknownLocation is shown when reverse geocoding fails.
const UnknownLocation = "Unknown location"

// Supported assistant languages.
var Languages = map[string]string{
	"en": "English",
	"bn": "Bengali",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"mr": "Marathi",
}

// LanguageName returns the display name for code, defaulting to English.
func LanguageName(code string) string {
	if name, ok := Languages[code]; ok {
		return name
	}
	return Languages["en"]
}

// Speech is synthesised audio.
type Speech struct {
	ContentType string
	Audio       []byte
}
