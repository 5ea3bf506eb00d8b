package ports

import (
	"context"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// CropAdvisor is the crop recommendation inference service.
type CropAdvisor interface {
	PredictCrops(ctx context.Context, sample domain.SoilSample) ([]domain.CropPrediction, error)
	FertilizerAdvice(ctx context.Context, q domain.FertilizerQuery) (string, error)
}

// YieldPredictor is the production forecasting service.
type YieldPredictor interface {
	PredictYield(ctx context.Context, q domain.YieldQuery) (*domain.YieldForecast, error)
}

// DiseaseClassifier labels a leaf image.
type DiseaseClassifier interface {
	Classify(ctx context.Context, img domain.Image) (*domain.DiseaseLabel, error)
}

// TextGenerator is the generative chat model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// WeatherProvider returns conditions for a location.
type WeatherProvider interface {
	Forecast(ctx context.Context, at domain.Coordinates) (*domain.Weather, error)
}

// Geocoder resolves coordinates to a place.
type Geocoder interface {
	Reverse(ctx context.Context, at domain.Coordinates) (*domain.Place, error)
}

// SpeechSynthesizer turns text into audio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, language string) (*domain.Speech, error)
}

// ChatInput is one assistant question.
type ChatInput struct {
	Message  string
	Language string
}

// YieldInput is a forecast request with an optional market price.
type YieldInput struct {
	Query           domain.YieldQuery
	PricePerQuintal float64
}

// AdvisoryService fronts the dashboard's third-party collaborators.
type AdvisoryService interface {
	RecommendCrops(ctx context.Context, sample domain.SoilSample) ([]domain.CropPrediction, error)
	FertilizerAdvice(ctx context.Context, q domain.FertilizerQuery) (string, error)
	PredictYield(ctx context.Context, in YieldInput) (*domain.YieldForecast, error)
	DiagnoseDisease(ctx context.Context, img domain.Image) (*domain.Diagnosis, error)
	Ask(ctx context.Context, in ChatInput) (string, error)
	Weather(ctx context.Context, at domain.Coordinates) (*domain.WeatherReport, error)
	Speak(ctx context.Context, text, language string) (*domain.Speech, error)
}
