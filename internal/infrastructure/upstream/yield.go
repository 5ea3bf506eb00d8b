package upstream

import (
	"context"
	"errors"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// YieldPredictor calls the production forecasting service.
type YieldPredictor struct {
	client *Client
	url    string
}

func NewYieldPredictor(client *Client, url string) *YieldPredictor {
	return &YieldPredictor{client: client, url: url}
}

type yieldRequest struct {
	State    string  `json:"state"`
	District string  `json:"district"`
	Crop     string  `json:"crop"`
	Season   string  `json:"season"`
	Area     float64 `json:"area"`
	Year     int     `json:"year"`
}

type yieldResponse struct {
	PredictedProduction  *float64                     `json:"predicted_production"`
	PredictedYield       *float64                     `json:"predicted_yield"`
	Confidence           *float64                     `json:"confidence"`
	MonthlyForecast      []domain.MonthlyForecast     `json:"monthly_forecast"`
	EnvironmentalFactors *domain.EnvironmentalFactors `json:"environmental_factors"`
}

func (p *YieldPredictor) PredictYield(ctx context.Context, q domain.YieldQuery) (*domain.YieldForecast, error) {
	req := yieldRequest{
		State:    q.State,
		District: q.District,
		Crop:     q.Crop,
		Season:   q.Season,
		Area:     q.AreaHa,
		Year:     q.Year,
	}

	var resp yieldResponse
	if err := p.client.postJSON(ctx, domain.FeatureYield, p.url, nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.PredictedProduction == nil {
		return nil, errors.New(domain.FeatureYield + ": missing predicted_production")
	}

	return &domain.YieldForecast{
		PredictedProduction:  *resp.PredictedProduction,
		PredictedYield:       resp.PredictedYield,
		Confidence:           resp.Confidence,
		MonthlyForecast:      resp.MonthlyForecast,
		EnvironmentalFactors: resp.EnvironmentalFactors,
	}, nil
}
