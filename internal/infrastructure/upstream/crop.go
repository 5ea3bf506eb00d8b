package upstream

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// CropAdvisor calls the crop recommendation service.
type CropAdvisor struct {
	client  *Client
	baseURL string
}

func NewCropAdvisor(client *Client, baseURL string) *CropAdvisor {
	return &CropAdvisor{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

type predictCropsRequest struct {
	N        float64 `json:"n"`
	P        float64 `json:"p"`
	K        float64 `json:"k"`
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
	PH       float64 `json:"ph"`
	Rainfall float64 `json:"rainfall"`
}

type predictCropsResponse struct {
	Predictions []domain.CropPrediction `json:"predictions"`
	Error       string                  `json:"error"`
}

func (a *CropAdvisor) PredictCrops(ctx context.Context, s domain.SoilSample) ([]domain.CropPrediction, error) {
	req := predictCropsRequest{
		N:        s.Nitrogen,
		P:        s.Phosphorus,
		K:        s.Potassium,
		Temp:     s.Temperature,
		Humidity: s.Humidity,
		PH:       s.PH,
		Rainfall: s.Rainfall,
	}

	var resp predictCropsResponse
	if err := a.client.postJSON(ctx, domain.FeatureCrops, a.baseURL+"/predict_crops", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.Predictions == nil {
		if resp.Error != "" {
			return nil, fmt.Errorf("%s: %s", domain.FeatureCrops, resp.Error)
		}
		return nil, errors.New(domain.FeatureCrops + ": missing predictions")
	}
	return resp.Predictions, nil
}

type fertilizerRequest struct {
	Crop string  `json:"crop"`
	N    float64 `json:"n"`
	P    float64 `json:"p"`
	K    float64 `json:"k"`
}

type fertilizerResponse struct {
	Advice string `json:"advice"`
	Error  string `json:"error"`
}

func (a *CropAdvisor) FertilizerAdvice(ctx context.Context, q domain.FertilizerQuery) (string, error) {
	req := fertilizerRequest{Crop: q.Crop, N: q.Nitrogen, P: q.Phosphorus, K: q.Potassium}

	var resp fertilizerResponse
	if err := a.client.postJSON(ctx, domain.FeatureFertilizer, a.baseURL+"/fertilizer_advice", nil, req, &resp); err != nil {
		return "", err
	}
	if resp.Advice == "" && resp.Error != "" {
		return "", fmt.Errorf("%s: %s", domain.FeatureFertilizer, resp.Error)
	}
	return resp.Advice, nil
}
