package handler

import "github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"

// Nutrient and pH readings are pointers so that "required" distinguishes a
// missing field from a legitimate zero.
type cropsRequest struct {
	N           *float64 `json:"n"           validate:"required,gte=0"`
	P           *float64 `json:"p"           validate:"required,gte=0"`
	K           *float64 `json:"k"           validate:"required,gte=0"`
	PH          *float64 `json:"ph"          validate:"required,gte=0,lte=14"`
	Temperature float64  `json:"temperature"`
	Humidity    float64  `json:"humidity"    validate:"gte=0,lte=100"`
	Rainfall    float64  `json:"rainfall"    validate:"gte=0"`
}

func (r cropsRequest) toDomain() domain.SoilSample {
	return domain.SoilSample{
		Nitrogen:    *r.N,
		Phosphorus:  *r.P,
		Potassium:   *r.K,
		PH:          *r.PH,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		Rainfall:    r.Rainfall,
	}
}

type fertilizerRequest struct {
	Crop string   `json:"crop" validate:"required,max=64"`
	N    *float64 `json:"n"    validate:"required,gte=0"`
	P    *float64 `json:"p"    validate:"required,gte=0"`
	K    *float64 `json:"k"    validate:"required,gte=0"`
}

type yieldRequest struct {
	State           string  `json:"state"             validate:"required,max=64"`
	District        string  `json:"district"          validate:"required,max=64"`
	Crop            string  `json:"crop"              validate:"required,max=64"`
	Season          string  `json:"season"            validate:"required,max=32"`
	Area            float64 `json:"area"              validate:"gt=0"`
	Year            int     `json:"year"              validate:"required,gte=1950,lte=2100"`
	PricePerQuintal float64 `json:"price_per_quintal" validate:"gte=0"`
}

type chatRequest struct {
	Message  string `json:"message"  validate:"required,max=4000"`
	Language string `json:"language" validate:"omitempty,oneof=en bn hi ta te mr"`
}

type speechRequest struct {
	Text     string `json:"text"     validate:"required,max=2500"`
	Language string `json:"language" validate:"omitempty,oneof=en bn hi ta te mr"`
}

type weatherQuery struct {
	Lat float64 `query:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `query:"lon" validate:"gte=-180,lte=180"`
}

type cropsResponse struct {
	Predictions []domain.CropPrediction `json:"predictions"`
}

type fertilizerResponse struct {
	Advice string `json:"advice"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}
