package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// DiseaseClassifier posts leaf images to the disease model.
type DiseaseClassifier struct {
	client *Client
	url    string
}

func NewDiseaseClassifier(client *Client, url string) *DiseaseClassifier {
	return &DiseaseClassifier{client: client, url: url}
}

type diseaseResponse struct {
	Prediction string   `json:"prediction"`
	Confidence *float64 `json:"confidence"`
}

func (d *DiseaseClassifier) Classify(ctx context.Context, img domain.Image) (*domain.DiseaseLabel, error) {
	payload, contentType, err := imageForm(img)
	if err != nil {
		return nil, fmt.Errorf("%s: build form: %w", domain.FeatureDisease, err)
	}

	body, _, err := d.client.do(ctx, domain.FeatureDisease, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	})
	if err != nil {
		return nil, err
	}

	var resp diseaseResponse
	if err := decode(domain.FeatureDisease, body, &resp); err != nil {
		return nil, err
	}

	label := &domain.DiseaseLabel{Name: resp.Prediction}
	if resp.Confidence != nil {
		label.Confidence = *resp.Confidence
	}
	return label, nil
}

// imageForm encodes img as the multipart field "image".
func imageForm(img domain.Image) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	filename := img.Filename
	if filename == "" {
		filename = "leaf.jpg"
	}
	ct := img.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", ct)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(img.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
