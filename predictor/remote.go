package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/chayon20/Crop-Recommendation-System/models"
)

// Remote asks an external model service for the prediction. The service
// receives the seven readings as a JSON object and answers
// {"predicted_crop": "<label>"}.
type Remote struct {
	url    string
	client *http.Client
}

func NewRemote(rawURL string, timeout time.Duration) (*Remote, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid predictor URL %q", rawURL)
	}
	return &Remote{
		url:    rawURL,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (r *Remote) Predict(ctx context.Context, features models.FeatureVector) (string, error) {
	payload := make(map[string]float64, models.NumFeatures)
	for i, field := range models.FeatureFields {
		payload[field] = features[i]
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode predictor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build predictor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call predictor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("predictor returned status %d", resp.StatusCode)
	}

	var out struct {
		PredictedCrop string `json:"predicted_crop"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode predictor response: %w", err)
	}
	if out.PredictedCrop == "" {
		return "", fmt.Errorf("predictor returned an empty crop label")
	}
	return out.PredictedCrop, nil
}
