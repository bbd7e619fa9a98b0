package municipality

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Verifier checks whether a municipality name really belongs to a
// federative unit, against an external registry.
//
//go:generate mockgen -source=ibge_client.go -destination=mock/verifier_mock.go -package=mock
type Verifier interface {
	BelongsToState(ctx context.Context, name, ufAbbreviation string) (bool, error)
}

const ibgeBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades/estados"

type ibgeMunicipality struct {
	Nome string `json:"nome"`
}

// IBGEClient resolves municipality membership through the public IBGE
// localities API (GET /estados/{UF}/municipios).
type IBGEClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewIBGEClient(logger ...*zap.Logger) *IBGEClient {
	l := zap.L().Named("municipality.ibge")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("municipality.ibge")
	}
	return &IBGEClient{
		baseURL: ibgeBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  l,
	}
}

func (c *IBGEClient) BelongsToState(ctx context.Context, name, ufAbbreviation string) (bool, error) {
	url := fmt.Sprintf("%s/%s/municipios", c.baseURL, strings.ToUpper(ufAbbreviation))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("ibge request failed", zap.String("uf", ufAbbreviation), zap.Error(err))
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("ibge returned non-200", zap.String("uf", ufAbbreviation), zap.Int("status", resp.StatusCode))
		return false, fmt.Errorf("ibge: unexpected status %d", resp.StatusCode)
	}

	var rows []ibgeMunicipality
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return false, err
	}

	for _, m := range rows {
		if strings.EqualFold(m.Nome, name) {
			return true, nil
		}
	}
	return false, nil
}
