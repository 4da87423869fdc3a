package googleadsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	googleadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListCampaigns(ctx context.Context, customerID string) ([]domain.RemoteCampaign, error)
	GetCampaignDailyMetrics(ctx context.Context, customerID, campaignID string, period domain.DateRange) ([]*domain.CampaignMetric, error)
	ListAssetGroups(ctx context.Context, customerID, campaignID string) ([]domain.RemoteAssetGroup, error)
	GetSearchTerms(ctx context.Context, customerID, campaignID string, period domain.DateRange) ([]domain.SearchTerm, error)
	GetListingGroups(ctx context.Context, customerID, campaignID string) ([]domain.ListingGroup, error)
}

type GoogleAdsClient struct {
	cfg        config.GoogleAds
	httpClient *http.Client
	tokens     *TokenManager
}

func NewClient(cfg config.GoogleAds, httpClient *http.Client, tokens *TokenManager) Client {
	if httpClient == nil {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &GoogleAdsClient{
		cfg:        cfg,
		httpClient: httpClient,
		tokens:     tokens,
	}
}

// search executa uma consulta GAQL percorrendo todas as páginas
func (c *GoogleAdsClient) search(ctx context.Context, customerID, query string) ([]gjson.Result, error) {
	customerID = config.NormalizeCustomerID(customerID)

	var rows []gjson.Result
	pageToken := ""

	for {
		body, err := c.doSearch(ctx, customerID, googleadsdomain.SearchRequest{Query: query, PageToken: pageToken}, true)
		metrics.RecordExternalCall("google_ads", err)
		if err != nil {
			return nil, err
		}

		parsed := gjson.ParseBytes(body)
		rows = append(rows, parsed.Get("results").Array()...)

		pageToken = parsed.Get("nextPageToken").String()
		if pageToken == "" {
			break
		}
	}

	return rows, nil
}

func (c *GoogleAdsClient) doSearch(ctx context.Context, customerID string, payload googleadsdomain.SearchRequest, retry bool) ([]byte, error) {
	accessToken, err := c.tokens.AccessToken()
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar requisição")
	}

	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.URL, customerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if c.cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.cfg.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar o Google Ads")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta do Google Ads")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := parseError(resp.StatusCode, body)

		// token revogado ou expirado antes do previsto: renova uma vez e repete
		if apiErr.IsUnauthenticated() && retry {
			c.tokens.Invalidate()
			return c.doSearch(ctx, customerID, payload, false)
		}

		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"status":      resp.StatusCode,
			"error":       apiErr.Message,
		}).Error("Google Ads respondeu com erro")

		return nil, apiErr
	}

	return body, nil
}

func parseError(status int, body []byte) *googleadsdomain.APIError {
	var errResp googleadsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return &googleadsdomain.APIError{HTTPStatus: status, Status: http.StatusText(status), Message: string(body)}
	}

	return &googleadsdomain.APIError{
		HTTPStatus: status,
		Status:     errResp.Error.Status,
		Message:    errResp.Error.Message,
	}
}

// checkID garante que o id interpolado no GAQL é numérico
func checkID(id string) error {
	if id == "" {
		return errors.New("id da campanha no Google Ads vazio")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return errors.Errorf("id de campanha inválido: %q", id)
		}
	}
	return nil
}

func quote(s string) string {
	return "'" + s + "'"
}

func dateClause(period domain.DateRange) string {
	return fmt.Sprintf("segments.date BETWEEN %s AND %s",
		quote(period.StartDate.Format(time.DateOnly)), quote(period.EndDate.Format(time.DateOnly)))
}

func parseDate(value gjson.Result) *time.Time {
	if !value.Exists() || value.String() == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, value.String())
	if err != nil {
		return nil
	}
	return &t
}

func optionalString(value gjson.Result) *string {
	if !value.Exists() || value.String() == "" {
		return nil
	}
	s := value.String()
	return &s
}

func optionalPercent(value gjson.Result) *float64 {
	if !value.Exists() {
		return nil
	}
	v := value.Float() * 100
	return &v
}
