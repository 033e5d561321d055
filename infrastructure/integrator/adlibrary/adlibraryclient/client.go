package adlibraryclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	adldomain "github.com/vfg2006/total-search-api/infrastructure/integrator/adlibrary/domain"
	"github.com/vfg2006/total-search-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetMetaAds(ctx context.Context, brandName string) ([]adldomain.MetaAd, error)
	GetTiktokAds(ctx context.Context, brandName string) ([]adldomain.TiktokAd, error)
	GetGoogleAds(ctx context.Context, brandDomain string) ([]adldomain.GoogleAd, error)
}

type AdLibraryClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdLibraryClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetMetaAds busca os anúncios ativos da marca no Meta Ad Library
func (c *AdLibraryClient) GetMetaAds(ctx context.Context, brandName string) ([]adldomain.MetaAd, error) {
	params := url.Values{}
	params.Set("access_token", c.Cfg.AdLibrary.MetaAccessToken)
	params.Set("search_terms", brandName)
	params.Set("ad_active_status", "ACTIVE")
	params.Set("ad_reached_countries", "['US']")
	params.Set("fields", "id,page_id,page_name,ad_creative_bodies,ad_creative_link_titles,ad_delivery_start_time,ad_delivery_stop_time,publisher_platforms,impressions,spend,languages")
	params.Set("limit", "100")

	body, err := c.get(ctx, fmt.Sprintf("%s?%s", c.Cfg.AdLibrary.MetaURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var response adldomain.MetaAdsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar resposta do Meta Ad Library")
	}

	return response.Data, nil
}

// GetTiktokAds busca os anúncios da marca na Commercial Content Library do TikTok
func (c *AdLibraryClient) GetTiktokAds(ctx context.Context, brandName string) ([]adldomain.TiktokAd, error) {
	payload := map[string]interface{}{
		"filters": map[string]interface{}{
			"advertiser_business_names": []string{brandName},
		},
		"max_count": 50,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao serializar requisição ao TikTok")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.AdLibrary.TiktokURL, strings.NewReader(string(data)))
	if err != nil {
		return nil, errors.Wrap(err, "falha ao montar requisição ao TikTok")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.AdLibrary.TiktokAccessToken)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var response adldomain.TiktokAdsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar resposta do TikTok")
	}

	return response.Data.Ads, nil
}

// GetGoogleAds busca os anúncios da marca no Ads Transparency Center
func (c *AdLibraryClient) GetGoogleAds(ctx context.Context, brandDomain string) ([]adldomain.GoogleAd, error) {
	params := url.Values{}
	params.Set("engine", "google_ads_transparency_center")
	params.Set("domain", brandDomain)
	params.Set("api_key", c.Cfg.AdLibrary.GoogleAPIKey)

	body, err := c.get(ctx, fmt.Sprintf("%s?%s", c.Cfg.AdLibrary.GoogleURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var response adldomain.GoogleAdsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar resposta do Ads Transparency Center")
	}

	return response.Ads, nil
}

func (c *AdLibraryClient) get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao montar requisição")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return c.do(req)
}

func (c *AdLibraryClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "falha na chamada à biblioteca de anúncios")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler resposta da biblioteca de anúncios")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("biblioteca de anúncios retornou status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
