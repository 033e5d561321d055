package keywordtoolclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	ktdomain "github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool/domain"
	"github.com/vfg2006/total-search-api/internal/config"
	"github.com/vfg2006/total-search-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Endpoints da API por plataforma. Plataformas ausentes não têm dados do vendor.
var platformEndpoints = map[domain.Platform]string{
	domain.PlatformGoogle:     "google",
	domain.PlatformYoutube:    "youtube",
	domain.PlatformTiktok:     "tiktok",
	domain.PlatformInstagram:  "instagram",
	domain.PlatformPinterest:  "pinterest",
	domain.PlatformAmazon:     "amazon",
	domain.PlatformTwitter:    "twitter",
	domain.PlatformBing:       "bing",
	domain.PlatformEbay:       "ebay",
	domain.PlatformAppStore:   "app-store",
	domain.PlatformPlayStore:  "play-store",
	domain.PlatformEtsy:       "etsy",
	domain.PlatformNaver:      "naver",
	domain.PlatformPerplexity: "perplexity",
}

type Client interface {
	GetSearchVolume(ctx context.Context, platform domain.Platform, keywords []string) (map[string]ktdomain.VolumeData, error)
	GetSuggestions(ctx context.Context, platform domain.Platform, seed string) ([]ktdomain.SuggestionData, error)
	SupportsPlatform(platform domain.Platform) bool
}

type KeywordToolClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &KeywordToolClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SupportsPlatform indica se o vendor expõe dados para a plataforma
func (c *KeywordToolClient) SupportsPlatform(platform domain.Platform) bool {
	_, ok := platformEndpoints[platform]
	return ok
}

// GetSearchVolume consulta o volume de busca de um lote de keywords em uma plataforma
func (c *KeywordToolClient) GetSearchVolume(ctx context.Context, platform domain.Platform, keywords []string) (map[string]ktdomain.VolumeData, error) {
	endpoint, ok := platformEndpoints[platform]
	if !ok {
		return nil, errors.Errorf("plataforma %s não suportada pelo vendor", platform)
	}

	payload := map[string]interface{}{
		"apikey":  c.Cfg.KeywordTool.APIKey,
		"keyword": keywords,
		"country": c.Cfg.KeywordTool.Country,
		"metrics": true,
		"output":  "json",
	}

	url := fmt.Sprintf("%s/search/volume/%s", c.Cfg.KeywordTool.BaseURL, endpoint)

	body, err := c.post(ctx, url, payload)
	if err != nil {
		return nil, err
	}

	var response ktdomain.VolumeResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar resposta de volume")
	}

	return response.Results, nil
}

// GetSuggestions consulta as sugestões de autocomplete para uma keyword semente
func (c *KeywordToolClient) GetSuggestions(ctx context.Context, platform domain.Platform, seed string) ([]ktdomain.SuggestionData, error) {
	endpoint, ok := platformEndpoints[platform]
	if !ok {
		return nil, errors.Errorf("plataforma %s não suportada pelo vendor", platform)
	}

	payload := map[string]interface{}{
		"apikey":  c.Cfg.KeywordTool.APIKey,
		"keyword": seed,
		"country": c.Cfg.KeywordTool.Country,
		"metrics": true,
		"output":  "json",
	}

	url := fmt.Sprintf("%s/search/suggestions/%s", c.Cfg.KeywordTool.BaseURL, endpoint)

	body, err := c.post(ctx, url, payload)
	if err != nil {
		return nil, err
	}

	var response ktdomain.SuggestionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar resposta de sugestões")
	}

	suggestions := make([]ktdomain.SuggestionData, 0)
	for _, group := range response.Results {
		suggestions = append(suggestions, group...)
	}

	return suggestions, nil
}

func (c *KeywordToolClient) post(ctx context.Context, url string, payload map[string]interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao serializar requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "falha ao montar requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "falha na chamada ao vendor")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler resposta do vendor")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("vendor retornou status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
