package domain

// MetaAd é um anúncio bruto do Meta Ad Library (endpoint ads_archive)
type MetaAd struct {
	ID                   string     `json:"id"`
	PageID               string     `json:"page_id"`
	PageName             string     `json:"page_name"`
	AdCreativeBodies     []string   `json:"ad_creative_bodies"`
	AdCreativeLinkTitles []string   `json:"ad_creative_link_titles"`
	AdDeliveryStartTime  string     `json:"ad_delivery_start_time"`
	AdDeliveryStopTime   string     `json:"ad_delivery_stop_time"`
	PublisherPlatforms   []string   `json:"publisher_platforms"`
	Impressions          *BoundPair `json:"impressions"`
	Spend                *BoundPair `json:"spend"`
	Languages            []string   `json:"languages"`
}

// BoundPair é a faixa de valores reportada pelo Meta (impressões e investimento)
type BoundPair struct {
	LowerBound string `json:"lower_bound"`
	UpperBound string `json:"upper_bound"`
}

// MetaAdsResponse é o envelope paginado do ads_archive
type MetaAdsResponse struct {
	Data   []MetaAd `json:"data"`
	Paging *Paging  `json:"paging"`
}

type Paging struct {
	Next string `json:"next"`
}

// TiktokAd é um anúncio bruto da TikTok Commercial Content Library
type TiktokAd struct {
	Ad struct {
		ID             int64  `json:"id"`
		FirstShownDate string `json:"first_shown_date"`
		LastShownDate  string `json:"last_shown_date"`
		Status         string `json:"status"`
		VideoURL       string `json:"video_url"`
	} `json:"ad"`
	Advertiser struct {
		BusinessID   int64  `json:"business_id"`
		BusinessName string `json:"business_name"`
	} `json:"advertiser"`
	AdText string `json:"ad_text"`
	Reach  struct {
		UniqueUsersSeen string `json:"unique_users_seen"`
	} `json:"reach"`
}

// TiktokAdsResponse é o envelope da resposta de busca de anúncios do TikTok
type TiktokAdsResponse struct {
	Data struct {
		Ads     []TiktokAd `json:"ads"`
		HasMore bool       `json:"has_more"`
	} `json:"data"`
}

// GoogleAd é um anúncio bruto do Google Ads Transparency Center
type GoogleAd struct {
	AdvertiserID   string `json:"advertiser_id"`
	AdvertiserName string `json:"advertiser"`
	CreativeID     string `json:"creative_id"`
	Format         string `json:"format"`
	FirstShown     string `json:"first_shown"`
	LastShown      string `json:"last_shown"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	TargetDomain   string `json:"target_domain"`
}

// GoogleAdsResponse é o envelope da resposta do Ads Transparency Center
type GoogleAdsResponse struct {
	Ads []GoogleAd `json:"ads"`
}
