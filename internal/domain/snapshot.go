package domain

import "time"

// KeywordSnapshot é uma medição de volume de uma keyword em uma plataforma,
// persistida pela sincronização diária para acompanhar tendências próprias.
type KeywordSnapshot struct {
	ID          string    `json:"id"`
	Keyword     string    `json:"keyword"`
	Platform    Platform  `json:"platform"`
	Volume      int       `json:"volume"`
	Trend       []int     `json:"trend,omitempty"`
	CPC         *float64  `json:"cpc,omitempty"`
	Competition *float64  `json:"competition,omitempty"`
	IsEstimated bool      `json:"is_estimated"`
	CollectedAt time.Time `json:"collected_at"`
}

// SnapshotsFromKeyword converte o agregado de uma keyword em snapshots
// individuais por plataforma, prontos para persistência
func SnapshotsFromKeyword(kw *CrossPlatformKeyword, collectedAt time.Time) []*KeywordSnapshot {
	snapshots := make([]*KeywordSnapshot, 0, len(kw.Platforms))
	for _, data := range kw.Platforms {
		snapshots = append(snapshots, &KeywordSnapshot{
			Keyword:     kw.Keyword,
			Platform:    data.Platform,
			Volume:      data.Volume,
			Trend:       data.Trend,
			CPC:         data.CPC,
			Competition: data.Competition,
			IsEstimated: data.IsEstimated,
			CollectedAt: collectedAt,
		})
	}
	return snapshots
}
