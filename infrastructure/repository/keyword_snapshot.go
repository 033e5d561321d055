package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/database/postgres"
	"github.com/vfg2006/total-search-api/internal/domain"
	"github.com/vfg2006/total-search-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	keywordSnapshotsTable = "keyword_snapshots"
	trackedKeywordsTable  = "tracked_keywords"
)

// KeywordSnapshotRepository persiste as medições de volume coletadas pela
// sincronização diária e o conjunto de keywords acompanhadas.
type KeywordSnapshotRepository interface {
	SaveSnapshots(snapshots []*domain.KeywordSnapshot) error
	GetLatestByKeyword(keyword string) (*domain.CrossPlatformKeyword, error)
	ListTrackedKeywords() ([]string, error)
	TrackKeyword(keyword string) error
	Keywords() (map[string]*domain.CrossPlatformKeyword, error)
}

type keywordSnapshotRepository struct {
	conn *postgres.Connection
}

func NewKeywordSnapshotRepository(conn *postgres.Connection) KeywordSnapshotRepository {
	return &keywordSnapshotRepository{
		conn: conn,
	}
}

func (r *keywordSnapshotRepository) SaveSnapshots(snapshots []*domain.KeywordSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(keywordSnapshotsTable).
		Columns("id", "keyword", "platform", "volume", "trend", "cpc", "competition", "is_estimated", "collected_at")

	for _, snapshot := range snapshots {
		if snapshot.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return err
			}
			snapshot.ID = id
		}

		trendJSON, err := json.Marshal(snapshot.Trend)
		if err != nil {
			return err
		}

		queryBuilder = queryBuilder.Values(
			snapshot.ID,
			snapshot.Keyword,
			snapshot.Platform,
			snapshot.Volume,
			string(trendJSON),
			snapshot.CPC,
			snapshot.Competition,
			snapshot.IsEstimated,
			snapshot.CollectedAt,
		)
	}

	snapshotsSQL, snapshotsArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(snapshotsSQL, snapshotsArgs...)
	if err != nil {
		return err
	}

	logrus.WithField("snapshots", len(snapshots)).Debug("repository: saved keyword snapshots")

	return nil
}

// GetLatestByKeyword monta o agregado da keyword a partir do snapshot mais
// recente de cada plataforma
func (r *keywordSnapshotRepository) GetLatestByKeyword(keyword string) (*domain.CrossPlatformKeyword, error) {
	queryBuilder := squirrel.
		Select("DISTINCT ON (platform) keyword", "platform", "volume", "trend", "cpc", "competition", "is_estimated").
		From(keywordSnapshotsTable).
		Where(squirrel.Eq{"keyword": keyword}).
		OrderBy("platform", "collected_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	snapshotsSQL, snapshotsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(snapshotsSQL, snapshotsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	platforms := make(map[domain.Platform]*domain.PlatformDatum)
	for rows.Next() {
		datum, _, err := scanSnapshotRow(rows)
		if err != nil {
			return nil, err
		}
		platforms[datum.Platform] = datum
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(platforms) == 0 {
		return nil, sql.ErrNoRows
	}

	return domain.NewCrossPlatformKeyword(keyword, platforms), nil
}

func (r *keywordSnapshotRepository) ListTrackedKeywords() ([]string, error) {
	queryBuilder := squirrel.
		Select("keyword").
		From(trackedKeywordsTable).
		OrderBy("keyword ASC").
		PlaceholderFormat(squirrel.Dollar)

	trackedSQL, trackedArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(trackedSQL, trackedArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var keyword string
		if err := rows.Scan(&keyword); err != nil {
			return nil, err
		}
		keywords = append(keywords, keyword)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return keywords, nil
}

func (r *keywordSnapshotRepository) TrackKeyword(keyword string) error {
	queryBuilder := squirrel.
		Insert(trackedKeywordsTable).
		Columns("keyword", "created_at").
		Values(keyword, time.Now()).
		Suffix("ON CONFLICT (keyword) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	trackedSQL, trackedArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(trackedSQL, trackedArgs...)
	if err != nil {
		return err
	}

	return nil
}

// Keywords devolve o snapshot mais recente de todas as keywords acompanhadas,
// indexado pelo termo em minúsculas. Alimenta o lookup quando o banco está
// habilitado.
func (r *keywordSnapshotRepository) Keywords() (map[string]*domain.CrossPlatformKeyword, error) {
	queryBuilder := squirrel.
		Select("DISTINCT ON (keyword, platform) keyword", "platform", "volume", "trend", "cpc", "competition", "is_estimated").
		From(keywordSnapshotsTable).
		OrderBy("keyword", "platform", "collected_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	snapshotsSQL, snapshotsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(snapshotsSQL, snapshotsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byKeyword := make(map[string]map[domain.Platform]*domain.PlatformDatum)
	names := make(map[string]string)
	for rows.Next() {
		datum, keyword, err := scanSnapshotRow(rows)
		if err != nil {
			return nil, err
		}

		key := strings.ToLower(keyword)
		if _, ok := byKeyword[key]; !ok {
			byKeyword[key] = make(map[domain.Platform]*domain.PlatformDatum)
			names[key] = keyword
		}
		byKeyword[key][datum.Platform] = datum
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	keywords := make(map[string]*domain.CrossPlatformKeyword, len(byKeyword))
	for key, platforms := range byKeyword {
		keywords[key] = domain.NewCrossPlatformKeyword(names[key], platforms)
	}

	return keywords, nil
}

func scanSnapshotRow(rows *sql.Rows) (*domain.PlatformDatum, string, error) {
	var (
		keyword     string
		platform    string
		trendJSON   sql.NullString
		datum       domain.PlatformDatum
		cpc         sql.NullFloat64
		competition sql.NullFloat64
	)

	if err := rows.Scan(&keyword, &platform, &datum.Volume, &trendJSON, &cpc, &competition, &datum.IsEstimated); err != nil {
		return nil, "", err
	}

	datum.Platform = domain.Platform(platform)

	if trendJSON.Valid && trendJSON.String != "" {
		if err := json.Unmarshal([]byte(trendJSON.String), &datum.Trend); err != nil {
			logrus.WithFields(logrus.Fields{
				"keyword": keyword,
				"error":   err.Error(),
			}).Warn("repository: failed to decode snapshot trend")
		}
	}

	if cpc.Valid {
		datum.CPC = &cpc.Float64
	}
	if competition.Valid {
		datum.Competition = &competition.Float64
	}

	return &datum, keyword, nil
}
