package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	keywordtoolmocks "github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool/mocks"
	"github.com/vfg2006/total-search-api/infrastructure/repository/mocks"
	"github.com/vfg2006/total-search-api/internal/config"
	"github.com/vfg2006/total-search-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(snapshotRepo *mocks.MockKeywordSnapshotRepository, keywordService *keywordtoolmocks.MockIntegrator) *KeywordSnapshotSyncService {
	return &KeywordSnapshotSyncService{
		config: KeywordSnapshotSyncConfig{
			CronSchedule:        "0 3 * * *",
			RequestDelaySeconds: 0,
			SyncEnabled:         true,
		},
		appConfig:      &config.Config{},
		snapshotRepo:   snapshotRepo,
		keywordService: keywordService,
	}
}

func TestSyncAllKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockKeywordSnapshotRepository(ctrl)
	mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)

	tracked := []string{"protein powder", "clear whey"}
	results := []*domain.CrossPlatformKeyword{
		domain.NewCrossPlatformKeyword("protein powder", map[domain.Platform]*domain.PlatformDatum{
			domain.PlatformGoogle: {Platform: domain.PlatformGoogle, Volume: 500000},
			domain.PlatformTiktok: {Platform: domain.PlatformTiktok, Volume: 150000},
		}),
		domain.NewCrossPlatformKeyword("clear whey", map[domain.Platform]*domain.PlatformDatum{
			domain.PlatformTiktok: {Platform: domain.PlatformTiktok, Volume: 246000},
		}),
	}

	mockRepo.EXPECT().
		ListTrackedKeywords().
		Return(tracked, nil)

	mockKeywords.EXPECT().
		SearchVolume(gomock.Any(), tracked, domain.DefaultPlatforms).
		Return(results, nil)

	mockRepo.EXPECT().
		SaveSnapshots(gomock.Any()).
		DoAndReturn(func(snapshots []*domain.KeywordSnapshot) error {
			// 2 plataformas da primeira keyword e 1 da segunda
			assert.Len(t, snapshots, 3)
			for _, snapshot := range snapshots {
				assert.False(t, snapshot.CollectedAt.IsZero())
			}
			return nil
		})

	service := newTestSyncService(mockRepo, mockKeywords)
	service.syncAllKeywords(context.Background())

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncAllKeywordsNoTracked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockKeywordSnapshotRepository(ctrl)
	mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)

	mockRepo.EXPECT().
		ListTrackedKeywords().
		Return(nil, nil)

	service := newTestSyncService(mockRepo, mockKeywords)
	service.syncAllKeywords(context.Background())

	// Sem keywords acompanhadas o vendor não é consultado
	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestProcessBatchVendorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockKeywordSnapshotRepository(ctrl)
	mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)

	mockKeywords.EXPECT().
		SearchVolume(gomock.Any(), []string{"protein powder"}, domain.DefaultPlatforms).
		Return(nil, errors.New("vendor indisponível"))

	service := newTestSyncService(mockRepo, mockKeywords)
	saved := service.processBatch(context.Background(), []string{"protein powder"})

	assert.Equal(t, 0, saved)
}

func TestBatchKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		size     int
		expected int
	}{
		{
			name:     "lote unico quando abaixo do limite",
			keywords: []string{"a", "b", "c"},
			size:     50,
			expected: 1,
		},
		{
			name:     "divide em lotes do tamanho configurado",
			keywords: []string{"a", "b", "c", "d", "e"},
			size:     2,
			expected: 3,
		},
		{
			name:     "tamanho invalido vira lote unico",
			keywords: []string{"a", "b"},
			size:     0,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := batchKeywords(tt.keywords, tt.size)
			assert.Len(t, batches, tt.expected)

			total := 0
			for _, batch := range batches {
				total += len(batch)
			}
			assert.Equal(t, len(tt.keywords), total)
		})
	}
}
