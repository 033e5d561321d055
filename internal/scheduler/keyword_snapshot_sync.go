package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool"
	"github.com/vfg2006/total-search-api/infrastructure/repository"
	"github.com/vfg2006/total-search-api/internal/config"
	"github.com/vfg2006/total-search-api/internal/domain"
)

// Tamanho do lote enviado ao vendor por requisição de volume
const syncBatchSize = 50

// KeywordSnapshotSyncConfig representa a configuração do agendador de snapshots
type KeywordSnapshotSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// KeywordSnapshotSyncService gerencia o agendamento e a coleta diária de
// snapshots de volume das keywords acompanhadas
type KeywordSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              KeywordSnapshotSyncConfig
	appConfig           *config.Config
	snapshotRepo        repository.KeywordSnapshotRepository
	keywordService      keywordtool.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewKeywordSnapshotSyncService cria uma nova instância do serviço de sincronização
func NewKeywordSnapshotSyncService(
	snapshotRepo repository.KeywordSnapshotRepository,
	keywordService keywordtool.Integrator,
	appConfig *config.Config,
) *KeywordSnapshotSyncService {
	syncConfig := KeywordSnapshotSyncConfig{
		CronSchedule:        appConfig.KeywordSync.CronSchedule,
		RequestDelaySeconds: appConfig.KeywordSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.KeywordSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de keywords carregada")

	return &KeywordSnapshotSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		snapshotRepo:   snapshotRepo,
		keywordService: keywordService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *KeywordSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de keywords desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de keywords")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllKeywords(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de keywords: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de keywords")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllKeywords coleta o volume atual de todas as keywords acompanhadas
func (s *KeywordSnapshotSyncService) syncAllKeywords(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots para todas as keywords acompanhadas")

	tracked, err := s.snapshotRepo.ListTrackedKeywords()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de keywords acompanhadas")
		return
	}

	if len(tracked) == 0 {
		logrus.Info("Nenhuma keyword acompanhada encontrada para sincronização")
		return
	}

	saved := 0
	for _, batch := range batchKeywords(tracked, syncBatchSize) {
		saved += s.processBatch(ctx, batch)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"keywords":  len(tracked),
		"snapshots": saved,
	}).Info("Sincronização de snapshots de keywords concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processBatch consulta o vendor e persiste os snapshots de um lote de keywords
func (s *KeywordSnapshotSyncService) processBatch(ctx context.Context, batch []string) int {
	logrus.WithField("batch_size", len(batch)).Info("Processando lote de keywords")

	results, err := s.keywordService.SearchVolume(ctx, batch, domain.DefaultPlatforms)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"batch_size": len(batch),
			"error":      err.Error(),
		}).Error("Erro ao obter volume de busca do lote")
		return 0
	}

	collectedAt := time.Now()
	snapshots := make([]*domain.KeywordSnapshot, 0, len(results)*len(domain.DefaultPlatforms))
	for _, kw := range results {
		snapshots = append(snapshots, domain.SnapshotsFromKeyword(kw, collectedAt)...)
	}

	if err := s.snapshotRepo.SaveSnapshots(snapshots); err != nil {
		logrus.WithFields(logrus.Fields{
			"snapshots": len(snapshots),
			"error":     err.Error(),
		}).Error("Erro ao salvar snapshots no banco de dados")
		return 0
	}

	return len(snapshots)
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *KeywordSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots de keywords")
	go s.syncAllKeywords(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *KeywordSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_batch_size":        syncBatchSize,
		"retention_policy":       "dados mantidos permanentemente",
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// batchKeywords divide as keywords em lotes do tamanho configurado
func batchKeywords(keywords []string, size int) [][]string {
	if size <= 0 {
		return [][]string{keywords}
	}

	batches := make([][]string, 0, (len(keywords)+size-1)/size)
	for start := 0; start < len(keywords); start += size {
		end := min(start+size, len(keywords))
		batches = append(batches, keywords[start:end])
	}
	return batches
}
