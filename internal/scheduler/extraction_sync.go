package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualizer/internal/config"
	"github.com/vfg2006/sales-visualizer/internal/usecases/extracting"
	"github.com/vfg2006/sales-visualizer/pkg/utils"
)

// ErrSyncRunning indica que já existe uma extração em andamento
var ErrSyncRunning = errors.New("extração já em andamento")

// ExtractionSyncConfig representa a configuração do agendador de extração
type ExtractionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ExtractionSyncService reexecuta a extração periodicamente, com no máximo uma execução por vez
type ExtractionSyncService struct {
	scheduler           *gocron.Scheduler
	config              ExtractionSyncConfig
	extractor           extracting.Extractor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncID          string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRows            int
	lastError           error
}

func NewExtractionSyncService(extractor extracting.Extractor, appConfig *config.Config) *ExtractionSyncService {
	syncConfig := ExtractionSyncConfig{
		CronSchedule: appConfig.ExtractionSync.CronSchedule,
		SyncEnabled:  appConfig.ExtractionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de extração carregada")

	return &ExtractionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		extractor: extractor,
	}
}

// Start agenda a extração e para o agendador quando o contexto é cancelado
func (s *ExtractionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Extração agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de extração")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na extração agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar extração: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop para o agendador sem interromper uma extração em andamento
func (s *ExtractionSyncService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando agendador de extração")
		s.scheduler.Stop()
	}
}

// RunNow executa a extração de forma síncrona. Retorna ErrSyncRunning se outra execução estiver ativa.
func (s *ExtractionSyncService) RunNow(ctx context.Context) (*extracting.Result, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	syncID, err := utils.GenerateID()
	if err != nil {
		syncID = "-"
	}

	logger := logrus.WithField("sync_id", syncID)
	logger.Info("Iniciando extração")

	result, err := s.extractor.Run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncID = syncID
	s.lastError = err

	if err != nil {
		logger.WithError(err).Error("Extração falhou, saída anterior mantida")
		return nil, err
	}

	s.lastSyncCompletedAt = time.Now()
	s.lastRows = result.Rows

	logger.WithFields(logrus.Fields{
		"rows":     result.Rows,
		"duration": result.Duration.String(),
	}).Info("Extração concluída")

	return result, nil
}

// TriggerManualSync dispara uma extração em segundo plano
func (s *ExtractionSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando extração manual")
	go func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na extração manual")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ExtractionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_id":           s.lastSyncID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_rows":              s.lastRows,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}
	return status
}
