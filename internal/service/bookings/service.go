package bookings

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labdelines/booking-calendar/internal/domain"
)

// Source происхождение данных текущего снапшота
type Source string

const (
	// SourceLive данные получены из внешнего источника
	SourceLive Source = "live"

	// SourceSample встроенный fallback-набор (источник недоступен
	// или еще ни разу не отвечал)
	SourceSample Source = "sample"
)

// Snapshot иммутабельный снимок нормализованных записей бронирований.
// Читатели получают снапшот целиком и никогда не мутируют его.
type Snapshot struct {
	Records   []domain.BookingRecord
	Source    Source
	FetchedAt time.Time
}

// Service поставщик записей бронирований для вычисления календаря.
//
// Держит в памяти один снапшот, обновляемый по расписанию (cron в main).
// Решение о fallback принимается здесь, а не в клиенте источника: при
// ошибке загрузки сервис сохраняет последний живой снапшот, а если живых
// данных еще не было - отдает встроенный набор примеров.
type Service struct {
	client  SourceClient
	metrics Metrics
	logger  Logger

	// generation монотонный счетчик загрузок: результат устаревшего
	// (более медленного) fetch не может перезаписать более новый снапшот
	generation atomic.Uint64

	mu         sync.RWMutex
	appliedGen uint64
	snapshot   Snapshot
}

// NewService создает сервис. До первого успешного Refresh снапшот
// содержит встроенный набор примеров.
func NewService(client SourceClient, metrics Metrics, logger Logger) *Service {
	return &Service{
		client:  client,
		metrics: metrics,
		logger:  logger,
		snapshot: Snapshot{
			Records:   SampleRecords(),
			Source:    SourceSample,
			FetchedAt: time.Time{},
		},
	}
}

// Refresh загружает данные из источника и атомарно заменяет снапшот.
//
// При ошибке источника живой снапшот (если он есть) остается без
// изменений - показывать устаревшие данные лучше, чем подменять их
// примерами из-за разового сбоя сети. Ошибка возвращается для
// логирования вызывающей стороной, но не является фатальной.
func (s *Service) Refresh(ctx context.Context) error {
	gen := s.generation.Add(1)

	raw, err := s.client.Fetch(ctx)
	if err != nil {
		s.metrics.IncSourceFetch("fallback")

		s.mu.RLock()
		liveBefore := s.snapshot.Source == SourceLive
		s.mu.RUnlock()

		if liveBefore {
			s.logger.Error("Refresh: source unavailable, keeping previous live snapshot: %v", err)
		} else {
			s.logger.Error("Refresh: source unavailable, serving sample data: %v", err)
		}
		return fmt.Errorf("refresh booking records: %w", err)
	}

	records := Normalize(raw)
	applied := s.apply(gen, Snapshot{
		Records:   records,
		Source:    SourceLive,
		FetchedAt: time.Now(),
	})

	if !applied {
		s.logger.Warn("Refresh: stale fetch result discarded (generation %d)", gen)
		return nil
	}

	s.metrics.IncSourceFetch("success")
	s.logger.Info("Refresh: loaded %d records from source (%d raw, %d dropped by normalization)",
		len(records), len(raw), len(raw)-len(records))
	return nil
}

// apply заменяет снапшот, если gen новее уже примененного
func (s *Service) apply(gen uint64, snap Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.appliedGen {
		return false
	}
	s.appliedGen = gen
	s.snapshot = snap
	return true
}

// Records возвращает текущий снапшот записей
func (s *Service) Records() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
