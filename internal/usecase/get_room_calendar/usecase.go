package get_room_calendar

import (
	"context"

	"github.com/labdelines/booking-calendar/internal/domain"
)

// UseCase use case получения календаря доступности комнаты на месяц
type UseCase struct {
	records RecordProvider
	rooms   RoomResolver
	rules   domain.StatusRules
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. Правила статусов
// передаются явно - словарь статусов приходит из конфигурации и не
// является глобальным состоянием.
func NewUseCase(records RecordProvider, rooms RoomResolver, rules domain.StatusRules, logger Logger) *UseCase {
	return &UseCase{
		records: records,
		rooms:   rooms,
		rules:   rules,
		logger:  logger,
	}
}

// Execute выполняет use case построения календаря.
//
// Вычисление всегда дает результат "как есть": недоступный источник,
// неизвестная комната и кривые записи не являются ошибками. Ошибку
// получает только запрос с некорректным (year, month) или пустой
// комнатой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomCalendar: room=%s, year=%d, month=%d", req.RoomID, req.Year, int(req.Month))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем комнату; для неизвестного ключа комната получает
	// дефолтную конфигурацию, а фильтрация идет по запрошенному ключу
	roomCfg, known := uc.rooms.Resolve(req.RoomID)
	roomKey := roomCfg.Key

	// 3. Берем текущий снапшот записей
	snap := uc.records.Records()

	// 4. Генерируем сетку месяца
	grid := generateGrid(req.Year, req.Month, snap.Records, roomKey, uc.rules)

	// 5. Считаем статистику по записям этой комнаты
	roomRecords := filterByRoom(snap.Records, roomKey)
	stats := computeStats(grid, roomRecords, req.Year, req.Month, uc.rules)

	// 6. Конвертируем ячейки и группируем недели
	days := make([]Day, 0, len(grid))
	for _, cell := range grid {
		days = append(days, toDay(cell, uc.rules))
	}

	weeks := make([][]Day, 0, len(days)/7)
	for i := 0; i+7 <= len(days); i += 7 {
		weeks = append(weeks, days[i:i+7])
	}

	// 7. Навигация по месяцам
	current := domain.YearMonth{Year: req.Year, Month: req.Month}

	uc.logger.Info("GetRoomCalendar: room=%s %d-%02d: %d booked days, %d bookings, source=%s",
		roomKey, req.Year, int(req.Month), stats.BookedDays, stats.TotalBookings, snap.Source)

	return &Response{
		RoomID:    req.RoomID,
		RoomKey:   roomKey,
		Room:      roomCfg,
		RoomKnown: known,
		Year:      req.Year,
		Month:     req.Month,
		Days:      days,
		Weeks:     weeks,
		Stats:     stats,
		Prev:      current.Prev(),
		Next:      current.Next(),
		Source:    snap.Source,
		FetchedAt: snap.FetchedAt,
	}, nil
}
