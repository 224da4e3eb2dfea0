package export_bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

// csvHeader колонки выгрузки в порядке следования
var csvHeader = []string{
	"reference",
	"traveler",
	"guide",
	"tour",
	"date",
	"start_time",
	"timezone",
	"party_size",
	"status",
	"price",
	"created_at",
}

// Request фильтр выгрузки; совпадает с фильтром admin-поиска
type Request struct {
	NameQuery *string
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// Response готовая CSV выгрузка
type Response struct {
	Filename string
	Content  []byte
	Rows     int
}

// UseCase use case выгрузки бронирований в CSV для админки
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// NewUseCase создает новый экземпляр use case выгрузки
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет выгрузку: применяет фильтр admin-поиска и
// сериализует результат в CSV
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	searchReq := &models.AdminSearchRequest{
		NameQuery: req.NameQuery,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Limit:     req.Limit,
	}

	filter, err := searchReq.ToDomainFilter()
	if err != nil {
		uc.logger.Warn("ExportBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := uc.bookingRepo.SearchAdmin(ctx, filter)
	if err != nil {
		uc.logger.Error("ExportBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	content, err := marshalCSV(bookings)
	if err != nil {
		uc.logger.Error("ExportBookings: csv marshalling failed: %v", err)
		return nil, fmt.Errorf("%w: csv marshalling failed: %v", ErrInternal, err)
	}

	filename := fmt.Sprintf("bookings-%s.csv", uc.timeProvider.Now().UTC().Format("20060102-150405"))
	uc.logger.Info("ExportBookings: exported %d bookings to %s", len(bookings), filename)

	return &Response{
		Filename: filename,
		Content:  content,
		Rows:     len(bookings),
	}, nil
}

// marshalCSV сериализует бронирования в CSV с фиксированным заголовком
func marshalCSV(bookings []*domain.Booking) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, b := range bookings {
		record := []string{
			b.Reference,
			b.TravelerName,
			b.GuideName,
			b.TourName,
			b.BookingDate.Format(domain.DateFormat),
			b.StartTime.String(),
			b.Timezone,
			strconv.Itoa(b.PartySize),
			string(b.Status),
			strconv.FormatFloat(b.TourPrice, 'f', 2, 64),
			b.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
