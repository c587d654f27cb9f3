package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnosya/booking-service/internal/domain"
	scheduleStorage "github.com/turnosya/booking-service/internal/infra/storage/schedule"
	"github.com/turnosya/booking-service/internal/integrations/directory"
	"github.com/turnosya/booking-service/pkg/types"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetByProfessionalAndDate(_ context.Context, _ domain.ProfessionalDayFilter) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

type mockScheduleRepo struct {
	schedule *domain.WeeklySchedule
	err      error
}

func (m *mockScheduleRepo) GetByProfessional(_ context.Context, _, _ int64) (*domain.WeeklySchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schedule, nil
}

type mockConfigSvc struct {
	config *domain.TenantConfig
	err    error
}

func (m *mockConfigSvc) GetConfig(_ context.Context, tenantID int64) (*domain.TenantConfig, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.config != nil {
		return m.config, nil
	}
	return domain.DefaultTenantConfig(tenantID), nil
}

type mockDirectory struct {
	professional    *directory.Professional
	professionalErr error
	service         *directory.Service
	serviceErr      error
}

func (m *mockDirectory) GetProfessional(_ context.Context, _, _ int64) (*directory.Professional, error) {
	if m.professionalErr != nil {
		return nil, m.professionalErr
	}
	return m.professional, nil
}

func (m *mockDirectory) GetService(_ context.Context, _, _ int64) (*directory.Service, error) {
	if m.serviceErr != nil {
		return nil, m.serviceErr
	}
	return m.service, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2026-09-14 - понедельник (Lunes)
var testNow = time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local)

func workingBlock(first, last int) []domain.SlotIndex {
	block := make([]domain.SlotIndex, 0, last-first+1)
	for i := first; i <= last; i++ {
		block = append(block, domain.SlotIndex(i))
	}
	return block
}

func testSchedule(days map[string][]domain.SlotIndex) *domain.WeeklySchedule {
	return &domain.WeeklySchedule{ProfessionalID: 7, Days: days}
}

func testBooking(start, end types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        100,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func newTestUseCase(
	bookingRepo *mockBookingRepo,
	scheduleRepo *mockScheduleRepo,
	configSvc *mockConfigSvc,
	dir *mockDirectory,
	now time.Time,
) *UseCase {
	return NewUseCase(bookingRepo, scheduleRepo, configSvc, dir, &fixedTimeProvider{now: now}, nopLogger{})
}

func defaultDirectory() *mockDirectory {
	return &mockDirectory{
		professional: &directory.Professional{ID: 7, Name: "Carla", Active: true},
		service:      &directory.Service{ID: 3, Name: "Corte", DurationMinutes: 60},
	}
}

func testRequest(date time.Time) *Request {
	return &Request{TenantID: 1, ProfessionalID: 7, ServiceID: 3, Date: date}
}

func TestExecute_ExcludesOverlappingSlots(t *testing.T) {
	// Вторник 09:00-19:30, услуга 60 минут, занято 10:00-11:00
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Martes": workingBlock(18, 39),
	})}
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		testBooking("10:00", "11:00", domain.StatusReserved),
	}}

	uc := newTestUseCase(bookingRepo, scheduleRepo, &mockConfigSvc{}, defaultDirectory(), testNow)

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	resp, err := uc.Execute(context.Background(), testRequest(tuesday))
	require.NoError(t, err)

	slots := make(map[types.TimeString]bool)
	for _, s := range resp.Slots {
		slots[s] = true
	}

	// Интервал [слот, слот+60) не должен пересекаться с [10:00, 11:00)
	assert.False(t, slots["09:30"], "would run into the booking")
	assert.False(t, slots["10:00"], "starts inside the booking")
	assert.False(t, slots["10:30"], "starts inside the booking")

	// Касание границ не является конфликтом
	assert.True(t, slots["09:00"], "ends exactly at booking start")
	assert.True(t, slots["11:00"], "starts exactly at booking end")

	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Martes": workingBlock(18, 39),
	})}
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		testBooking("10:00", "11:00", domain.StatusCancelled),
	}}

	uc := newTestUseCase(bookingRepo, scheduleRepo, &mockConfigSvc{}, defaultDirectory(), testNow)

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	resp, err := uc.Execute(context.Background(), testRequest(tuesday))
	require.NoError(t, err)

	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
}

func TestExecute_LeadTimeAppliesOnlyToday(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Lunes":  workingBlock(18, 39),
		"Martes": workingBlock(18, 39),
	})}

	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, &mockConfigSvc{}, defaultDirectory(), testNow)

	// Сегодня (понедельник, сейчас 10:00): слоты раньше 12:00 отфильтрованы
	resp, err := uc.Execute(context.Background(), testRequest(testNow))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[0])

	// Завтра lead time не действует: первый слот 09:00
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	resp, err = uc.Execute(context.Background(), testRequest(tuesday))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
}

func TestExecute_DayOff(t *testing.T) {
	// Воскресенье отсутствует в расписании
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Lunes": workingBlock(18, 39),
	})}

	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, &mockConfigSvc{}, defaultDirectory(), testNow)

	sunday := time.Date(2026, 9, 20, 0, 0, 0, 0, time.Local)
	_, err := uc.Execute(context.Background(), testRequest(sunday))
	assert.ErrorIs(t, err, ErrDayOff)
}

func TestExecute_DateBeyondHorizon(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Lunes":  workingBlock(18, 39),
		"Martes": workingBlock(18, 39),
	})}
	configSvc := &mockConfigSvc{config: &domain.TenantConfig{
		TenantID:            1,
		SlotDurationMinutes: 30,
		AdvanceBookingDays:  7,
	}}

	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, configSvc, defaultDirectory(), testNow)

	// 8 дней вперед при лимите 7
	beyond := time.Date(2026, 9, 22, 0, 0, 0, 0, time.Local)
	_, err := uc.Execute(context.Background(), testRequest(beyond))
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	// Ровно на границе лимита - допустимо
	edge := time.Date(2026, 9, 21, 0, 0, 0, 0, time.Local)
	_, err = uc.Execute(context.Background(), testRequest(edge))
	assert.NoError(t, err)
}

func TestExecute_HorizonCheckedBeforeDayOff(t *testing.T) {
	// Дата за горизонтом отклоняется даже для выходного дня
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Lunes": workingBlock(18, 39),
	})}
	configSvc := &mockConfigSvc{config: &domain.TenantConfig{
		TenantID:            1,
		SlotDurationMinutes: 30,
		AdvanceBookingDays:  3,
	}}

	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, configSvc, defaultDirectory(), testNow)

	// Воскресенье (выходной) и за горизонтом
	sunday := time.Date(2026, 9, 20, 0, 0, 0, 0, time.Local)
	_, err := uc.Execute(context.Background(), testRequest(sunday))
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_BookingFetchFailureIsNotEmptyResult(t *testing.T) {
	// "Не удалось проверить занятость" никогда не превращается в список слотов
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Martes": workingBlock(18, 39),
	})}
	bookingRepo := &mockBookingRepo{err: errors.New("connection refused")}

	uc := newTestUseCase(bookingRepo, scheduleRepo, &mockConfigSvc{}, defaultDirectory(), testNow)

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	_, err := uc.Execute(context.Background(), testRequest(tuesday))
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrDayOff)
}

func TestExecute_MissingScheduleFallsBackToDefault(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{err: scheduleStorage.ErrScheduleNotFound}

	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, &mockConfigSvc{}, defaultDirectory(), testNow)

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	resp, err := uc.Execute(context.Background(), testRequest(tuesday))
	require.NoError(t, err)

	// Дефолтный рабочий блок: 09:00 - 19:30
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])

	// Воскресенье в дефолтном расписании - выходной
	sunday := time.Date(2026, 9, 20, 0, 0, 0, 0, time.Local)
	_, err = uc.Execute(context.Background(), testRequest(sunday))
	assert.ErrorIs(t, err, ErrDayOff)
}

func TestExecute_ProfessionalChecks(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Martes": workingBlock(18, 39),
	})}
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

	dir := defaultDirectory()
	dir.professionalErr = directory.ErrProfessionalNotFound
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, &mockConfigSvc{}, dir, testNow)
	_, err := uc.Execute(context.Background(), testRequest(tuesday))
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	dir = defaultDirectory()
	dir.professional.Active = false
	uc = newTestUseCase(&mockBookingRepo{}, scheduleRepo, &mockConfigSvc{}, dir, testNow)
	_, err = uc.Execute(context.Background(), testRequest(tuesday))
	assert.ErrorIs(t, err, ErrProfessionalInactive)

	dir = defaultDirectory()
	dir.serviceErr = directory.ErrServiceNotFound
	uc = newTestUseCase(&mockBookingRepo{}, scheduleRepo, &mockConfigSvc{}, dir, testNow)
	_, err = uc.Execute(context.Background(), testRequest(tuesday))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ZeroDurationServiceUsesConfigDefault(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Martes": workingBlock(18, 39),
	})}
	dir := defaultDirectory()
	dir.service.DurationMinutes = 0

	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, &mockConfigSvc{}, dir, testNow)

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	resp, err := uc.Execute(context.Background(), testRequest(tuesday))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)
}

func TestExecute_RejectsPastDate(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{}, &mockConfigSvc{}, defaultDirectory(), testNow)

	yesterday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.Local)
	_, err := uc.Execute(context.Background(), testRequest(yesterday))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotsSortedAscending(t *testing.T) {
	// Несортированное множество в хранилище не ломает порядок ответа
	scheduleRepo := &mockScheduleRepo{schedule: testSchedule(map[string][]domain.SlotIndex{
		"Martes": {30, 18, 20},
	})}

	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, &mockConfigSvc{}, defaultDirectory(), testNow)

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	resp, err := uc.Execute(context.Background(), testRequest(tuesday))
	require.NoError(t, err)

	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1] < resp.Slots[i])
	}
}
