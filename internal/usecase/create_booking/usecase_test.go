package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnosya/booking-service/internal/domain"
	bookingStorage "github.com/turnosya/booking-service/internal/infra/storage/booking"
	scheduleStorage "github.com/turnosya/booking-service/internal/infra/storage/schedule"
	"github.com/turnosya/booking-service/internal/integrations/directory"
)

type mockBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	booking.ID = 42
	m.created = booking
	return booking, nil
}

func (m *mockBookingRepo) GetByProfessionalAndDate(_ context.Context, _ domain.ProfessionalDayFilter) ([]*domain.Booking, error) {
	return m.existing, nil
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
}

func (m *mockConfigSvc) GetConfig(_ context.Context, tenantID int64) (*domain.TenantConfig, error) {
	if m.config != nil {
		return m.config, nil
	}
	return domain.DefaultTenantConfig(tenantID), nil
}

type mockDirectory struct {
	professional *directory.Professional
	service      *directory.Service
}

func (m *mockDirectory) GetProfessional(_ context.Context, _, _ int64) (*directory.Professional, error) {
	return m.professional, nil
}

func (m *mockDirectory) GetService(_ context.Context, _, _ int64) (*directory.Service, error) {
	return m.service, nil
}

type mockNotifier struct {
	notified chan *domain.Booking
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{notified: make(chan *domain.Booking, 1)}
}

func (m *mockNotifier) NotifyBookingCreated(_ context.Context, booking *domain.Booking, _ string, _ bool) {
	m.notified <- booking
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type testEnv struct {
	uc           *UseCase
	bookingRepo  *mockBookingRepo
	scheduleRepo *mockScheduleRepo
	notifier     *mockNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		bookingRepo: &mockBookingRepo{},
		scheduleRepo: &mockScheduleRepo{schedule: &domain.WeeklySchedule{
			ProfessionalID: 7,
			Days: map[string][]domain.SlotIndex{
				"Lunes":  workingBlock(18, 39),
				"Martes": workingBlock(18, 39),
			},
		}},
		notifier: newMockNotifier(),
	}

	env.uc = NewUseCase(
		env.bookingRepo,
		env.scheduleRepo,
		&mockConfigSvc{},
		&mockDirectory{
			professional: &directory.Professional{ID: 7, Name: "Carla", Active: true},
			service:      &directory.Service{ID: 3, Name: "Corte", DurationMinutes: 60},
		},
		env.notifier,
		inlineTxManager{},
		&fixedTimeProvider{now: testNow},
		nopLogger{},
	)

	return env
}

func validRequest() *Request {
	return &Request{
		TenantID:       1,
		ClientName:     "Marta Lopez",
		ClientWhatsApp: "+5491155551234",
		ProfessionalID: 7,
		ServiceID:      3,
		Date:           "2026-09-15",
		StartTime:      "10:00",
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, domain.StatusReserved, resp.Status)
	assert.Equal(t, "Corte", resp.ServiceName)
	assert.Equal(t, "Carla", resp.ProfessionalName)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String(), "end = start + duration")

	require.NotNil(t, env.bookingRepo.created)
	assert.Equal(t, domain.StatusReserved, env.bookingRepo.created.Status)

	// Уведомление отправляется после создания (fire-and-forget)
	select {
	case notified := <-env.notifier.notified:
		assert.Equal(t, int64(42), notified.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestExecute_ConflictingBooking(t *testing.T) {
	env := newTestEnv()
	env.bookingRepo.existing = []*domain.Booking{
		{ID: 9, StartTime: "10:30", EndTime: "11:30", Status: domain.StatusConfirmed},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_TouchingBookingDoesNotConflict(t *testing.T) {
	env := newTestEnv()
	// Существующая запись заканчивается ровно в 10:00
	env.bookingRepo.existing = []*domain.Booking{
		{ID: 9, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusReserved},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	env := newTestEnv()
	env.bookingRepo.existing = []*domain.Booking{
		{ID: 9, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCancelled},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_LeadTimeViolation(t *testing.T) {
	env := newTestEnv()

	// Сегодня 10:00, запись на 11:30 - меньше двух часов
	req := validRequest()
	req.Date = "2026-09-14"
	req.StartTime = "11:30"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrLeadTimeViolation)

	// Запись на 12:00 ровно через два часа - допустима
	req.StartTime = "12:00"
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SlotOutsideSchedule(t *testing.T) {
	env := newTestEnv()

	// 08:00 вне рабочего блока 09:00-19:30
	req := validRequest()
	req.StartTime = "08:00"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_DayOff(t *testing.T) {
	env := newTestEnv()

	// Воскресенье отсутствует в расписании
	req := validRequest()
	req.Date = "2026-09-20"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayOff)
}

func TestExecute_UnalignedStartTime(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.StartTime = "10:15"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_DateBeyondHorizon(t *testing.T) {
	env := newTestEnv()
	env.uc.configSvc = &mockConfigSvc{config: &domain.TenantConfig{
		TenantID:            1,
		SlotDurationMinutes: 30,
		AdvanceBookingDays:  7,
	}}

	req := validRequest()
	req.Date = "2026-09-22" // 8 дней вперед при лимите 7

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_ConcurrentInsertMapsToSlotTaken(t *testing.T) {
	// Уникальный индекс - последний рубеж: нарушение транслируется в ErrSlotTaken
	env := newTestEnv()
	env.bookingRepo.createErr = bookingStorage.ErrSlotTaken

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_MissingScheduleFallsBackToDefault(t *testing.T) {
	env := newTestEnv()
	env.scheduleRepo.schedule = nil
	env.scheduleRepo.err = scheduleStorage.ErrScheduleNotFound

	// Дефолтный блок 09:00-19:30 содержит 10:00
	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.ClientWhatsApp = "not-a-phone"
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.ClientName = ""
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Date = "15/09/2026"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PastDate(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.Date = "2026-09-13"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
