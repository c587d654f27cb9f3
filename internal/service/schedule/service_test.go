package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnosya/booking-service/internal/domain"
	scheduleStorage "github.com/turnosya/booking-service/internal/infra/storage/schedule"
	"github.com/turnosya/booking-service/internal/service/schedule/models"
)

type mockRepo struct {
	schedule *domain.WeeklySchedule
	getErr   error
	saved    *domain.WeeklySchedule
}

func (m *mockRepo) GetByProfessional(_ context.Context, _, _ int64) (*domain.WeeklySchedule, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.schedule, nil
}

func (m *mockRepo) Save(_ context.Context, _ int64, schedule *domain.WeeklySchedule) error {
	m.saved = schedule
	return nil
}

type mockPublisher struct {
	messages []string
}

func (m *mockPublisher) Publish(_ context.Context, _, message string) error {
	m.messages = append(m.messages, message)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGet_ReturnsDefaultWhenMissing(t *testing.T) {
	repo := &mockRepo{getErr: scheduleStorage.ErrScheduleNotFound}
	svc := NewService(repo, &mockPublisher{}, nopLogger{})

	schedule, isDefault, err := svc.Get(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.True(t, isDefault)
	assert.Empty(t, schedule.SlotsFor("Domingo"))
	assert.NotEmpty(t, schedule.SlotsFor("Lunes"))

	// Дефолт не сохраняется неявно
	assert.Nil(t, repo.saved)
}

func TestSave_ValidatesSchedule(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &mockPublisher{}, nopLogger{})

	bad := domain.NewWeeklySchedule(7)
	bad.Days["Lunes"] = []domain.SlotIndex{50}

	err := svc.Save(context.Background(), 1, bad)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Nil(t, repo.saved)
}

func TestSave_PublishesChange(t *testing.T) {
	repo := &mockRepo{}
	publisher := &mockPublisher{}
	svc := NewService(repo, publisher, nopLogger{})

	err := svc.Save(context.Background(), 1, domain.DefaultWeeklySchedule(7))
	require.NoError(t, err)
	assert.NotNil(t, repo.saved)
	assert.Equal(t, []string{"7"}, publisher.messages)
}

func TestApplyOperations_Sequential(t *testing.T) {
	schedule := domain.NewWeeklySchedule(7)
	schedule.Days["Lunes"] = []domain.SlotIndex{18, 19}
	repo := &mockRepo{schedule: schedule}
	svc := NewService(repo, &mockPublisher{}, nopLogger{})

	// toggle добавляет слот, copy после toggle видит уже измененный день
	result, err := svc.ApplyOperations(context.Background(), 1, 7, []models.Operation{
		{Type: models.OpToggle, Day: "Lunes", Slot: 20},
		{Type: models.OpCopy, FromDay: "Lunes", ToDay: "Viernes"},
		{Type: models.OpClear, Day: "Lunes"},
	})
	require.NoError(t, err)

	assert.Empty(t, result.SlotsFor("Lunes"))
	assert.Equal(t, []domain.SlotIndex{18, 19, 20}, result.SlotsFor("Viernes"))

	// Сохранение выполняется один раз, итоговым состоянием
	require.NotNil(t, repo.saved)
	assert.Equal(t, []domain.SlotIndex{18, 19, 20}, repo.saved.SlotsFor("Viernes"))
}

func TestApplyOperations_ToggleAll(t *testing.T) {
	schedule := domain.NewWeeklySchedule(7)
	schedule.Days["Martes"] = []domain.SlotIndex{20}
	repo := &mockRepo{schedule: schedule}
	svc := NewService(repo, &mockPublisher{}, nopLogger{})

	// Частично заполненный день становится полным
	result, err := svc.ApplyOperations(context.Background(), 1, 7, []models.Operation{
		{Type: models.OpToggleAll, Day: "Martes"},
	})
	require.NoError(t, err)
	assert.Len(t, result.SlotsFor("Martes"), domain.SlotsPerDay)
}

func TestApplyOperations_UnknownOperation(t *testing.T) {
	repo := &mockRepo{schedule: domain.NewWeeklySchedule(7)}
	svc := NewService(repo, &mockPublisher{}, nopLogger{})

	_, err := svc.ApplyOperations(context.Background(), 1, 7, []models.Operation{
		{Type: "fill_gaps", Day: "Lunes"},
	})
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Nil(t, repo.saved)
}

func TestApplyOperations_FailedOperationSavesNothing(t *testing.T) {
	repo := &mockRepo{schedule: domain.NewWeeklySchedule(7)}
	svc := NewService(repo, &mockPublisher{}, nopLogger{})

	_, err := svc.ApplyOperations(context.Background(), 1, 7, []models.Operation{
		{Type: models.OpToggle, Day: "Lunes", Slot: 20},
		{Type: models.OpToggle, Day: "Lunes", Slot: 99},
	})
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Nil(t, repo.saved)
}

func TestApplyOperations_Empty(t *testing.T) {
	svc := NewService(&mockRepo{}, &mockPublisher{}, nopLogger{})

	_, err := svc.ApplyOperations(context.Background(), 1, 7, nil)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}
