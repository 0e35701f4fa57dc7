package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
	"github.com/carlosallexandre/gostack-gobarber/internal/service/ports/mocks"
	"github.com/carlosallexandre/gostack-gobarber/internal/timeslot"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type appointmentMocks struct {
	appointmentRepo *mocks.MockAppointmentRepo
	userRepo        *mocks.MockUserRepo
	notifier        *mocks.MockAppointmentNotifier
	dispatcher      *mocks.MockCancellationDispatcher
}

func newAppointmentService(t *testing.T) (*AppointmentService, appointmentMocks) {
	t.Helper()
	m := appointmentMocks{
		appointmentRepo: mocks.NewMockAppointmentRepo(t),
		userRepo:        mocks.NewMockUserRepo(t),
		notifier:        mocks.NewMockAppointmentNotifier(t),
		dispatcher:      mocks.NewMockCancellationDispatcher(t),
	}
	svc := NewAppointmentService(m.appointmentRepo, m.userRepo, m.notifier, m.dispatcher, newTestLogger(t))
	return svc, m
}

func TestAppointmentService_Book_Success(t *testing.T) {
	svc, m := newAppointmentService(t)

	provider := &domain.User{ID: "p1", Name: "Barber Bob", IsProvider: true}
	requester := &domain.User{ID: "u1", Name: "Alice"}
	startsAt := time.Now().UTC().Add(3*time.Hour + 25*time.Minute)

	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(provider, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	m.appointmentRepo.EXPECT().FindActive(mock.Anything, "p1", timeslot.Normalize(startsAt)).
		Return(nil, domain.ErrAppointmentNotFound)
	m.appointmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyAppointmentCreated(mock.Anything, provider, requester, mock.Anything).Return()

	appointment, err := svc.Book(context.Background(), "u1", "p1", startsAt)

	require.NoError(t, err)
	assert.Equal(t, "u1", appointment.RequesterID)
	assert.Equal(t, "p1", appointment.ProviderID)
	assert.Equal(t, timeslot.Normalize(startsAt), appointment.ScheduledAt)
	assert.Nil(t, appointment.CanceledAt)
	assert.NotEmpty(t, appointment.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAppointmentService_Book_SlotTaken(t *testing.T) {
	svc, m := newAppointmentService(t)

	provider := &domain.User{ID: "p1", IsProvider: true}
	requester := &domain.User{ID: "u1"}
	startsAt := time.Now().UTC().Add(3 * time.Hour)

	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(provider, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	m.appointmentRepo.EXPECT().FindActive(mock.Anything, "p1", timeslot.Normalize(startsAt)).
		Return(&domain.Appointment{ID: "a1", ProviderID: "p1"}, nil)

	_, err := svc.Book(context.Background(), "u1", "p1", startsAt)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestAppointmentService_Book_SlotTakenOnRace(t *testing.T) {
	svc, m := newAppointmentService(t)

	provider := &domain.User{ID: "p1", IsProvider: true}
	requester := &domain.User{ID: "u1"}
	startsAt := time.Now().UTC().Add(3 * time.Hour)

	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(provider, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	m.appointmentRepo.EXPECT().FindActive(mock.Anything, "p1", timeslot.Normalize(startsAt)).
		Return(nil, domain.ErrAppointmentNotFound)
	// a concurrent request won the slot between the check and the insert
	m.appointmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	_, err := svc.Book(context.Background(), "u1", "p1", startsAt)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestAppointmentService_Book_PastDate(t *testing.T) {
	svc, m := newAppointmentService(t)

	provider := &domain.User{ID: "p1", IsProvider: true}
	requester := &domain.User{ID: "u1"}

	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(provider, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)

	_, err := svc.Book(context.Background(), "u1", "p1", time.Now().UTC().Add(-time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPastDate)
}

func TestAppointmentService_Book_NotAProvider(t *testing.T) {
	svc, m := newAppointmentService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.User{ID: "p1", IsProvider: false}, nil)

	_, err := svc.Book(context.Background(), "u1", "p1", time.Now().UTC().Add(3*time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAProvider)
}

func TestAppointmentService_Book_SelfBooking(t *testing.T) {
	svc, m := newAppointmentService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.User{ID: "p1", IsProvider: true}, nil)

	_, err := svc.Book(context.Background(), "p1", "p1", time.Now().UTC().Add(3*time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSelfBooking)
	// Create was never expected: booking with yourself must not reach storage
}

func TestAppointmentService_Book_ProviderNotFound(t *testing.T) {
	svc, m := newAppointmentService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), "u1", "missing", time.Now().UTC().Add(3*time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAppointmentService_Cancel_Success(t *testing.T) {
	svc, m := newAppointmentService(t)

	scheduledAt := timeslot.Normalize(time.Now().UTC().Add(4 * time.Hour))
	appointment := &domain.Appointment{
		ID:          "a1",
		RequesterID: "u1",
		ProviderID:  "p1",
		ScheduledAt: scheduledAt,
	}
	requester := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	provider := &domain.User{ID: "p1", Name: "Barber Bob", Email: "bob@example.com"}

	m.appointmentRepo.EXPECT().GetByID(mock.Anything, "a1").Return(appointment, nil)
	m.appointmentRepo.EXPECT().Cancel(mock.Anything, "a1", mock.Anything).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(provider, nil)
	m.dispatcher.EXPECT().EnqueueCancellation(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, job *domain.CancellationJob) {
			assert.Equal(t, "a1", job.Appointment.ID)
			assert.Equal(t, "Alice", job.RequesterName)
			assert.Equal(t, "bob@example.com", job.ProviderEmail)
		}).
		Return(nil).
		Once()

	cancelled, err := svc.Cancel(context.Background(), "u1", "a1")

	require.NoError(t, err)
	require.NotNil(t, cancelled.CanceledAt)

	time.Sleep(50 * time.Millisecond) // goroutine dispatch
}

func TestAppointmentService_Cancel_TooLate(t *testing.T) {
	svc, m := newAppointmentService(t)

	appointment := &domain.Appointment{
		ID:          "a1",
		RequesterID: "u1",
		ProviderID:  "p1",
		ScheduledAt: timeslot.Normalize(time.Now().UTC().Add(time.Hour)),
	}

	m.appointmentRepo.EXPECT().GetByID(mock.Anything, "a1").Return(appointment, nil)

	_, err := svc.Cancel(context.Background(), "u1", "a1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTooLateToCancel)
}

func TestAppointmentService_Cancel_NotOwner(t *testing.T) {
	svc, m := newAppointmentService(t)

	appointment := &domain.Appointment{
		ID:          "a1",
		RequesterID: "u1",
		ProviderID:  "p1",
		ScheduledAt: timeslot.Normalize(time.Now().UTC().Add(4 * time.Hour)),
	}

	m.appointmentRepo.EXPECT().GetByID(mock.Anything, "a1").Return(appointment, nil)

	_, err := svc.Cancel(context.Background(), "v1", "a1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestAppointmentService_Cancel_NotFound(t *testing.T) {
	svc, m := newAppointmentService(t)

	m.appointmentRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrAppointmentNotFound)

	_, err := svc.Cancel(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestAppointmentService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newAppointmentService(t)

	canceledAt := time.Now().UTC().Add(-time.Hour)
	appointment := &domain.Appointment{
		ID:          "a1",
		RequesterID: "u1",
		ProviderID:  "p1",
		ScheduledAt: timeslot.Normalize(time.Now().UTC().Add(4 * time.Hour)),
		CanceledAt:  &canceledAt,
	}

	m.appointmentRepo.EXPECT().GetByID(mock.Anything, "a1").Return(appointment, nil)

	_, err := svc.Cancel(context.Background(), "u1", "a1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestAppointmentService_Cancel_DispatchErrorDoesNotFail(t *testing.T) {
	svc, m := newAppointmentService(t)

	appointment := &domain.Appointment{
		ID:          "a1",
		RequesterID: "u1",
		ProviderID:  "p1",
		ScheduledAt: timeslot.Normalize(time.Now().UTC().Add(4 * time.Hour)),
	}

	m.appointmentRepo.EXPECT().GetByID(mock.Anything, "a1").Return(appointment, nil)
	m.appointmentRepo.EXPECT().Cancel(mock.Anything, "a1", mock.Anything).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.User{ID: "p1"}, nil)
	m.dispatcher.EXPECT().EnqueueCancellation(mock.Anything, mock.Anything).Return(errors.New("queue down"))

	cancelled, err := svc.Cancel(context.Background(), "u1", "a1")

	require.NoError(t, err)
	require.NotNil(t, cancelled.CanceledAt)

	time.Sleep(50 * time.Millisecond)
}

func TestAppointmentService_ListByRequester(t *testing.T) {
	svc, m := newAppointmentService(t)

	appointments := []*domain.Appointment{
		{ID: "a1", RequesterID: "u1"},
		{ID: "a2", RequesterID: "u1"},
	}
	m.appointmentRepo.EXPECT().ListActive(mock.Anything, "u1", 2, 20).Return(appointments, nil)

	result, err := svc.ListByRequester(context.Background(), "u1", 2)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestAppointmentService_ListByRequester_DefaultsPage(t *testing.T) {
	svc, m := newAppointmentService(t)

	m.appointmentRepo.EXPECT().ListActive(mock.Anything, "u1", 1, 20).Return(nil, nil)

	_, err := svc.ListByRequester(context.Background(), "u1", 0)

	require.NoError(t, err)
}

func TestAppointmentService_ProviderSchedule_NotAProvider(t *testing.T) {
	svc, m := newAppointmentService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", IsProvider: false}, nil)

	_, err := svc.ProviderSchedule(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAProvider)
}

func TestAppointmentService_SendReminders_Success(t *testing.T) {
	svc, m := newAppointmentService(t)

	due := []*domain.Appointment{
		{ID: "a1", RequesterID: "u1", ProviderID: "p1"},
		{ID: "a2", RequesterID: "u2", ProviderID: "p1"},
	}
	user1 := &domain.User{ID: "u1"}
	user2 := &domain.User{ID: "u2"}

	m.appointmentRepo.EXPECT().ListDueReminders(mock.Anything, mock.Anything, mock.Anything).Return(due, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	m.appointmentRepo.EXPECT().MarkReminded(mock.Anything, "a1", mock.Anything).Return(nil)
	m.appointmentRepo.EXPECT().MarkReminded(mock.Anything, "a2", mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyReminder(mock.Anything, user1, due[0]).Return()
	m.notifier.EXPECT().NotifyReminder(mock.Anything, user2, due[1]).Return()

	reminded, err := svc.SendReminders(context.Background())

	require.NoError(t, err)
	assert.Len(t, reminded, 2)
}

func TestAppointmentService_SendReminders_RepoError(t *testing.T) {
	svc, m := newAppointmentService(t)

	m.appointmentRepo.EXPECT().ListDueReminders(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db error"))

	_, err := svc.SendReminders(context.Background())

	require.Error(t, err)
}
