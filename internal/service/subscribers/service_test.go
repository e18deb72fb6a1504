package subscribers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
	subscriberRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/subscriber"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeGroupRepo struct {
	group *domain.Group
}

func (r *fakeGroupRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Group, error) {
	if r.group == nil || r.group.ID != id || !r.group.IsActive {
		return nil, groupRepo.ErrGroupNotFound
	}
	return r.group, nil
}

// fakeSubscriberRepo повторяет upsert-семантику настоящего репозитория:
// пара (group, email) уникальна, повторная вставка обновляет запись
type fakeSubscriberRepo struct {
	subs   []*domain.Subscriber
	nextID int64
}

func (r *fakeSubscriberRepo) Upsert(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error) {
	for _, existing := range r.subs {
		if existing.GroupID == sub.GroupID && existing.Email == sub.Email {
			existing.Name = sub.Name
			existing.UnsubscribeToken = sub.UnsubscribeToken
			return existing, nil
		}
	}
	r.nextID++
	saved := *sub
	saved.ID = r.nextID
	r.subs = append(r.subs, &saved)
	return &saved, nil
}

func (r *fakeSubscriberRepo) ListByGroup(ctx context.Context, groupID int64) ([]*domain.Subscriber, error) {
	var out []*domain.Subscriber
	for _, s := range r.subs {
		if s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubscriberRepo) Delete(ctx context.Context, groupID, subscriberID int64) error {
	for i, s := range r.subs {
		if s.GroupID == groupID && s.ID == subscriberID {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return subscriberRepo.ErrSubscriberNotFound
}

func (r *fakeSubscriberRepo) DeleteByToken(ctx context.Context, token string) error {
	for i, s := range r.subs {
		if s.UnsubscribeToken == token {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return subscriberRepo.ErrSubscriberNotFound
}

func newService() (*Service, *fakeSubscriberRepo) {
	repo := &fakeSubscriberRepo{}
	groups := &fakeGroupRepo{group: &domain.Group{ID: 1, Name: "Sunday Club", IsActive: true}}
	return NewService(groups, repo, nopLogger{}), repo
}

func TestSubscribe_NormalizesEmail(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Subscribe(context.Background(), 1, &models.SubscribeRequest{Email: "  Alice@Example.COM  "})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, int64(1), resp.GroupID)
	require.Len(t, repo.subs, 1)
	assert.NotEmpty(t, repo.subs[0].UnsubscribeToken)
}

func TestSubscribe_RepeatUpdatesExisting(t *testing.T) {
	svc, repo := newService()

	first, err := svc.Subscribe(context.Background(), 1, &models.SubscribeRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	firstToken := repo.subs[0].UnsubscribeToken

	name := "Alice"
	second, err := svc.Subscribe(context.Background(), 1, &models.SubscribeRequest{Email: "ALICE@example.com", Name: &name})
	require.NoError(t, err)

	// Та же запись, обновленное имя, новый токен
	assert.Equal(t, first.ID, second.ID)
	require.Len(t, repo.subs, 1)
	require.NotNil(t, repo.subs[0].Name)
	assert.Equal(t, "Alice", *repo.subs[0].Name)
	assert.NotEqual(t, firstToken, repo.subs[0].UnsubscribeToken)
}

func TestSubscribe_Validation(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Subscribe(context.Background(), 1, &models.SubscribeRequest{Email: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Subscribe(context.Background(), 1, &models.SubscribeRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubscribe_GroupNotFoundOrArchived(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Subscribe(context.Background(), 99, &models.SubscribeRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestList_TokenNotExposed(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Subscribe(context.Background(), 1, &models.SubscribeRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Subscribers, 1)
	assert.Equal(t, "alice@example.com", resp.Subscribers[0].Email)
}

func TestDelete(t *testing.T) {
	svc, repo := newService()

	created, err := svc.Subscribe(context.Background(), 1, &models.SubscribeRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, created.ID))
	assert.Empty(t, repo.subs)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1, created.ID), ErrSubscriberNotFound)
}

func TestUnsubscribe(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Subscribe(context.Background(), 1, &models.SubscribeRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	token := repo.subs[0].UnsubscribeToken

	require.NoError(t, svc.Unsubscribe(context.Background(), token))
	assert.Empty(t, repo.subs)

	// Повторная отписка тем же токеном: подписка уже снята
	assert.ErrorIs(t, svc.Unsubscribe(context.Background(), token), ErrSubscriberNotFound)

	assert.ErrorIs(t, svc.Unsubscribe(context.Background(), ""), ErrInvalidInput)
}
