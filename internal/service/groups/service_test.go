package groups

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeGroupRepo struct {
	groups      map[int64]*domain.Group
	nextID      int64
	failInserts int // сколько первых вставок отклонить как дубликат кода
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: map[int64]*domain.Group{}}
}

func (r *fakeGroupRepo) Create(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	if r.failInserts > 0 {
		r.failInserts--
		return nil, groupRepo.ErrDuplicateAccessCode
	}
	r.nextID++
	created := *group
	created.ID = r.nextID
	r.groups[created.ID] = &created
	return &created, nil
}

func (r *fakeGroupRepo) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, groupRepo.ErrGroupNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Group, error) {
	g, ok := r.groups[id]
	if !ok || !g.IsActive {
		return nil, groupRepo.ErrGroupNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) GetActiveByAccessCode(ctx context.Context, accessCode string) (*domain.Group, error) {
	for _, g := range r.groups {
		if g.IsActive && g.AccessCode != nil && *g.AccessCode == accessCode {
			return g, nil
		}
	}
	return nil, groupRepo.ErrGroupNotFound
}

func (r *fakeGroupRepo) List(ctx context.Context) ([]*domain.Group, error) {
	out := make([]*domain.Group, 0, len(r.groups))
	for id := int64(1); id <= r.nextID; id++ {
		if g, ok := r.groups[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) ExistsByAccessCode(ctx context.Context, accessCode string) (bool, error) {
	for _, g := range r.groups {
		if g.AccessCode != nil && *g.AccessCode == accessCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeGroupRepo) SetAccessCode(ctx context.Context, id int64, accessCode string) error {
	g, ok := r.groups[id]
	if !ok {
		return groupRepo.ErrGroupNotFound
	}
	g.AccessCode = &accessCode
	return nil
}

func (r *fakeGroupRepo) Update(ctx context.Context, id int64, update domain.GroupUpdate) (*domain.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, groupRepo.ErrGroupNotFound
	}
	if update.Name != nil {
		g.Name = *update.Name
	}
	if update.Description != nil {
		g.Description = update.Description
	}
	if update.Template != nil {
		g.Template = *update.Template
	}
	if update.LogoURL != nil {
		g.LogoURL = update.LogoURL
	}
	if update.IsActive != nil {
		g.IsActive = *update.IsActive
	}
	return g, nil
}

func (r *fakeGroupRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.groups[id]; !ok {
		return groupRepo.ErrGroupNotFound
	}
	delete(r.groups, id)
	return nil
}

type fakeCascadeRepo struct {
	deletedGroups []int64
}

func (r *fakeCascadeRepo) DeleteByGroupID(ctx context.Context, groupID int64) error {
	r.deletedGroups = append(r.deletedGroups, groupID)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(repo *fakeGroupRepo) (*Service, *fakeCascadeRepo, *fakeCascadeRepo) {
	events := &fakeCascadeRepo{}
	subs := &fakeCascadeRepo{}
	return NewService(repo, events, subs, fakeTxManager{}, nopLogger{}), events, subs
}

var accessCodePattern = regexp.MustCompile(`^[a-z0-9]+$`)

func TestMakeAccessCode(t *testing.T) {
	code, err := makeAccessCode("Sunday Morning Crew!")
	require.NoError(t, err)

	// Только [a-z0-9]: пробелы и пунктуация отброшены, суффикс случайный
	assert.Regexp(t, accessCodePattern, code)
	assert.True(t, strings.HasPrefix(code, "sundaymorningcrew"))
	assert.Len(t, code, len("sundaymorningcrew")+accessCodeSuffixLen)

	other, err := makeAccessCode("Sunday Morning Crew!")
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestMakeAccessCode_NoUsableCharacters(t *testing.T) {
	// Имена без единого символа [a-z0-9] получают запасную основу
	for _, name := range []string{"", "   ", "!!!", "--- ***"} {
		code, err := makeAccessCode(name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(code, "group"), "name=%q code=%q", name, code)
		assert.Len(t, code, len("group")+accessCodeSuffixLen)
		assert.Regexp(t, accessCodePattern, code)
	}
}

func TestCreate_AssignsAccessCode(t *testing.T) {
	repo := newFakeGroupRepo()
	svc, _, _ := newService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateGroupRequest{Name: "  Sunday Club  "})
	require.NoError(t, err)

	assert.Equal(t, "Sunday Club", resp.Name)
	assert.Equal(t, string(domain.DefaultTemplate), resp.Template)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.AccessCode)
	assert.Regexp(t, accessCodePattern, *resp.AccessCode)
}

func TestCreate_RetriesOnInsertCollision(t *testing.T) {
	repo := newFakeGroupRepo()
	repo.failInserts = 2
	svc, _, _ := newService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateGroupRequest{Name: "Sunday Club"})
	require.NoError(t, err)
	require.NotNil(t, resp.AccessCode)
	assert.Regexp(t, accessCodePattern, *resp.AccessCode)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, _, _ := newService(newFakeGroupRepo())

	_, err := svc.Create(context.Background(), &models.CreateGroupRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badTemplate := "corporate"
	_, err = svc.Create(context.Background(), &models.CreateGroupRequest{Name: "Club", Template: &badTemplate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveAccessCode(t *testing.T) {
	repo := newFakeGroupRepo()
	svc, _, _ := newService(repo)

	created, err := svc.Create(context.Background(), &models.CreateGroupRequest{Name: "Sunday Club"})
	require.NoError(t, err)

	resp, err := svc.ResolveAccessCode(context.Background(), *created.AccessCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.GroupID)
	assert.Equal(t, "Sunday Club", resp.Name)

	_, err = svc.ResolveAccessCode(context.Background(), "no-such-code")
	assert.ErrorIs(t, err, ErrGroupNotFound)

	_, err = svc.ResolveAccessCode(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveAccessCode_ArchivedGroup(t *testing.T) {
	repo := newFakeGroupRepo()
	svc, _, _ := newService(repo)

	created, err := svc.Create(context.Background(), &models.CreateGroupRequest{Name: "Sunday Club"})
	require.NoError(t, err)
	archived, err := svc.Archive(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, archived.IsActive)

	_, err = svc.ResolveAccessCode(context.Background(), *created.AccessCode)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestList_BackfillsMissingAccessCodes(t *testing.T) {
	repo := newFakeGroupRepo()
	repo.nextID = 1
	repo.groups[1] = &domain.Group{ID: 1, Name: "Legacy Group", IsActive: true}
	svc, _, _ := newService(repo)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)

	require.NotNil(t, resp.Groups[0].AccessCode)
	assert.Regexp(t, accessCodePattern, *resp.Groups[0].AccessCode)
	assert.True(t, strings.HasPrefix(*resp.Groups[0].AccessCode, "legacygroup"))

	// Код сохранен в репозитории, а не только в ответе
	require.NotNil(t, repo.groups[1].AccessCode)
}

func TestGetByID_ExcludesArchived(t *testing.T) {
	repo := newFakeGroupRepo()
	svc, _, _ := newService(repo)

	created, err := svc.Create(context.Background(), &models.CreateGroupRequest{Name: "Sunday Club"})
	require.NoError(t, err)
	_, err = svc.Archive(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	// Архивная группа остается видимой в административном списке
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Groups, 1)
	assert.False(t, list.Groups[0].IsActive)
}

func TestHardDelete_CascadesInTransaction(t *testing.T) {
	repo := newFakeGroupRepo()
	svc, events, subs := newService(repo)

	created, err := svc.Create(context.Background(), &models.CreateGroupRequest{Name: "Sunday Club"})
	require.NoError(t, err)

	require.NoError(t, svc.HardDelete(context.Background(), created.ID))

	assert.Equal(t, []int64{created.ID}, events.deletedGroups)
	assert.Equal(t, []int64{created.ID}, subs.deletedGroups)
	assert.Empty(t, repo.groups)

	assert.ErrorIs(t, svc.HardDelete(context.Background(), created.ID), ErrGroupNotFound)
}

func TestUpdate(t *testing.T) {
	repo := newFakeGroupRepo()
	svc, _, _ := newService(repo)

	created, err := svc.Create(context.Background(), &models.CreateGroupRequest{Name: "Sunday Club"})
	require.NoError(t, err)

	newName := "Saturday Club"
	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateGroupRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Saturday Club", resp.Name)

	empty := " "
	_, err = svc.Update(context.Background(), created.ID, &models.UpdateGroupRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 999, &models.UpdateGroupRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
