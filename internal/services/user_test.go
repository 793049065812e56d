package services

import (
	"context"
	"testing"

	"github.com/orderdesk/apiserver/internal/store"
	"github.com/orderdesk/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  []*types.User
	nextID int
}

func newFakeUserRepo(users ...*types.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: users}
	for _, user := range users {
		if user.ID > repo.nextID {
			repo.nextID = user.ID
		}
	}
	return repo
}

func (f *fakeUserRepo) List(ctx context.Context) ([]types.User, error) {
	out := make([]types.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*types.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *types.User) (*types.User, error) {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *types.User) (*types.User, error) {
	for i, existing := range f.users {
		if existing.ID == user.ID {
			f.users[i] = user
			return user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) error {
	for i, user := range f.users {
		if user.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func seededUser() *types.User {
	user := &types.User{ID: 1, Name: "FirstUser", Email: "111abc@abc.com"}
	user.Orders = []types.Order{
		{ID: 1, Description: "Pizza", Status: types.StatusCreated, User: user},
	}
	return user
}

func TestUserService_GetByID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(seededUser()))

	dto, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, dto.ID)
	assert.Equal(t, "FirstUser", dto.Name)
	assert.Equal(t, "111abc@abc.com", dto.Email)
	require.Len(t, dto.Orders, 1)
	assert.Equal(t, "Pizza", dto.Orders[0].Description)
	assert.Equal(t, "FirstUser", dto.Orders[0].UserRef)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByID(context.Background(), 42)

	var notFound *UserNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user with id 42 not found", err.Error())
}

func TestUserService_GetByEmail_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(seededUser()))

	_, err := svc.GetByEmail(context.Background(), "nobody@abc.com")

	var notFound *UserNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user with email nobody@abc.com not found", err.Error())
}

func TestUserService_List(t *testing.T) {
	repo := newFakeUserRepo(seededUser(), &types.User{ID: 2, Name: "SecondUser", Email: "222abc@abc.com"})
	svc := NewUserService(repo)

	dtos, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, "FirstUser", dtos[0].Name)
	assert.Equal(t, "SecondUser", dtos[1].Name)
}

func TestUserService_List_EmptyStore(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	dtos, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, dtos)
}

func TestUserService_Create_AssignsIDOmitsOrders(t *testing.T) {
	repo := newFakeUserRepo(seededUser())
	svc := NewUserService(repo)

	dto, err := svc.Create(context.Background(), types.UserDTO{Name: "NewUser", Email: "444abc@abc.com"})

	require.NoError(t, err)
	assert.Equal(t, 2, dto.ID, "id is assigned by the store")
	assert.Equal(t, "NewUser", dto.Name)
	assert.Nil(t, dto.Orders, "creation response carries no orders")
}

func TestUserService_Update_OverwritesNameAndEmailOnly(t *testing.T) {
	repo := newFakeUserRepo(seededUser())
	svc := NewUserService(repo)

	dto, err := svc.Update(context.Background(), 1, types.UserDTO{Name: "Renamed", Email: "999abc@abc.com"})

	require.NoError(t, err)
	assert.Equal(t, 1, dto.ID)
	assert.Equal(t, "Renamed", dto.Name)
	assert.Equal(t, "999abc@abc.com", dto.Email)
	require.Len(t, dto.Orders, 1, "orders are left untouched")
	assert.Equal(t, "Pizza", dto.Orders[0].Description)
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Update(context.Background(), 7, types.UserDTO{Name: "X", Email: "x@x.com"})

	var notFound *UserNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUserService_Delete(t *testing.T) {
	repo := newFakeUserRepo(seededUser())
	svc := NewUserService(repo)

	message, err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "user with id 1 deleted successfully", message)

	_, err = svc.GetByID(context.Background(), 1)
	var notFound *UserNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Delete(context.Background(), 3)

	var notFound *UserNotFoundError
	require.ErrorAs(t, err, &notFound)
}
