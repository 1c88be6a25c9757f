package service

import (
	"Inventario/internal/model"
	"Inventario/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByCorreo(ctx context.Context, correo string) (*model.User, error) {
	args := m.Called(ctx, correo)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsuario(ctx context.Context, usuario string) (*model.User, error) {
	args := m.Called(ctx, usuario)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockSequence struct{ mock.Mock }

func (m *mockSequence) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.SequenceAllocator = (*mockSequence)(nil)

func validInput() UserInput {
	return UserInput{Nombre: "Juan", Correo: "juan@example.com", Usuario: "juan", Password: "s3creto", Rol: "admin"}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	seq := new(mockSequence)
	svc := NewUserService(m, seq)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		seq.ExpectedCalls = nil
		m.On("GetByCorreo", mock.Anything, "juan@example.com").Return((*model.User)(nil), repo.ErrNotFound).Once()
		m.On("GetByUsuario", mock.Anything, "juan").Return((*model.User)(nil), repo.ErrNotFound).Once()
		seq.On("Next", mock.Anything, "user_id").Return(int64(5), nil).Once()
		m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// the stored password must be a hash of the input, never the input
			return u.ID == 5 && u.Password != "s3creto" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3creto")) == nil
		})).Return(nil).Once()

		u, err := svc.Create(ctx, validInput())
		assert.NoError(t, err)
		assert.Equal(t, int64(5), u.ID)
		m.AssertExpectations(t)
		seq.AssertExpectations(t)
	})

	t.Run("missing field", func(t *testing.T) {
		m.ExpectedCalls = nil
		in := validInput()
		in.Rol = "  "
		u, err := svc.Create(ctx, in)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("correo taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByCorreo", mock.Anything, "juan@example.com").Return(&model.User{ID: 1}, nil).Once()

		u, err := svc.Create(ctx, validInput())
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrCorreoTaken)
		m.AssertExpectations(t)
	})

	t.Run("usuario taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByCorreo", mock.Anything, "juan@example.com").Return((*model.User)(nil), repo.ErrNotFound).Once()
		m.On("GetByUsuario", mock.Anything, "juan").Return(&model.User{ID: 2}, nil).Once()

		u, err := svc.Create(ctx, validInput())
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrUsuarioTaken)
		m.AssertExpectations(t)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	seq := new(mockSequence)
	svc := NewUserService(m, seq)

	stored := func() *model.User {
		return &model.User{ID: 5, Nombre: "Juan", Correo: "juan@example.com", Usuario: "juan", Password: "oldhash", Rol: "user"}
	}

	t.Run("empty password keeps stored hash", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(5)).Return(stored(), nil).Once()
		m.On("GetByCorreo", mock.Anything, "juan@example.com").Return(stored(), nil).Once()
		m.On("GetByUsuario", mock.Anything, "juan").Return(stored(), nil).Once()
		m.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Password == "oldhash" && u.Rol == "admin"
		})).Return(nil).Once()

		in := validInput()
		in.Password = ""
		in.Rol = "admin"
		u, err := svc.Update(ctx, 5, in)
		assert.NoError(t, err)
		assert.Equal(t, "oldhash", u.Password)
		m.AssertExpectations(t)
	})

	t.Run("new password is rehashed", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(5)).Return(stored(), nil).Once()
		m.On("GetByCorreo", mock.Anything, "juan@example.com").Return(stored(), nil).Once()
		m.On("GetByUsuario", mock.Anything, "juan").Return(stored(), nil).Once()
		m.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("nueva")) == nil
		})).Return(nil).Once()

		in := validInput()
		in.Password = "nueva"
		_, err := svc.Update(ctx, 5, in)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("correo held by another user", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(5)).Return(stored(), nil).Once()
		m.On("GetByCorreo", mock.Anything, "juan@example.com").Return(&model.User{ID: 9}, nil).Once()

		_, err := svc.Update(ctx, 5, validInput())
		assert.ErrorIs(t, err, ErrCorreoTaken)
		m.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(99)).Return((*model.User)(nil), repo.ErrNotFound).Once()

		_, err := svc.Update(ctx, 99, validInput())
		assert.ErrorIs(t, err, repo.ErrNotFound)
		m.AssertExpectations(t)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	seq := new(mockSequence)
	svc := NewUserService(m, seq)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.DefaultCost)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByUsuario", mock.Anything, "alice").Return(&model.User{ID: 2, Usuario: "alice", Password: string(hash)}, nil).Once()

		u, err := svc.Authenticate(ctx, "alice", "secreto")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByUsuario", mock.Anything, "alice").Return(&model.User{ID: 2, Usuario: "alice", Password: string(hash)}, nil).Once()

		u, err := svc.Authenticate(ctx, "alice", "mal")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByUsuario", mock.Anything, "nadie").Return((*model.User)(nil), repo.ErrNotFound).Once()

		u, err := svc.Authenticate(ctx, "nadie", "x")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
