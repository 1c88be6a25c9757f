package service

import (
	"Inventario/internal/model"
	"Inventario/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Sequence name backing user IDs in the counters table.
const userIDSequence = "user_id"

var (
	ErrMissingField       = errors.New("required field is missing")
	ErrCorreoTaken        = errors.New("correo already in use")
	ErrUsuarioTaken       = errors.New("usuario already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserInput carries the form fields for create/update. On update an empty
// Password means "keep the stored hash".
type UserInput struct {
	Nombre   string
	Correo   string
	Usuario  string
	Password string
	Rol      string
}

// UserService owns user validation, uniqueness and credential hashing.
type UserService struct {
	repo repo.UserRepository
	seq  repo.SequenceAllocator
}

func NewUserService(r repo.UserRepository, seq repo.SequenceAllocator) *UserService {
	return &UserService{repo: r, seq: seq}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input, checks correo/usuario uniqueness
// (case-insensitive), mints a sequential ID and inserts. The allocated ID
// is not returned to the pool if the insert fails; gaps are accepted.
func (s *UserService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	in = trimUser(in)
	if in.Nombre == "" || in.Correo == "" || in.Usuario == "" || in.Password == "" || in.Rol == "" {
		return nil, ErrMissingField
	}
	if err := s.checkUnique(ctx, in, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.seq.Next(ctx, userIDSequence)
	if err != nil {
		return nil, fmt.Errorf("allocate user id: %w", err)
	}

	u := &model.User{
		ID:       id,
		Nombre:   in.Nombre,
		Correo:   in.Correo,
		Usuario:  in.Usuario,
		Password: string(hash),
		Rol:      in.Rol,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update overwrites the stored fields. Password is optional here: an empty
// value keeps the current hash, a non-empty one is re-hashed.
func (s *UserService) Update(ctx context.Context, id int64, in UserInput) (*model.User, error) {
	in = trimUser(in)
	if in.Nombre == "" || in.Correo == "" || in.Usuario == "" || in.Rol == "" {
		return nil, ErrMissingField
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, in, id); err != nil {
		return nil, err
	}

	u.Nombre = in.Nombre
	u.Correo = in.Correo
	u.Usuario = in.Usuario
	u.Rol = in.Rol
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = string(hash)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Authenticate checks usuario + password. Wrong user and wrong password are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, usuario, password string) (*model.User, error) {
	u, err := s.repo.GetByUsuario(ctx, usuario)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// checkUnique rejects a correo or usuario held by a different user.
// selfID 0 means "creating", so any hit is a conflict.
func (s *UserService) checkUnique(ctx context.Context, in UserInput, selfID int64) error {
	if other, err := s.repo.GetByCorreo(ctx, in.Correo); err == nil {
		if other.ID != selfID {
			return ErrCorreoTaken
		}
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	if other, err := s.repo.GetByUsuario(ctx, in.Usuario); err == nil {
		if other.ID != selfID {
			return ErrUsuarioTaken
		}
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	return nil
}

func trimUser(in UserInput) UserInput {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Correo = strings.TrimSpace(in.Correo)
	in.Usuario = strings.TrimSpace(in.Usuario)
	in.Rol = strings.TrimSpace(in.Rol)
	return in
}
