package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"stockmarket_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// FindByUsernameFunc is called when the FindByUsername method is invoked.
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// mockTokenGenerator is a mock implementation of the TokenGenerator interface.
type mockTokenGenerator struct {
	// GenerateTokenFunc is called when the GenerateToken method is invoked.
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockTokenGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default: no such user
	return nil, ErrUserNotFound
}

// FindByUsername is the mock implementation of the FindByUsername method.
func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	// Default: no such user
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default: no such user
	return nil, ErrUserNotFound
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		var created *entity.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		err := uc.Register(ctx, "test@example.com", "tester", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("Create was not called")
		}
		if created.Email != "test@example.com" || created.Username != "tester" {
			t.Errorf("unexpected user fields: %+v", created)
		}
		if created.IsAdmin {
			t.Error("new users must not be admins")
		}
		// Verify that the password is hashed with the expected cost
		if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
		if cost, _ := bcrypt.Cost([]byte(created.Password)); cost != passwordHashCost {
			t.Errorf("expected hash cost %d, got %d", passwordHashCost, cost)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Create should not be called for a duplicate email")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		err := uc.Register(ctx, "existing@example.com", "newname", "password123")

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got: %v", err)
		}
	})

	t.Run("duplicate username with different email", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{ID: 1, Username: username}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Create should not be called for a duplicate username")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		err := uc.Register(ctx, "fresh@example.com", "taken", "password123")

		if !errors.Is(err, ErrUsernameAlreadyExists) {
			t.Errorf("expected ErrUsernameAlreadyExists, got: %v", err)
		}
	})

	t.Run("short password rejected before any storage access", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				t.Error("FindByEmail should not be called for a short password")
				return nil, ErrUserNotFound
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Create should not be called for a short password")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		err := uc.Register(ctx, "test@example.com", "tester", "short")

		if err == nil {
			t.Error("expected error for a password shorter than 6 characters")
		}
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return expectedErr
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		err := uc.Register(ctx, "test@example.com", "tester", "password123")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	// Hashed password for testing
	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Email:    "test@example.com",
		Username: "tester",
		Password: string(hashedPassword),
	}

	findTestUser := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := &mockUserRepository{FindByEmailFunc: findTestUser}
		mockJWT := &mockTokenGenerator{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				if userID != testUser.ID || email != testUser.Email {
					t.Errorf("unexpected userID or email: got userID=%d, email=%s", userID, email)
				}
				return "mock-jwt-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		token, user, err := uc.Login(ctx, "test@example.com", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "mock-jwt-token" {
			t.Errorf("expected token 'mock-jwt-token', got: '%s'", token)
		}
		if user == nil || user.Username != "tester" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		mockRepo := &mockUserRepository{FindByEmailFunc: findTestUser}
		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})

		_, _, wrongPassErr := uc.Login(ctx, "test@example.com", "wrongpassword")
		_, _, unknownEmailErr := uc.Login(ctx, "nobody@example.com", "password123")

		if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for wrong password, got: %v", wrongPassErr)
		}
		if !errors.Is(unknownEmailErr, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for unknown email, got: %v", unknownEmailErr)
		}
		// Both failures must carry the exact same message (no user enumeration)
		if wrongPassErr.Error() != unknownEmailErr.Error() {
			t.Errorf("login failures leak information: %q vs %q", wrongPassErr, unknownEmailErr)
		}
	})

	t.Run("token generation failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{FindByEmailFunc: findTestUser}
		mockJWT := &mockTokenGenerator{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				return "", errors.New("signing error")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		token, _, err := uc.Login(ctx, "test@example.com", "password123")

		if err == nil {
			t.Error("expected error when token generation fails")
		}
		if errors.Is(err, ErrInvalidCredentials) {
			t.Error("token generation failure must not look like bad credentials")
		}
		if token != "" {
			t.Errorf("expected empty token, got: '%s'", token)
		}
	})
}

func TestAuthUsecase_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored user", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				if id != 7 {
					t.Errorf("unexpected id: %d", id)
				}
				return &entity.User{ID: 7, Email: "me@example.com", Username: "me"}, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		user, err := uc.Profile(ctx, 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "me" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenGenerator{})

		_, err := uc.Profile(ctx, 999)

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}
