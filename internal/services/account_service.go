package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain"
	"shuttle-backend/internal/domain/models"
	"shuttle-backend/internal/repositories"
	"shuttle-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration and credential checks. A new account
// and its wallet are created in one transaction so no user ever exists
// without a wallet.
type AccountService struct {
	UserRepo   repositories.UserRepository
	WalletRepo repositories.WalletRepository
	DB         *sql.DB
	RequestID  string

	// InitialBalance is credited to the wallet at registration.
	InitialBalance int64
}

func (s AccountService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AccountService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s AccountService) wallets() repositories.WalletRepository {
	if s.WalletRepo.DB != nil {
		return s.WalletRepo
	}
	return repositories.WalletRepository{DB: s.db()}
}

type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StudentID int64  `json:"student_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func (s AccountService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	var user models.User

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.FirstName == "" || in.LastName == "" {
		return user, domain.ValidationError{Field: "name", Msg: "first and last name are required"}
	}
	if in.Email == "" {
		return user, domain.ValidationError{Field: "email", Msg: "required"}
	}
	if in.StudentID <= 0 {
		return user, domain.ValidationError{Field: "student_id", Msg: "required"}
	}
	if len(in.Password) < 8 {
		return user, domain.ValidationError{Field: "password", Msg: "minimum 8 characters"}
	}

	taken, err := s.users().Exists(ctx, in.Email, in.StudentID)
	if err != nil {
		return user, domain.InternalError{Err: err}
	}
	if taken {
		return user, domain.ConflictError{Resource: "user", Msg: "email or student id already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user, domain.InternalError{Err: err}
	}

	user = models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		StudentID:    in.StudentID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Phone:        strings.TrimSpace(in.Phone),
	}

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	userID, err := s.users().Create(ctx, tx, user)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	user.ID = userID

	if _, err := s.wallets().Create(ctx, tx, userID, s.InitialBalance); err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "account", "register", fmt.Sprintf("user_id=%d student_id=%d", userID, in.StudentID))
	return user, nil
}

// Authenticate verifies credentials and returns the stored user.
func (s AccountService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, domain.ValidationError{Field: "credentials", Msg: "invalid email or password"}
		}
		return user, domain.InternalError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, domain.ValidationError{Field: "credentials", Msg: "invalid email or password"}
	}
	return user, nil
}
