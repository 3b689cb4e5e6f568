package services

import (
	"errors"
	"strings"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

type UserService struct {
	store  *store.Store
	tokens TokenService
}

func NewUserService(s *store.Store, tokens TokenService) *UserService {
	return &UserService{store: s, tokens: tokens}
}

type Credentials struct {
	FullName string
	Email    string
	Password string
}

// Register validates credentials, rejects duplicate emails and stores the
// bcrypt hash; the plaintext never reaches the repository. Every new account
// gets the User role; only an admin can raise it afterwards.
func (s *UserService) Register(creds Credentials, actor string) (*models.User, error) {
	fullName, err := NormalizeRequired(creds.FullName, "Full name is required")
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if !ValidEmail(email) {
		return nil, ErrBadRequest("A valid email address is required")
	}
	if !ValidPassword(creds.Password) {
		return nil, ErrBadRequest("Password must be at least 8 characters and contain a letter, a digit and one of !$%^&*?")
	}
	exists, err := s.store.Users.EmailExists(email)
	if err != nil {
		return nil, WrapError(err, "check email")
	}
	if exists {
		return nil, ErrBadRequest("Email already in use")
	}
	role, err := s.store.Roles.ByName("User")
	if err != nil {
		return nil, WrapError(err, "resolve default role")
	}
	if role == nil {
		return nil, WrapError(errors.New("role User is not seeded"), "resolve default role")
	}
	hash, err := s.tokens.HashPassword(creds.Password)
	if err != nil {
		return nil, WrapError(err, "hash password")
	}
	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
	}
	created, err := s.store.Users.Create(user, actor)
	if err != nil {
		if errIsDuplicate(err) {
			return nil, ErrBadRequest("Email already in use")
		}
		return nil, WrapError(err, "create user")
	}
	return created, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt int64
	User      *models.User
}

func (s *UserService) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrUnauthorized("Authentication failed")
	}
	user, err := s.store.Users.ByEmail(email)
	if err != nil {
		return nil, WrapError(err, "lookup user")
	}
	if user == nil || !s.tokens.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrUnauthorized("Authentication failed")
	}
	role := ""
	if user.RoleName != nil {
		role = *user.RoleName
	}
	token, exp, err := s.tokens.CreateToken(user.ID, user.FullName, user.Email, role)
	if err != nil {
		return nil, WrapError(err, "sign token")
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

func (s *UserService) All() ([]models.User, error) {
	return s.store.Users.All()
}

func (s *UserService) ByID(id int64) (*models.User, error) {
	return s.store.Users.ByID(id)
}

func (s *UserService) Update(user *models.User, actor string) (bool, error) {
	fullName, err := NormalizeRequired(user.FullName, "Full name is required")
	if err != nil {
		return false, ErrBadRequest(err.Error())
	}
	user.FullName = fullName
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if !ValidEmail(user.Email) {
		return false, ErrBadRequest("A valid email address is required")
	}
	ok, err := s.store.Users.Update(user, actor)
	if err != nil {
		if errIsDuplicate(err) {
			return false, ErrBadRequest("Email already in use")
		}
		return false, err
	}
	return ok, nil
}

func (s *UserService) ChangePassword(id int64, current, next string, actor string) error {
	if !ValidPassword(next) {
		return ErrBadRequest("Password must be at least 8 characters and contain a letter, a digit and one of !$%^&*?")
	}
	user, err := s.store.Users.ByID(id)
	if err != nil {
		return WrapError(err, "lookup user")
	}
	if user == nil {
		return ErrNotFound("User not found")
	}
	if !s.tokens.VerifyPassword(current, user.PasswordHash) {
		return ErrUnauthorized("Authentication failed")
	}
	hash, err := s.tokens.HashPassword(next)
	if err != nil {
		return WrapError(err, "hash password")
	}
	_, err = s.store.Users.UpdatePassword(id, hash, actor)
	return err
}

func (s *UserService) Delete(id int64) DeleteOutcome {
	return outcomeFromDelete(s.store.Users.Delete(id), "Cannot delete user, records still reference it")
}

func (s *UserService) Roles() ([]models.Role, error) {
	return s.store.Roles.All()
}
