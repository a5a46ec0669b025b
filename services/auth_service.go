package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"menudia/entity"
	"menudia/repository"
	"menudia/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService runs the phone-based registration/login flow: register issues
// a short-lived verification code, verify-registration redeems it and
// creates the user, login only needs a registered phone number.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

const verificationTTL = 10 * time.Minute

// Register starts registration for a new phone number and returns the
// plaintext code for delivery. Only its bcrypt hash is stored.
func (s *AuthService) Register(name, phone string) (string, error) {
	name = strings.TrimSpace(name)
	phone = normalizePhone(phone)
	if name == "" || phone == "" {
		return "", errors.New("name and phone number are required")
	}

	count, err := s.userRepo.CountByPhone(phone)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", errors.New("phone number already registered")
	}

	code, err := newVerificationCode()
	if err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("hash code failed")
	}

	v := &entity.VerificationCode{
		PhoneNumber: phone,
		Name:        name,
		CodeHash:    string(hashed),
		ExpiresAt:   time.Now().Add(verificationTTL),
	}
	if err := s.userRepo.CreateVerification(v); err != nil {
		return "", err
	}
	return code, nil
}

// VerifyRegistration redeems the code, creates the user and signs them in.
func (s *AuthService) VerifyRegistration(name, phone, code string) (string, *entity.User, error) {
	phone = normalizePhone(phone)

	v, err := s.userRepo.LatestActiveVerification(phone, time.Now())
	if err != nil {
		return "", nil, errors.New("invalid or expired code")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(v.CodeHash), []byte(code)); err != nil {
		return "", nil, errors.New("invalid or expired code")
	}
	if err := s.userRepo.ConsumeVerification(v.ID); err != nil {
		return "", nil, err
	}

	if name = strings.TrimSpace(name); name == "" {
		name = v.Name
	}
	user := &entity.User{
		Name:        name,
		PhoneNumber: phone,
		Role:        "customer",
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// Login signs in a registered phone number and issues a JWT. There is no
// password; possession of the phone is the credential.
func (s *AuthService) Login(phone string) (string, *entity.User, error) {
	phone = normalizePhone(phone)
	user, err := s.userRepo.FindByPhone(phone)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func normalizePhone(phone string) string {
	return strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
}

func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
