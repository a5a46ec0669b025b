package repository

import (
	"time"

	"menudia/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByPhone(phone string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("phone_number = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByPhone(phone string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("phone_number = ?", phone).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

// --- verification codes ---

func (r *UserRepository) CreateVerification(v *entity.VerificationCode) error {
	return r.DB.Create(v).Error
}

// LatestActiveVerification returns the newest unconsumed, unexpired code for
// a phone number.
func (r *UserRepository) LatestActiveVerification(phone string, now time.Time) (*entity.VerificationCode, error) {
	var v entity.VerificationCode
	err := r.DB.
		Where("phone_number = ? AND consumed = ? AND expires_at > ?", phone, false, now).
		Order("created_at DESC").
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *UserRepository) ConsumeVerification(id uint) error {
	return r.DB.Model(&entity.VerificationCode{}).Where("id = ?", id).Update("consumed", true).Error
}
