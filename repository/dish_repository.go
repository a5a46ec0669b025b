package repository

import (
	"menudia/entity"

	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

// List returns dishes filtered by status and, optionally, category.
func (r *DishRepository) List(status, category string) ([]entity.Dish, error) {
	q := r.DB.Model(&entity.Dish{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var dishes []entity.Dish
	if err := q.Order("category, name").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}
