package services

import (
	"errors"

	"menudia/entity"
	"menudia/pkg/pairing"
	"menudia/repository"
)

type DishService struct {
	Repo *repository.DishRepository
}

func NewDishService(r *repository.DishRepository) *DishService { return &DishService{Repo: r} }

// ListActive lists the orderable dishes of the day, optionally one category.
func (s *DishService) ListActive(category string) ([]entity.Dish, error) {
	if category != "" {
		if _, err := pairing.ParseCategory(category); err != nil {
			return nil, err
		}
	}
	return s.Repo.List(entity.DishActive, category)
}

func (s *DishService) Get(id uint) (*entity.Dish, error) {
	return s.Repo.FindByID(id)
}

type CreateDishIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
}

// Create adds a dish to the daily menu (staff only).
func (s *DishService) Create(in *CreateDishIn) (*entity.Dish, error) {
	cat, err := pairing.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	d := &entity.Dish{
		Name:        in.Name,
		Description: in.Description,
		Category:    string(cat),
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Status:      entity.DishActive,
	}
	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}
