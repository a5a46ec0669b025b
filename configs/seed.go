package configs

import (
	"log"

	"menudia/entity"
	"menudia/pkg/pairing"
)

// SeedAdmin creates the staff account on first boot.
func SeedAdmin() error {
	db := DB()
	phone := getEnv("ADMIN_PHONE", "")
	if phone == "" {
		log.Println("skip seeding admin: missing ADMIN_PHONE")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("phone_number = ?", phone).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", phone)
		return nil
	}

	admin := entity.User{
		Name:        getEnv("ADMIN_NAME", "Admin"),
		PhoneNumber: phone,
		Role:        "admin",
	}
	return db.Create(&admin).Error
}

// SeedDishes loads the daily menu so a fresh database is orderable.
func SeedDishes() error {
	db := DB()

	dishes := []entity.Dish{
		{Name: "Papa a la Huancaína", Description: "Boiled potatoes in creamy huancaína sauce", Category: string(pairing.Starter), Price: 1000, ImageURL: "/img/huancaina.jpg"},
		{Name: "Causa Limeña", Description: "Layered yellow potato with chicken filling", Category: string(pairing.Starter), Price: 950, ImageURL: "/img/causa.jpg"},
		{Name: "Tequeños", Description: "Fried wonton fingers with guacamole", Category: string(pairing.Starter), Price: 900, ImageURL: "/img/tequenos.jpg"},
		{Name: "Lomo Saltado", Description: "Stir-fried beef with onions, tomato and fries", Category: string(pairing.Main), Price: 1500, ImageURL: "/img/lomo.jpg"},
		{Name: "Ají de Gallina", Description: "Shredded chicken in ají amarillo cream", Category: string(pairing.Main), Price: 1400, ImageURL: "/img/aji.jpg"},
		{Name: "Arroz con Pollo", Description: "Cilantro rice with braised chicken", Category: string(pairing.Main), Price: 1300, ImageURL: "/img/arroz.jpg"},
		{Name: "Mazamorra Morada", Description: "Purple corn pudding", Category: string(pairing.Dessert), Price: 500, ImageURL: "/img/mazamorra.jpg"},
		{Name: "Chicha Morada", Description: "Purple corn drink, half litre", Category: string(pairing.Other), Price: 400, ImageURL: "/img/chicha.jpg"},
	}
	for _, d := range dishes {
		if err := db.Where(entity.Dish{Name: d.Name}).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}
	return nil
}
