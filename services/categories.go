package services

import (
	"patidestek/db"
	"patidestek/model"
	"patidestek/pkg/apperr"

	"gorm.io/gorm"
)

type CategoryService struct{}

func (s *CategoryService) List() ([]model.Category, error) {
	var categories []model.Category
	if err := db.Dao.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Create(name string) (*model.Category, error) {
	var count int64
	if err := db.Dao.Model(&model.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("category with this name already exists")
	}

	category := model.Category{Name: name}
	if err := db.Dao.Create(&category).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, apperr.Conflict("category with this name already exists")
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(id int, name string) (*model.Category, error) {
	var category model.Category
	if err := db.Dao.First(&category, id).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}

	var existing model.Category
	err := db.Dao.Where("name = ?", name).First(&existing).Error
	if err == nil && existing.Id != id {
		return nil, apperr.Conflict("category with this name already exists")
	}
	if err != nil && !isNotFoundErr(err) {
		return nil, err
	}

	category.Name = name
	if err := db.Dao.Save(&category).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, apperr.Conflict("category with this name already exists")
		}
		return nil, err
	}
	return &category, nil
}

// Delete removes the category and detaches it from posts: referencing posts
// survive with a null category.
func (s *CategoryService) Delete(id int) error {
	var category model.Category
	if err := db.Dao.First(&category, id).Error; err != nil {
		if isNotFoundErr(err) {
			return apperr.NotFound("category not found")
		}
		return err
	}

	return db.Dao.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
