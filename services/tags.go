package services

import (
	"patidestek/db"
	"patidestek/model"
	"patidestek/pkg/apperr"

	"gorm.io/gorm"
)

type TagService struct{}

func (s *TagService) List() ([]model.Tag, error) {
	var tags []model.Tag
	if err := db.Dao.Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) Create(name string) (*model.Tag, error) {
	var count int64
	if err := db.Dao.Model(&model.Tag{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("tag with this name already exists")
	}

	tag := model.Tag{Name: name}
	if err := db.Dao.Create(&tag).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, apperr.Conflict("tag with this name already exists")
		}
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) Update(id int, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := db.Dao.First(&tag, id).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("tag not found")
		}
		return nil, err
	}

	var existing model.Tag
	err := db.Dao.Where("name = ?", name).First(&existing).Error
	if err == nil && existing.Id != id {
		return nil, apperr.Conflict("tag with this name already exists")
	}
	if err != nil && !isNotFoundErr(err) {
		return nil, err
	}

	tag.Name = name
	if err := db.Dao.Save(&tag).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, apperr.Conflict("tag with this name already exists")
		}
		return nil, err
	}
	return &tag, nil
}

// Delete removes the tag and its rows in the post_tags join table; posts
// keep their remaining tags.
func (s *TagService) Delete(id int) error {
	var tag model.Tag
	if err := db.Dao.First(&tag, id).Error; err != nil {
		if isNotFoundErr(err) {
			return apperr.NotFound("tag not found")
		}
		return err
	}

	return db.Dao.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}
