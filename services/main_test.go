package services

import (
	"testing"

	"patidestek/db"
	"patidestek/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the shared dao at a fresh in-memory sqlite database.
// MaxOpenConns(1) keeps the pool on the single connection that owns the
// in-memory schema.
func setupTestDB(t *testing.T) {
	t.Helper()

	dao, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}

	sqlDB, err := dao.DB()
	if err != nil {
		t.Fatalf("unwrapping test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(dao); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	db.Dao = dao
}

func createUser(t *testing.T, name, email, role string) *model.User {
	t.Helper()
	user := model.User{Name: name, Email: email, PasswordHash: "x", Role: role}
	if err := db.Dao.Create(&user).Error; err != nil {
		t.Fatalf("creating user %s: %v", email, err)
	}
	return &user
}

func createCategory(t *testing.T, name string) *model.Category {
	t.Helper()
	category := model.Category{Name: name}
	if err := db.Dao.Create(&category).Error; err != nil {
		t.Fatalf("creating category %s: %v", name, err)
	}
	return &category
}

func createTag(t *testing.T, name string) *model.Tag {
	t.Helper()
	tag := model.Tag{Name: name}
	if err := db.Dao.Create(&tag).Error; err != nil {
		t.Fatalf("creating tag %s: %v", name, err)
	}
	return &tag
}

func createPost(t *testing.T, ownerId int, status, title string, tags ...model.Tag) *model.Post {
	t.Helper()
	post := model.Post{
		Title:             title,
		Description:       "a description long enough to pass validation",
		Status:            status,
		ProvinceCode:      "34",
		ProvinceName:      "İstanbul",
		DistrictCode:      "3402",
		DistrictName:      "Kadıköy",
		NeighbourhoodName: "Moda",
		OwnerId:           ownerId,
		Tags:              tags,
	}
	if err := db.Dao.Create(&post).Error; err != nil {
		t.Fatalf("creating post %s: %v", title, err)
	}
	return &post
}

func createComment(t *testing.T, postId, userId int, content string) *model.Comment {
	t.Helper()
	comment := model.Comment{Content: content, PostId: postId, UserId: userId}
	if err := db.Dao.Create(&comment).Error; err != nil {
		t.Fatalf("creating comment: %v", err)
	}
	return &comment
}
