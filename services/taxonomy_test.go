package services

import (
	"errors"
	"testing"

	"patidestek/db"
	"patidestek/model"
	"patidestek/pkg/apperr"
)

func TestCategoryNameConflicts(t *testing.T) {
	setupTestDB(t)
	svc := &CategoryService{}

	lost, err := svc.Create("Kayıp")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create("Kayıp"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected conflict on duplicate name, got %v", err)
	}

	found, err := svc.Create("Bulundu")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	// renaming onto another record's name conflicts
	if _, err := svc.Update(found.Id, "Kayıp"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected conflict renaming onto existing name, got %v", err)
	}

	// renaming to its own unchanged name succeeds
	if _, err := svc.Update(lost.Id, "Kayıp"); err != nil {
		t.Errorf("self-rename should succeed, got %v", err)
	}

	if _, err := svc.Update(9999, "Sahiplendirme"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not found for unknown id, got %v", err)
	}
}

func TestCategoryDeleteDetachesPosts(t *testing.T) {
	setupTestDB(t)
	svc := &CategoryService{}

	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)
	category := createCategory(t, "Kayıp")
	post := createPost(t, owner.Id, model.PostStatusApproved, "Kayıp kedi Boncuk")
	if err := db.Dao.Model(post).Update("category_id", category.Id).Error; err != nil {
		t.Fatalf("attaching category: %v", err)
	}

	if err := svc.Delete(category.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var reloaded model.Post
	if err := db.Dao.First(&reloaded, post.Id).Error; err != nil {
		t.Fatalf("post should survive category deletion: %v", err)
	}
	if reloaded.CategoryId != nil {
		t.Errorf("expected category to be unset, got %v", *reloaded.CategoryId)
	}

	if err := svc.Delete(category.Id); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not found deleting twice, got %v", err)
	}
}

func TestTagDeleteRemovesAssociations(t *testing.T) {
	setupTestDB(t)
	svc := &TagService{}

	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)
	kedi := createTag(t, "kedi")
	yavru := createTag(t, "yavru")
	post := createPost(t, owner.Id, model.PostStatusApproved, "Yavru kedi bulundu", *kedi, *yavru)

	if err := svc.Delete(kedi.Id); err != nil {
		t.Fatalf("delete tag: %v", err)
	}

	var remaining []model.Tag
	if err := db.Dao.Model(&model.Post{Id: post.Id}).Association("Tags").Find(&remaining); err != nil {
		t.Fatalf("loading remaining tags: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Name != "yavru" {
		t.Errorf("expected only 'yavru' to remain, got %v", remaining)
	}
}

func TestTagNameConflicts(t *testing.T) {
	setupTestDB(t)
	svc := &TagService{}

	if _, err := svc.Create("kedi"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create("kedi"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected conflict on duplicate name, got %v", err)
	}
	if err := svc.Delete(9999); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not found for unknown id, got %v", err)
	}
}
