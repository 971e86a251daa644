package services

import (
	"math"
	"strconv"
	"strings"

	"patidestek/db"
	"patidestek/inout"
	"patidestek/model"
	"patidestek/pkg/apperr"
	"patidestek/pkg/monitoring"

	"gorm.io/gorm"
)

const defaultPageSize = 12

type PostService struct{}

// parseTagIds turns the comma-separated tagIds query value into a distinct
// id list. Malformed entries are skipped.
func parseTagIds(raw string) []int {
	if raw == "" {
		return nil
	}
	seen := make(map[int]struct{})
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// FindPublic runs the filtered, paginated public search. Only APPROVED posts
// are eligible; ordering is fixed at newest first.
//
// Tag filtering goes through subqueries on the join table so each matching
// post appears exactly once however many requested tags it carries: ANY is a
// plain membership test, ALL requires the post to cover every distinct
// requested id.
func (s *PostService) FindPublic(q inout.PostListQuery) (*inout.PostPage, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	query := db.Dao.Model(&model.Post{}).Where("status = ?", model.PostStatusApproved)

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if q.CategoryId > 0 {
		query = query.Where("category_id = ?", q.CategoryId)
	}
	if ids := parseTagIds(q.TagIds); len(ids) > 0 {
		sub := db.Dao.Table("post_tags").Select("post_id").Where("tag_id IN ?", ids)
		if strings.EqualFold(q.TagLogic, inout.TagLogicAll) {
			sub = sub.Group("post_id").Having("COUNT(DISTINCT tag_id) = ?", len(ids))
		}
		query = query.Where("id IN (?)", sub)
	}
	if q.ProvinceCode != "" {
		query = query.Where("province_code = ?", q.ProvinceCode)
	}
	if q.DistrictCode != "" {
		query = query.Where("district_code = ?", q.DistrictCode)
	}
	if q.NeighbourhoodName != "" {
		query = query.Where("neighbourhood_name = ?", q.NeighbourhoodName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []model.Post
	err := query.
		Preload("Owner").Preload("Category").Preload("Tags").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &inout.PostPage{
		Posts:      inout.NewPostItems(posts, false),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// FindPublicById applies the same approved-only visibility rule as the list.
func (s *PostService) FindPublicById(id int) (*inout.PostItem, error) {
	var post model.Post
	err := db.Dao.
		Preload("Owner").Preload("Category").Preload("Tags").
		Where("id = ? AND status = ?", id, model.PostStatusApproved).
		First(&post).Error
	if err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("post not found or not approved")
		}
		return nil, err
	}
	item := inout.NewPostItem(&post, false)
	return &item, nil
}

// FindMine returns all of the owner's posts regardless of status, including
// moderation fields such as the rejection reason.
func (s *PostService) FindMine(ownerId int) ([]inout.PostItem, error) {
	var posts []model.Post
	err := db.Dao.
		Preload("Category").Preload("Tags").
		Where("owner_id = ?", ownerId).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return inout.NewPostItems(posts, true), nil
}

func (s *PostService) FindMineById(id, ownerId int) (*inout.PostItem, error) {
	var post model.Post
	err := db.Dao.
		Preload("Category").Preload("Tags").
		Where("id = ? AND owner_id = ?", id, ownerId).
		First(&post).Error
	if err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}
	item := inout.NewPostItem(&post, true)
	return &item, nil
}

// Create stores a new listing in PENDING state whatever the caller sent.
// Unknown tag ids are dropped silently; whatever subset exists is attached.
func (s *PostService) Create(req inout.CreatePostReq, ownerId int) (*inout.PostItem, error) {
	if req.CategoryId != nil {
		var count int64
		if err := db.Dao.Model(&model.Category{}).Where("id = ?", *req.CategoryId).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, apperr.Validation("unknown category id %d", *req.CategoryId)
		}
	}

	post := model.Post{
		Title:             req.Title,
		Description:       req.Description,
		Status:            model.PostStatusPending,
		ImageUrl:          req.ImageUrl,
		ProvinceCode:      req.ProvinceCode,
		ProvinceName:      req.ProvinceName,
		DistrictCode:      req.DistrictCode,
		DistrictName:      req.DistrictName,
		NeighbourhoodName: req.NeighbourhoodName,
		OwnerId:           ownerId,
		CategoryId:        req.CategoryId,
	}

	if len(req.TagIds) > 0 {
		var tags []model.Tag
		if err := db.Dao.Where("id IN ?", req.TagIds).Find(&tags).Error; err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	if err := db.Dao.Create(&post).Error; err != nil {
		return nil, err
	}

	monitoring.RecordPostCreated()
	return s.findWithRelations(post.Id, true)
}

// Update applies a partial patch. Only the owner or an admin may edit, and
// the patch never touches status.
func (s *PostService) Update(id int, req inout.UpdatePostReq, actorId int) (*inout.PostItem, error) {
	post, err := s.loadForActor(id, actorId, "you can only edit your own posts")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.CategoryId != nil {
		if *req.CategoryId == 0 {
			post.CategoryId = nil
		} else {
			var count int64
			if err := db.Dao.Model(&model.Category{}).Where("id = ?", *req.CategoryId).Count(&count).Error; err != nil {
				return nil, err
			}
			if count == 0 {
				return nil, apperr.Validation("unknown category id %d", *req.CategoryId)
			}
			post.CategoryId = req.CategoryId
		}
	}
	if req.ImageUrl != nil {
		post.ImageUrl = *req.ImageUrl
	}
	if req.ProvinceCode != nil {
		post.ProvinceCode = *req.ProvinceCode
	}
	if req.ProvinceName != nil {
		post.ProvinceName = *req.ProvinceName
	}
	if req.DistrictCode != nil {
		post.DistrictCode = *req.DistrictCode
	}
	if req.DistrictName != nil {
		post.DistrictName = *req.DistrictName
	}
	if req.NeighbourhoodName != nil {
		post.NeighbourhoodName = *req.NeighbourhoodName
	}

	if err := db.Dao.Save(post).Error; err != nil {
		return nil, err
	}
	return s.findWithRelations(post.Id, true)
}

// UpdateTags replaces the post's full tag set; an empty list clears it.
// Unknown ids are dropped like at creation.
func (s *PostService) UpdateTags(id int, tagIds []int, actorId int) (*inout.PostItem, error) {
	post, err := s.loadForActor(id, actorId, "you can only edit your own posts")
	if err != nil {
		return nil, err
	}

	var tags []model.Tag
	if len(tagIds) > 0 {
		if err := db.Dao.Where("id IN ?", tagIds).Find(&tags).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Dao.Model(post).Association("Tags").Replace(tags); err != nil {
		return nil, err
	}
	return s.findWithRelations(post.Id, true)
}

// Delete hard-deletes a post together with its comments, their reports and
// the tag associations. FK constraints are disabled, so the cascade lives
// here.
func (s *PostService) Delete(id, actorId int) error {
	post, err := s.loadForActor(id, actorId, "you can only delete your own posts")
	if err != nil {
		return err
	}

	return db.Dao.Transaction(func(tx *gorm.DB) error {
		var commentIds []int
		if err := tx.Model(&model.Comment{}).Where("post_id = ?", post.Id).Pluck("id", &commentIds).Error; err != nil {
			return err
		}
		if len(commentIds) > 0 {
			if err := tx.Where("comment_id IN ?", commentIds).Delete(&model.CommentReport{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", post.Id).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", post.Id).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

// FindPending returns the FIFO moderation queue: pending posts oldest first.
func (s *PostService) FindPending() ([]inout.PostItem, error) {
	var posts []model.Post
	err := db.Dao.
		Preload("Owner").Preload("Category").Preload("Tags").
		Where("status = ?", model.PostStatusPending).
		Order("created_at ASC, id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return inout.NewPostItems(posts, true), nil
}

// Approve transitions a post to APPROVED, making it publicly visible.
func (s *PostService) Approve(id int) (*inout.PostItem, error) {
	var post model.Post
	if err := db.Dao.First(&post, id).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}

	post.Status = model.PostStatusApproved
	post.RejectionReason = ""
	if err := db.Dao.Save(&post).Error; err != nil {
		return nil, err
	}

	monitoring.RecordPostModerated("approve")
	return s.findWithRelations(post.Id, true)
}

// Reject transitions a post to REJECTED and stores the moderator's reason,
// which the owner sees on the /my views.
func (s *PostService) Reject(id int, reason string) (*inout.PostItem, error) {
	var post model.Post
	if err := db.Dao.First(&post, id).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}

	post.Status = model.PostStatusRejected
	post.RejectionReason = reason
	if err := db.Dao.Save(&post).Error; err != nil {
		return nil, err
	}

	monitoring.RecordPostModerated("reject")
	return s.findWithRelations(post.Id, true)
}

// Resolve marks an approved listing as RESOLVED (the animal is home). Owner
// or admin only; resolved posts leave the public surface.
func (s *PostService) Resolve(id, actorId int) (*inout.PostItem, error) {
	post, err := s.loadForActor(id, actorId, "you can only resolve your own posts")
	if err != nil {
		return nil, err
	}
	if post.Status != model.PostStatusApproved {
		return nil, apperr.Validation("only approved posts can be marked resolved")
	}

	post.Status = model.PostStatusResolved
	if err := db.Dao.Save(post).Error; err != nil {
		return nil, err
	}

	monitoring.RecordPostModerated("resolve")
	return s.findWithRelations(post.Id, true)
}

// loadForActor fetches a post and enforces the owner-or-admin rule,
// answering NotFound for a missing post and Forbidden for everyone else.
func (s *PostService) loadForActor(id, actorId int, denial string) (*model.Post, error) {
	var post model.Post
	if err := db.Dao.First(&post, id).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}

	if post.OwnerId != actorId {
		var actor model.User
		if err := db.Dao.First(&actor, actorId).Error; err != nil {
			if isNotFoundErr(err) {
				return nil, apperr.Forbidden("%s", denial)
			}
			return nil, err
		}
		if !actor.IsAdmin() {
			return nil, apperr.Forbidden("%s", denial)
		}
	}
	return &post, nil
}

func (s *PostService) findWithRelations(id int, withModeration bool) (*inout.PostItem, error) {
	var post model.Post
	err := db.Dao.
		Preload("Owner").Preload("Category").Preload("Tags").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	item := inout.NewPostItem(&post, withModeration)
	return &item, nil
}
