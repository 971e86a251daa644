package services

import (
	"patidestek/db"
	"patidestek/inout"
	"patidestek/model"
	"patidestek/pkg/apperr"
	"patidestek/pkg/monitoring"

	"gorm.io/gorm"
)

type CommentService struct{}

// approvedPostExists gates every comment operation on an APPROVED parent:
// a pending or rejected post is indistinguishable from a missing one.
func approvedPostExists(postId int) error {
	var count int64
	err := db.Dao.Model(&model.Post{}).
		Where("id = ? AND status = ?", postId, model.PostStatusApproved).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("post not found or not approved")
	}
	return nil
}

// FindByPost lists a post's comments oldest first with their authors.
func (s *CommentService) FindByPost(postId int) ([]inout.CommentItem, error) {
	if err := approvedPostExists(postId); err != nil {
		return nil, err
	}

	var comments []model.Comment
	err := db.Dao.
		Preload("User").
		Where("post_id = ?", postId).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	items := make([]inout.CommentItem, len(comments))
	for i := range comments {
		items[i] = inout.NewCommentItem(&comments[i])
	}
	return items, nil
}

// Create stores a comment on an approved post and returns it joined with
// its author.
func (s *CommentService) Create(postId int, req inout.CreateCommentReq, userId int) (*inout.CommentItem, error) {
	if err := approvedPostExists(postId); err != nil {
		return nil, err
	}

	comment := model.Comment{
		Content: req.Content,
		PostId:  postId,
		UserId:  userId,
	}
	if err := db.Dao.Create(&comment).Error; err != nil {
		return nil, err
	}

	if err := db.Dao.Preload("User").First(&comment, comment.Id).Error; err != nil {
		return nil, err
	}

	monitoring.RecordCommentCreated()
	item := inout.NewCommentItem(&comment)
	return &item, nil
}

// Delete removes a comment; only its author or an admin may do so. Reports
// filed against the comment go with it.
func (s *CommentService) Delete(id, actorId int) error {
	var comment model.Comment
	if err := db.Dao.First(&comment, id).Error; err != nil {
		if isNotFoundErr(err) {
			return apperr.NotFound("comment not found")
		}
		return err
	}

	if comment.UserId != actorId {
		var actor model.User
		if err := db.Dao.First(&actor, actorId).Error; err != nil {
			if isNotFoundErr(err) {
				return apperr.Forbidden("you can only delete your own comments")
			}
			return err
		}
		if !actor.IsAdmin() {
			return apperr.Forbidden("you can only delete your own comments")
		}
	}

	return db.Dao.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", comment.Id).Delete(&model.CommentReport{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
}
