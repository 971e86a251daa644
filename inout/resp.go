package inout

import (
	"time"

	"patidestek/model"
)

// UserView is the public representation of an account; the password hash
// never leaves the model layer.
type UserView struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsBanned  bool      `json:"isBanned"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResp struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// PostAuthor is the reduced owner view embedded in listings and comments.
type PostAuthor struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type PostItem struct {
	Id                int             `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Status            string          `json:"status"`
	RejectionReason   string          `json:"rejectionReason,omitempty"`
	ImageUrl          string          `json:"imageUrl"`
	ProvinceCode      string          `json:"provinceCode"`
	ProvinceName      string          `json:"provinceName"`
	DistrictCode      string          `json:"districtCode"`
	DistrictName      string          `json:"districtName"`
	NeighbourhoodName string          `json:"neighbourhoodName"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	Owner             *PostAuthor     `json:"owner,omitempty"`
	Category          *model.Category `json:"category"`
	Tags              []model.Tag     `json:"tags"`
}

type PostPage struct {
	Posts      []PostItem `json:"posts"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

type CommentItem struct {
	Id        int         `json:"id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	PostId    int         `json:"postId"`
	User      *PostAuthor `json:"user,omitempty"`
}

type ReportItem struct {
	Id        int          `json:"id"`
	Reason    string       `json:"reason"`
	Details   string       `json:"details,omitempty"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	Comment   *CommentItem `json:"comment,omitempty"`
	Reporter  *PostAuthor  `json:"reporter,omitempty"`
}

func NewUserView(u *model.User) UserView {
	return UserView{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
}

func newAuthor(u *model.User) *PostAuthor {
	if u == nil {
		return nil
	}
	return &PostAuthor{Id: u.Id, Name: u.Name}
}

// NewPostItem maps a post to its public shape. Moderation-only fields
// (rejection reason) are included only for owner/admin views.
func NewPostItem(p *model.Post, withModeration bool) PostItem {
	item := PostItem{
		Id:                p.Id,
		Title:             p.Title,
		Description:       p.Description,
		Status:            p.Status,
		ImageUrl:          p.ImageUrl,
		ProvinceCode:      p.ProvinceCode,
		ProvinceName:      p.ProvinceName,
		DistrictCode:      p.DistrictCode,
		DistrictName:      p.DistrictName,
		NeighbourhoodName: p.NeighbourhoodName,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		Owner:             newAuthor(p.Owner),
		Category:          p.Category,
		Tags:              p.Tags,
	}
	if item.Tags == nil {
		item.Tags = []model.Tag{}
	}
	if withModeration {
		item.RejectionReason = p.RejectionReason
	}
	return item
}

func NewPostItems(posts []model.Post, withModeration bool) []PostItem {
	items := make([]PostItem, len(posts))
	for i := range posts {
		items[i] = NewPostItem(&posts[i], withModeration)
	}
	return items
}

func NewCommentItem(cm *model.Comment) CommentItem {
	return CommentItem{
		Id:        cm.Id,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
		PostId:    cm.PostId,
		User:      newAuthor(cm.User),
	}
}

func NewReportItem(r *model.CommentReport) ReportItem {
	item := ReportItem{
		Id:        r.Id,
		Reason:    r.Reason,
		Details:   r.Details,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		Reporter:  newAuthor(r.Reporter),
	}
	if r.Comment != nil {
		comment := NewCommentItem(r.Comment)
		item.Comment = &comment
	}
	return item
}
