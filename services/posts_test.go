package services

import (
	"errors"
	"fmt"
	"testing"

	"patidestek/db"
	"patidestek/inout"
	"patidestek/model"
	"patidestek/pkg/apperr"
)

func TestPublicSearchOnlyApproved(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)

	approved := createPost(t, owner.Id, model.PostStatusApproved, "Approved listing")
	createPost(t, owner.Id, model.PostStatusPending, "Pending listing")
	createPost(t, owner.Id, model.PostStatusRejected, "Rejected listing")
	createPost(t, owner.Id, model.PostStatusResolved, "Resolved listing")

	page, err := svc.FindPublic(inout.PostListQuery{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 1 || len(page.Posts) != 1 {
		t.Fatalf("expected exactly one visible post, got total=%d len=%d", page.Total, len(page.Posts))
	}
	if page.Posts[0].Id != approved.Id {
		t.Errorf("wrong post visible: %d", page.Posts[0].Id)
	}

	// the by-id endpoint applies the same rule
	for _, p := range []struct {
		title  string
		status string
	}{
		{"Pending listing", model.PostStatusPending},
		{"Rejected listing", model.PostStatusRejected},
		{"Resolved listing", model.PostStatusResolved},
	} {
		var post model.Post
		if err := db.Dao.Where("title = ?", p.title).First(&post).Error; err != nil {
			t.Fatalf("loading %s: %v", p.title, err)
		}
		if _, err := svc.FindPublicById(post.Id); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("%s post should be hidden, got %v", p.status, err)
		}
	}
	if _, err := svc.FindPublicById(approved.Id); err != nil {
		t.Errorf("approved post should be visible, got %v", err)
	}
}

func TestPublicSearchTextFilter(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)

	createPost(t, owner.Id, model.PostStatusApproved, "Lost tabby cat near the park")
	createPost(t, owner.Id, model.PostStatusApproved, "Golden retriever found")

	page, err := svc.FindPublic(inout.PostListQuery{Search: "TABBY"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("case-insensitive title match failed, total=%d", page.Total)
	}

	// description matches count too
	page, err = svc.FindPublic(inout.PostListQuery{Search: "description long"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("description match failed, total=%d", page.Total)
	}
}

func TestPublicSearchTagLogic(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)

	kedi := createTag(t, "kedi")
	yavru := createTag(t, "yavru")
	asili := createTag(t, "aşılı")

	both := createPost(t, owner.Id, model.PostStatusApproved, "Both tags", *kedi, *yavru)
	oneTag := createPost(t, owner.Id, model.PostStatusApproved, "One tag", *kedi)
	createPost(t, owner.Id, model.PostStatusApproved, "Other tag", *asili)

	pair := fmt.Sprintf("%d,%d", kedi.Id, yavru.Id)

	// ANY: union, and a post matching both requested tags appears once
	page, err := svc.FindPublic(inout.PostListQuery{TagIds: pair, TagLogic: inout.TagLogicAny})
	if err != nil {
		t.Fatalf("ANY search: %v", err)
	}
	if page.Total != 2 || len(page.Posts) != 2 {
		t.Fatalf("ANY expected 2 distinct posts, got total=%d len=%d", page.Total, len(page.Posts))
	}
	seen := map[int]int{}
	for _, p := range page.Posts {
		seen[p.Id]++
	}
	if seen[both.Id] != 1 || seen[oneTag.Id] != 1 {
		t.Errorf("ANY results wrong or duplicated: %v", seen)
	}

	// ALL: intersection, only the post covering every requested tag
	page, err = svc.FindPublic(inout.PostListQuery{TagIds: pair, TagLogic: inout.TagLogicAll})
	if err != nil {
		t.Fatalf("ALL search: %v", err)
	}
	if page.Total != 1 || page.Posts[0].Id != both.Id {
		t.Fatalf("ALL expected only the covering post, got %+v", page.Posts)
	}

	// repeated and malformed ids collapse before counting
	messy := fmt.Sprintf("%d, %d,%d,abc", kedi.Id, kedi.Id, yavru.Id)
	page, err = svc.FindPublic(inout.PostListQuery{TagIds: messy, TagLogic: inout.TagLogicAll})
	if err != nil {
		t.Fatalf("ALL search with messy ids: %v", err)
	}
	if page.Total != 1 || page.Posts[0].Id != both.Id {
		t.Errorf("duplicate requested ids must not break the covering test")
	}
}

func TestPublicSearchLocationFilters(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)

	createPost(t, owner.Id, model.PostStatusApproved, "In Kadıköy")
	other := createPost(t, owner.Id, model.PostStatusApproved, "In Çankaya")
	if err := db.Dao.Model(other).Updates(map[string]interface{}{
		"province_code":      "06",
		"district_code":      "0601",
		"neighbourhood_name": "Kızılay",
	}).Error; err != nil {
		t.Fatalf("relocating post: %v", err)
	}

	page, err := svc.FindPublic(inout.PostListQuery{ProvinceCode: "06"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 1 || page.Posts[0].Id != other.Id {
		t.Errorf("province filter failed: %+v", page.Posts)
	}

	page, err = svc.FindPublic(inout.PostListQuery{ProvinceCode: "34", DistrictCode: "3402", NeighbourhoodName: "Moda"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 1 || page.Posts[0].Title != "In Kadıköy" {
		t.Errorf("combined location filter failed: %+v", page.Posts)
	}
}

func TestPublicSearchPagination(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)

	for i := 0; i < 25; i++ {
		createPost(t, owner.Id, model.PostStatusApproved, fmt.Sprintf("Listing %02d", i))
	}

	wantLens := map[int]int{1: 12, 2: 12, 3: 1}
	seen := map[int]struct{}{}
	for page := 1; page <= 3; page++ {
		result, err := svc.FindPublic(inout.PostListQuery{Page: page})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if result.Total != 25 {
			t.Errorf("page %d total = %d, want 25", page, result.Total)
		}
		if result.TotalPages != 3 {
			t.Errorf("page %d totalPages = %d, want 3", page, result.TotalPages)
		}
		if result.Page != page || result.Limit != 12 {
			t.Errorf("page %d echoed page=%d limit=%d", page, result.Page, result.Limit)
		}
		if len(result.Posts) != wantLens[page] {
			t.Errorf("page %d returned %d posts, want %d", page, len(result.Posts), wantLens[page])
		}
		for _, p := range result.Posts {
			if _, dup := seen[p.Id]; dup {
				t.Errorf("post %d returned on more than one page", p.Id)
			}
			seen[p.Id] = struct{}{}
		}
	}
	if len(seen) != 25 {
		t.Errorf("pages covered %d distinct posts, want 25", len(seen))
	}
}

func TestCreateForcesPendingAndDropsUnknownTags(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)
	kedi := createTag(t, "kedi")

	item, err := svc.Create(inout.CreatePostReq{
		Title:             "Kayıp kedi Boncuk",
		Description:       "Moda sahilinde en son görüldü, çipli ve aşılı.",
		ProvinceCode:      "34",
		ProvinceName:      "İstanbul",
		DistrictCode:      "3402",
		DistrictName:      "Kadıköy",
		NeighbourhoodName: "Moda",
		TagIds:            []int{kedi.Id, 9999},
	}, owner.Id)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Status != model.PostStatusPending {
		t.Errorf("new post status = %s, want PENDING", item.Status)
	}
	if len(item.Tags) != 1 || item.Tags[0].Id != kedi.Id {
		t.Errorf("unknown tag ids should be dropped, got %v", item.Tags)
	}
}

func TestUpdateOwnership(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)
	stranger := createUser(t, "Stranger", "stranger@example.com", model.RoleUser)
	admin := createUser(t, "Admin", "admin@example.com", model.RoleAdmin)

	post := createPost(t, owner.Id, model.PostStatusApproved, "Original title")
	newTitle := "Renamed listing"

	if _, err := svc.Update(post.Id, inout.UpdatePostReq{Title: &newTitle}, stranger.Id); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("stranger update should be forbidden, got %v", err)
	}
	if err := svc.Delete(post.Id, stranger.Id); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("stranger delete should be forbidden, got %v", err)
	}

	item, err := svc.Update(post.Id, inout.UpdatePostReq{Title: &newTitle}, owner.Id)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if item.Title != newTitle {
		t.Errorf("title not updated: %s", item.Title)
	}
	if item.Status != model.PostStatusApproved {
		t.Errorf("update must not change status, got %s", item.Status)
	}

	adminTitle := "Admin renamed"
	if _, err := svc.Update(post.Id, inout.UpdatePostReq{Title: &adminTitle}, admin.Id); err != nil {
		t.Errorf("admin update should succeed, got %v", err)
	}
	if err := svc.Delete(post.Id, admin.Id); err != nil {
		t.Errorf("admin delete should succeed, got %v", err)
	}

	if _, err := svc.Update(9999, inout.UpdatePostReq{Title: &newTitle}, owner.Id); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not found for unknown post, got %v", err)
	}
}

func TestUpdateTagsReplacesSet(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)
	kedi := createTag(t, "kedi")
	yavru := createTag(t, "yavru")
	asili := createTag(t, "aşılı")

	post := createPost(t, owner.Id, model.PostStatusApproved, "Tagged", *kedi, *yavru)

	item, err := svc.UpdateTags(post.Id, []int{asili.Id}, owner.Id)
	if err != nil {
		t.Fatalf("update tags: %v", err)
	}
	if len(item.Tags) != 1 || item.Tags[0].Id != asili.Id {
		t.Errorf("tag set should be fully replaced, got %v", item.Tags)
	}

	item, err = svc.UpdateTags(post.Id, []int{}, owner.Id)
	if err != nil {
		t.Fatalf("clearing tags: %v", err)
	}
	if len(item.Tags) != 0 {
		t.Errorf("empty list should clear tags, got %v", item.Tags)
	}
}

func TestModerationFlow(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)

	first := createPost(t, owner.Id, model.PostStatusPending, "First submitted")
	second := createPost(t, owner.Id, model.PostStatusPending, "Second submitted")

	pending, err := svc.FindPending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 || pending[0].Id != first.Id || pending[1].Id != second.Id {
		t.Errorf("pending queue should be FIFO, got %+v", pending)
	}

	approved, err := svc.Approve(first.Id)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != model.PostStatusApproved {
		t.Errorf("approve left status %s", approved.Status)
	}
	if _, err := svc.FindPublicById(first.Id); err != nil {
		t.Errorf("approved post should be publicly visible, got %v", err)
	}

	rejected, err := svc.Reject(second.Id, "fotoğraf uygunsuz")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != model.PostStatusRejected {
		t.Errorf("reject left status %s", rejected.Status)
	}
	if rejected.RejectionReason != "fotoğraf uygunsuz" {
		t.Errorf("rejection reason not persisted: %q", rejected.RejectionReason)
	}
	if _, err := svc.FindPublicById(second.Id); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("rejected post must stay hidden, got %v", err)
	}

	// the owner sees the reason on their own view
	mine, err := svc.FindMineById(second.Id, owner.Id)
	if err != nil {
		t.Fatalf("find mine: %v", err)
	}
	if mine.RejectionReason != "fotoğraf uygunsuz" {
		t.Errorf("owner view missing rejection reason: %q", mine.RejectionReason)
	}

	if _, err := svc.Approve(9999); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not found approving unknown post, got %v", err)
	}
}

func TestResolveTransition(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)
	stranger := createUser(t, "Stranger", "stranger@example.com", model.RoleUser)

	post := createPost(t, owner.Id, model.PostStatusApproved, "Boncuk bulundu")

	if _, err := svc.Resolve(post.Id, stranger.Id); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("stranger resolve should be forbidden, got %v", err)
	}

	item, err := svc.Resolve(post.Id, owner.Id)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if item.Status != model.PostStatusResolved {
		t.Errorf("resolve left status %s", item.Status)
	}
	if _, err := svc.FindPublicById(post.Id); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("resolved post leaves the public surface, got %v", err)
	}

	pending := createPost(t, owner.Id, model.PostStatusPending, "Still pending")
	if _, err := svc.Resolve(pending.Id, owner.Id); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("only approved posts can be resolved, got %v", err)
	}
}

func TestFindMine(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)
	other := createUser(t, "Other", "other@example.com", model.RoleUser)

	createPost(t, owner.Id, model.PostStatusPending, "Mine pending")
	createPost(t, owner.Id, model.PostStatusRejected, "Mine rejected")
	createPost(t, other.Id, model.PostStatusApproved, "Not mine")

	mine, err := svc.FindMine(owner.Id)
	if err != nil {
		t.Fatalf("find mine: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("owner sees all own posts regardless of status, got %d", len(mine))
	}

	theirs, err := svc.FindMine(other.Id)
	if err != nil {
		t.Fatalf("find theirs: %v", err)
	}
	if _, err := svc.FindMineById(theirs[0].Id, owner.Id); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("someone else's post must be not found on /my, got %v", err)
	}
}

func TestDeleteCascadesCommentsAndReports(t *testing.T) {
	setupTestDB(t)
	svc := &PostService{}
	owner := createUser(t, "Owner", "owner@example.com", model.RoleUser)
	commenter := createUser(t, "Commenter", "commenter@example.com", model.RoleUser)

	post := createPost(t, owner.Id, model.PostStatusApproved, "With comments")
	comment := createComment(t, post.Id, commenter.Id, "Gördüm sanırım!")
	report := model.CommentReport{
		Reason:     model.ReportReasonSpam,
		Status:     model.ReportStatusOpen,
		CommentId:  comment.Id,
		ReporterId: owner.Id,
	}
	if err := db.Dao.Create(&report).Error; err != nil {
		t.Fatalf("creating report: %v", err)
	}

	if err := svc.Delete(post.Id, owner.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var comments, reports int64
	db.Dao.Model(&model.Comment{}).Where("post_id = ?", post.Id).Count(&comments)
	db.Dao.Model(&model.CommentReport{}).Where("comment_id = ?", comment.Id).Count(&reports)
	if comments != 0 || reports != 0 {
		t.Errorf("cascade incomplete: %d comments, %d reports left", comments, reports)
	}
}
