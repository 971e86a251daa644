package controllers

import (
	"patidestek/inout"
	"patidestek/middleware"
	"patidestek/pkg/response"
	"patidestek/services"

	"github.com/gin-gonic/gin"
)

var postService = &services.PostService{}

func ListPublicPosts(c *gin.Context) {
	var query inout.PostListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	page, err := postService.FindPublic(query)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, page)
}

func GetPublicPost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := postService.FindPublicById(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}

func ListMyPosts(c *gin.Context) {
	posts, err := postService.FindMine(middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, posts)
}

func GetMyPost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := postService.FindMineById(id, middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}

func CreatePost(c *gin.Context) {
	var req inout.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := postService.Create(req, middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, post)
}

func UpdatePost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req inout.UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := postService.Update(id, req, middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}

func UpdatePostTags(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req inout.UpdateTagsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := postService.UpdateTags(id, req.TagIds, middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}

func DeletePost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := postService.Delete(id, middleware.UID(c)); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "post deleted"})
}

func ResolvePost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := postService.Resolve(id, middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}

func ListPendingPosts(c *gin.Context) {
	posts, err := postService.FindPending()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, posts)
}

func ApprovePost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := postService.Approve(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}

func RejectPost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req inout.RejectPostReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindError(c, err)
			return
		}
	}

	post, err := postService.Reject(id, req.Reason)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}
