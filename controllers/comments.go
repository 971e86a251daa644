package controllers

import (
	"patidestek/inout"
	"patidestek/middleware"
	"patidestek/pkg/response"
	"patidestek/services"

	"github.com/gin-gonic/gin"
)

var commentService = &services.CommentService{}

func ListComments(c *gin.Context) {
	postId, ok := idParam(c, "id")
	if !ok {
		return
	}

	comments, err := commentService.FindByPost(postId)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comments)
}

func CreateComment(c *gin.Context) {
	postId, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req inout.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	comment, err := commentService.Create(postId, req, middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, comment)
}

func DeleteComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := commentService.Delete(id, middleware.UID(c)); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "comment deleted"})
}
