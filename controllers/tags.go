package controllers

import (
	"patidestek/inout"
	"patidestek/pkg/response"
	"patidestek/services"

	"github.com/gin-gonic/gin"
)

var tagService = &services.TagService{}

func ListTags(c *gin.Context) {
	tags, err := tagService.List()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, tags)
}

func CreateTag(c *gin.Context) {
	var req inout.CreateTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	tag, err := tagService.Create(req.Name)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, tag)
}

func UpdateTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req inout.UpdateTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	tag, err := tagService.Update(id, req.Name)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, tag)
}

func DeleteTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := tagService.Delete(id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "tag deleted"})
}
