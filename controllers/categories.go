package controllers

import (
	"patidestek/inout"
	"patidestek/pkg/response"
	"patidestek/services"

	"github.com/gin-gonic/gin"
)

var categoryService = &services.CategoryService{}

func ListCategories(c *gin.Context) {
	categories, err := categoryService.List()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, categories)
}

func CreateCategory(c *gin.Context) {
	var req inout.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	category, err := categoryService.Create(req.Name)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, category)
}

func UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req inout.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	category, err := categoryService.Update(id, req.Name)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, category)
}

func DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := categoryService.Delete(id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "category deleted"})
}
