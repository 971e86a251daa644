package controllers

import (
	"patidestek/inout"
	"patidestek/middleware"
	"patidestek/pkg/response"
	"patidestek/services"

	"github.com/gin-gonic/gin"
)

var reportService = &services.ReportService{}

func CreateReport(c *gin.Context) {
	var req inout.CreateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	report, err := reportService.Create(req, middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, report)
}

func ListReports(c *gin.Context) {
	var query inout.ReportListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	reports, err := reportService.FindAll(query.Status)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, reports)
}

func ResolveReport(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	report, err := reportService.Resolve(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, report)
}

func DeleteReport(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := reportService.Delete(id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "report deleted"})
}
