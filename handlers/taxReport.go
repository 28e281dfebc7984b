package handlers

import (
	"net/http"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/gin-gonic/gin"
)

func GetTaxReports(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	companyId, ok := requireCompany(c)
	if !ok {
		return
	}

	var reportType *models.TaxReportType
	if t := c.Query("type"); t != "" {
		tt := models.TaxReportType(t)
		reportType = &tt
	}

	reports, err := models.GetTaxReports(requestContext(c), companyId, reportType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func GetTaxReport(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	companyId, ok := requireCompany(c)
	if !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}

	report, err := models.GetTaxReport(requestContext(c), companyId, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func CreateTaxReport(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input models.NewTaxReport
	if !bindJSON(c, &input) {
		return
	}

	report, err := models.CreateTaxReport(requestContext(c), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func UpdateTaxReport(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	companyId, ok := requireCompany(c)
	if !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewTaxReport
	if !bindJSON(c, &input) {
		return
	}

	report, err := models.UpdateTaxReport(requestContext(c), companyId, id, &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func DeleteTaxReport(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	companyId, ok := requireCompany(c)
	if !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}

	if _, err := models.DeleteTaxReport(requestContext(c), companyId, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
