// Package handlers wires the REST routes to the models package and maps
// failures onto the HTTP error taxonomy: 401 unauthenticated, 404 missing
// or out-of-scope, 400 validation with every failing field itemized, 500
// everything else.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/gin-gonic/gin"
)

// requireUser returns the authenticated user id or writes a 401.
func requireUser(c *gin.Context) (int, bool) {
	userId, ok := utils.GetUserIdFromContext(c.Request.Context())
	if !ok || userId == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return 0, false
	}
	return userId, true
}

// requireCompany reads company_id from the query string (or the "company_id"
// header as a fallback) and writes a 400 when absent. The value is stored in
// the request context so the company guard plugin scopes every statement of
// the request; membership checks still happen in the models layer.
func requireCompany(c *gin.Context) (string, bool) {
	companyId := c.Query("company_id")
	if companyId == "" {
		companyId = c.GetHeader("company_id")
	}
	if companyId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"company_id": "is required"}})
		return "", false
	}
	c.Request = c.Request.WithContext(utils.SetCompanyIdInContext(c.Request.Context(), companyId))
	return companyId, true
}

// pathId parses the :id path parameter.
func pathId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"id": "must be a positive integer"}})
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body and writes the itemized 400 on failure.
func bindJSON(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
		return false
	}
	return true
}

// writeError maps a model error to the response taxonomy.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrorRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"body": validationErr.Message}})
		return
	}

	logger := config.GetLogger()
	config.LogError(logger, "handlers", c.FullPath(), "unhandled error", nil, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// requestContext is shorthand used by every handler.
func requestContext(c *gin.Context) context.Context {
	return c.Request.Context()
}
