package handlers

import (
	"net/http"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/gin-gonic/gin"
)

func GetCategories(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	var categoryType *models.TransactionType
	if t := c.Query("type"); t != "" {
		tt := models.TransactionType(t)
		categoryType = &tt
	}

	categories, err := models.GetCategories(requestContext(c), categoryType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func GetCategory(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}

	category, err := models.GetCategory(requestContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func CreateCategory(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input models.NewCategory
	if !bindJSON(c, &input) {
		return
	}

	category, err := models.CreateCategory(requestContext(c), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewCategory
	if !bindJSON(c, &input) {
		return
	}

	category, err := models.UpdateCategory(requestContext(c), id, &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func DeleteCategory(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}

	if _, err := models.DeleteCategory(requestContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
