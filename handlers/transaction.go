package handlers

import (
	"net/http"
	"strconv"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/gin-gonic/gin"
)

func transactionFilterFromQuery(c *gin.Context) (*models.TransactionFilter, bool) {
	filter := models.TransactionFilter{}

	if t := c.Query("type"); t != "" {
		tt := models.TransactionType(t)
		filter.Type = &tt
	}
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"category_id": "must be an integer"}})
			return nil, false
		}
		filter.CategoryId = &id
	}
	if v := c.Query("from"); v != "" {
		from, err := utils.ParseDate(v, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"from": "must be YYYY-MM-DD"}})
			return nil, false
		}
		filter.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := utils.ParseDate(v, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"to": "must be YYYY-MM-DD"}})
			return nil, false
		}
		filter.To = &to
	}
	return &filter, true
}

func GetTransactions(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	filter, ok := transactionFilterFromQuery(c)
	if !ok {
		return
	}

	transactions, err := models.GetTransactions(requestContext(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func GetTransaction(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}

	transaction, err := models.GetTransaction(requestContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func CreateTransaction(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input models.NewTransaction
	if !bindJSON(c, &input) {
		return
	}

	transaction, err := models.CreateTransaction(requestContext(c), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

func UpdateTransaction(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewTransaction
	if !bindJSON(c, &input) {
		return
	}

	transaction, err := models.UpdateTransaction(requestContext(c), id, &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func DeleteTransaction(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathId(c)
	if !ok {
		return
	}

	if _, err := models.DeleteTransaction(requestContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
