package handlers

import (
	"net/http"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/gin-gonic/gin"
)

func GetAccountingEntries(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	companyId, ok := requireCompany(c)
	if !ok {
		return
	}

	entries, err := models.GetAccountingEntries(requestContext(c), companyId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func GetAccountingEntry(c *gin.Context) {
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

	entry, err := models.GetAccountingEntry(requestContext(c), companyId, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func CreateAccountingEntry(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input models.NewAccountingEntry
	if !bindJSON(c, &input) {
		return
	}

	entry, err := models.CreateAccountingEntry(requestContext(c), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UpdateAccountingEntry(c *gin.Context) {
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
	var input models.NewAccountingEntry
	if !bindJSON(c, &input) {
		return
	}

	entry, err := models.UpdateAccountingEntry(requestContext(c), companyId, id, &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteAccountingEntry(c *gin.Context) {
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

	if _, err := models.DeleteAccountingEntry(requestContext(c), companyId, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetLedgerBalance serves the dashboard balance figure plus the corrected
// per-account breakdown.
func GetLedgerBalance(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	companyId, ok := requireCompany(c)
	if !ok {
		return
	}

	result, err := models.GetLedgerBalance(requestContext(c), companyId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
