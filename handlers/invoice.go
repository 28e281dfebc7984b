package handlers

import (
	"net/http"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/gin-gonic/gin"
)

func GetInvoices(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	companyId, ok := requireCompany(c)
	if !ok {
		return
	}

	var status *models.InvoiceStatus
	if s := c.Query("status"); s != "" {
		st := models.InvoiceStatus(s)
		status = &st
	}

	invoices, err := models.GetInvoices(requestContext(c), companyId, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func GetInvoice(c *gin.Context) {
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

	invoice, err := models.GetInvoice(requestContext(c), companyId, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func CreateInvoice(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input models.NewInvoice
	if !bindJSON(c, &input) {
		return
	}

	invoice, err := models.CreateInvoice(requestContext(c), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func UpdateInvoice(c *gin.Context) {
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
	var input models.NewInvoice
	if !bindJSON(c, &input) {
		return
	}

	invoice, err := models.UpdateInvoice(requestContext(c), companyId, id, &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func DeleteInvoice(c *gin.Context) {
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

	if _, err := models.DeleteInvoice(requestContext(c), companyId, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
