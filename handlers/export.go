package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/datafiscal/finanzas_backend/models/exports"
	"github.com/gin-gonic/gin"
)

func exportFilename(extension string) string {
	return fmt.Sprintf("transacciones_%s.%s", time.Now().Format("20060102"), extension)
}

// ExportTransactions streams the caller's transactions in the requested
// format: csv (raw Power BI feed), curated, analytics, json or xlsx.
func ExportTransactions(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	filter, ok := transactionFilterFromQuery(c)
	if !ok {
		return
	}

	records, err := models.ExportRecords(requestContext(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		writeCSV(c, exports.TransactionsCSV, records)
	case "curated":
		writeCSV(c, exports.TransactionsCuratedCSV, records)
	case "analytics":
		writeCSV(c, exports.TransactionsAnalyticsCSV, records)
	case "json":
		c.Header("Content-Type", "application/json; charset=utf-8")
		if err := exports.TransactionsJSON(c.Writer, records); err != nil {
			writeError(c, err)
		}
	case "xlsx":
		c.Header("Content-Disposition", "attachment; filename="+exportFilename("xlsx"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := exports.TransactionsXLSX(c.Writer, records); err != nil {
			writeError(c, err)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{
			"format": "must be one of: csv curated analytics json xlsx",
		}})
	}
}

// writeCSV renders a CSV exporter into a buffer first so the response
// carries Content-Length, then streams it with the download headers.
func writeCSV(c *gin.Context, render func(io.Writer, []exports.TransactionRecord) error, records []exports.TransactionRecord) {
	payload, err := exports.RenderCSV(render, records)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+exportFilename("csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

// ExportPDF serves the printable HTML report. The route name is kept for
// the dashboard clients; they print the document to PDF in the browser.
func ExportPDF(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	filter, ok := transactionFilterFromQuery(c)
	if !ok {
		return
	}

	records, err := models.ExportRecords(requestContext(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+exportFilename("html"))
	if err := exports.ReportHTML(c.Writer, records, time.Now()); err != nil {
		writeError(c, err)
	}
}

// ImportTransactions accepts a curated CSV body (or multipart "file" field)
// and loads it into the caller's account.
func ImportTransactions(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	var reader io.Reader = c.Request.Body
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			writeError(c, err)
			return
		}
		defer f.Close()
		reader = f
	}

	records, err := exports.ParseCuratedCSV(reader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"file": err.Error()}})
		return
	}

	result, err := models.ImportTransactions(requestContext(c), records)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
