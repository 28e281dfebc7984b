package handlers

import (
	"net/http"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/models"
	"github.com/datafiscal/finanzas_backend/models/exports"
	"github.com/gin-gonic/gin"
)

const demoFeedSize = 50

// PublicBIFeed is the unauthenticated Power BI endpoint. Disabled unless
// PUBLIC_BI_ENABLED is set; serves synthetic rows while the store is down
// so dashboard refreshes never fail.
func PublicBIFeed(c *gin.Context) {
	if !config.PublicBIEnabled() {
		c.JSON(http.StatusForbidden, gin.H{"error": "public BI feed is disabled"})
		return
	}

	records, err := models.PublicFeedRecords(requestContext(c))
	if err != nil {
		logger := config.GetLogger()
		config.LogError(logger, "bi.go", "PublicBIFeed", "store unavailable, serving demo data", nil, err)
		records = exports.DemoTransactions(demoFeedSize)
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := exports.TransactionsCSV(c.Writer, records); err != nil {
		writeError(c, err)
	}
}
