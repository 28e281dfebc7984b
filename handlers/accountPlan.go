package handlers

import (
	"net/http"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/gin-gonic/gin"
)

func GetAccountPlans(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	companyId, ok := requireCompany(c)
	if !ok {
		return
	}

	plans, err := models.GetAccountPlans(requestContext(c), companyId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func GetAccountPlan(c *gin.Context) {
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

	plan, err := models.GetAccountPlan(requestContext(c), companyId, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func CreateAccountPlan(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input models.NewAccountPlan
	if !bindJSON(c, &input) {
		return
	}

	plan, err := models.CreateAccountPlan(requestContext(c), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func UpdateAccountPlan(c *gin.Context) {
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
	var input models.NewAccountPlan
	if !bindJSON(c, &input) {
		return
	}

	plan, err := models.UpdateAccountPlan(requestContext(c), companyId, id, &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func DeleteAccountPlan(c *gin.Context) {
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

	if _, err := models.DeleteAccountPlan(requestContext(c), companyId, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
