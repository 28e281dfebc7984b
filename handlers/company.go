package handlers

import (
	"net/http"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/gin-gonic/gin"
)

type addMemberInput struct {
	Email string                 `json:"email" binding:"required,email"`
	Role  models.UserCompanyRole `json:"role" binding:"omitempty,oneof=ADMIN ACCOUNTANT"`
}

// GetCompanies lists only the companies the caller belongs to.
func GetCompanies(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	companies, err := models.GetCompanies(requestContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func CreateCompany(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input models.NewCompany
	if !bindJSON(c, &input) {
		return
	}

	company, err := models.CreateCompany(requestContext(c), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func GetCompany(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	company, err := models.GetCompany(requestContext(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func UpdateCompany(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input models.NewCompany
	if !bindJSON(c, &input) {
		return
	}

	company, err := models.UpdateCompany(requestContext(c), c.Param("id"), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func AddCompanyMember(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input addMemberInput
	if !bindJSON(c, &input) {
		return
	}

	member, err := models.AddCompanyMember(requestContext(c), c.Param("id"), input.Email, input.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}
