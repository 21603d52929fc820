package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/services"
)

// ExpenditureHandler handles expenditure-related requests.
type ExpenditureHandler struct {
	expenditureService services.ExpenditureServicer
	auditService       services.AuditServicer
}

// NewExpenditureHandler creates a new ExpenditureHandler.
func NewExpenditureHandler(expenditureService services.ExpenditureServicer, auditService services.AuditServicer) *ExpenditureHandler {
	return &ExpenditureHandler{expenditureService: expenditureService, auditService: auditService}
}

// CreateExpenditureRequest represents the request payload for creating an expenditure.
// money, category, and expense_date are mandatory; presence is checked in the
// handler so the response carries the dedicated error code.
type CreateExpenditureRequest struct {
	Money       *int64 `json:"money" binding:"omitempty,gte=0"`
	Category    string `json:"category"`
	ExpenseDate string `json:"expense_date" binding:"omitempty,calendar_date"`
	Comment     string `json:"comment"`
	IsSum       *bool  `json:"is_sum"`
}

// UpdateExpenditureRequest represents the request payload for a partial expenditure update.
type UpdateExpenditureRequest struct {
	Money       *int64  `json:"money" binding:"omitempty,gte=0"`
	Category    *string `json:"category" binding:"omitempty,min=1"`
	ExpenseDate *string `json:"expense_date" binding:"omitempty,calendar_date"`
	Comment     *string `json:"comment"`
	IsSum       *bool   `json:"is_sum"`
}

// GetExpenditures handles listing the authenticated user's expenditures.
// @Summary     List expenditures
// @Description List the authenticated user's expenditures. Users without any recorded expenditure get a 404.
// @Tags        expenditures
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Expenditure "Expenditures"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No expenditures recorded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenditure/ [get]
func (h *ExpenditureHandler) GetExpenditures(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenditures, err := h.expenditureService.GetUserExpenditures(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenditures": expenditures})
}

// CreateExpenditure handles recording a new expenditure.
// @Summary     Create expenditure
// @Description Record a spending event for the authenticated user
// @Tags        expenditures
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenditureRequest true "Expenditure details"
// @Success     201 {object} models.Expenditure "Expenditure created"
// @Failure     400 {object} ErrorResponse "Missing required field or unknown category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenditure/ [post]
func (h *ExpenditureHandler) CreateExpenditure(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.Money == nil || req.Category == "" || req.ExpenseDate == "" {
		respondWithError(c, apperrors.ErrMissingRequired)
		return
	}
	expenseDate, err := parseDate(req.ExpenseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenditure, err := h.expenditureService.CreateExpenditure(userID, req.Category, *req.Money, expenseDate, req.Comment, req.IsSum)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENDITURE", "expenditure", expenditure.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "money": *req.Money})

	c.JSON(http.StatusCreated, gin.H{"expenditure": expenditure})
}

// GetExpenditure handles retrieving a specific expenditure.
// @Summary     Get expenditure by ID
// @Description Get a specific expenditure by ID
// @Tags        expenditures
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expenditure ID"
// @Success     200 {object} models.Expenditure "Expenditure details"
// @Failure     400 {object} ErrorResponse "Expenditure not found for this user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenditure/{id}/ [get]
func (h *ExpenditureHandler) GetExpenditure(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenditureID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenditure, err := h.expenditureService.GetExpenditureByID(userID, expenditureID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenditure": expenditure})
}

// UpdateExpenditure handles a partial update of an existing expenditure.
// @Summary     Update expenditure
// @Description Update the supplied fields of an existing expenditure
// @Tags        expenditures
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                      true "Expenditure ID"
// @Param       request body UpdateExpenditureRequest true "Fields to update"
// @Success     200 {object} models.Expenditure "Updated expenditure"
// @Failure     400 {object} ErrorResponse "Expenditure not found or invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenditure/{id}/ [put]
func (h *ExpenditureHandler) UpdateExpenditure(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenditureID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.ExpenditureUpdate{
		Category: req.Category,
		Money:    req.Money,
		Comment:  req.Comment,
		IsSum:    req.IsSum,
	}
	if req.ExpenseDate != nil {
		expenseDate, err := parseDate(*req.ExpenseDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		update.ExpenseDate = &expenseDate
	}

	expenditure, err := h.expenditureService.UpdateExpenditure(userID, expenditureID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENDITURE", "expenditure", expenditureID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expenditure": expenditure})
}

// DeleteExpenditure handles deleting an expenditure.
// @Summary     Delete expenditure
// @Description Permanently delete an expenditure by ID
// @Tags        expenditures
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expenditure ID"
// @Success     200 {object} MessageResponse "Expenditure deleted"
// @Failure     400 {object} ErrorResponse "Expenditure not found for this user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenditure/{id}/ [delete]
func (h *ExpenditureHandler) DeleteExpenditure(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenditureID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenditureService.DeleteExpenditure(userID, expenditureID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENDITURE", "expenditure", expenditureID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expenditure deleted successfully"})
}
