package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// BudgetData is an ordered category→amount mapping. encoding/json decodes
// objects into maps with no key order, but the create contract returns rows
// in submission order, so the keys are read off the token stream instead.
type BudgetData []services.BudgetAllocation

// UnmarshalJSON decodes a JSON object into allocations, preserving key order.
func (d *BudgetData) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("budget_data must be an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("budget_data keys must be category names")
		}

		var num json.Number
		if err := dec.Decode(&num); err != nil {
			return fmt.Errorf("amount for %q must be an integer", key)
		}
		money, err := num.Int64()
		if err != nil {
			return fmt.Errorf("amount for %q must be an integer", key)
		}

		*d = append(*d, services.BudgetAllocation{Category: key, Money: money})
	}

	// Consume the closing brace.
	_, err = dec.Token()
	return err
}

// CreateBudgetsRequest represents the request payload for bulk budget creation.
type CreateBudgetsRequest struct {
	StartDate  string     `json:"start_date" binding:"omitempty,calendar_date"`
	EndDate    string     `json:"end_date" binding:"omitempty,calendar_date"`
	BudgetData BudgetData `json:"budget_data" binding:"required"`
}

// UpdateBudgetRequest represents the request payload for a partial budget update.
type UpdateBudgetRequest struct {
	Category  *string `json:"category" binding:"omitempty,min=1"`
	Money     *int64  `json:"money" binding:"omitempty,gte=0"`
	StartDate *string `json:"start_date" binding:"omitempty,calendar_date"`
	EndDate   *string `json:"end_date" binding:"omitempty,calendar_date"`
}

// RecommendBudgetRequest represents the request payload for a budget recommendation.
type RecommendBudgetRequest struct {
	Budget *int64 `json:"budget"`
	Scope  string `json:"scope" binding:"omitempty,recommend_scope"`
}

// GetBudgets handles listing budgets for the authenticated user.
// @Summary     List budgets
// @Description List the authenticated user's budgets, optionally filtered by the month of their start date
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Start-date month filter (1-12, any year)"
// @Success     200 {array} models.Budget "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/ [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var month *int
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be a number between 1 and 12"))
			return
		}
		month = &m
	}

	budgets, err := h.budgetService.GetUserBudgets(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// CreateBudgets handles bulk budget creation from a category→amount mapping.
// @Summary     Create budgets
// @Description Create one budget per submitted category, all sharing one date range
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetsRequest true "Date range and category amounts"
// @Success     201 {array} models.Budget "Created budgets in submission order"
// @Failure     400 {object} ErrorResponse "Missing date range or unknown category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/ [post]
func (h *BudgetHandler) CreateBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.StartDate == "" || req.EndDate == "" {
		respondWithError(c, apperrors.ErrMissingDateRange)
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.CreateBudgets(userID, startDate, endDate, req.BudgetData)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BUDGETS", "budget", 0, c.ClientIP(),
		map[string]interface{}{"count": len(budgets), "start_date": req.StartDate, "end_date": req.EndDate})

	c.JSON(http.StatusCreated, gin.H{"budgets": budgets})
}

// GetBudget handles retrieving a specific budget.
// @Summary     Get budget by ID
// @Description Get a specific budget by ID
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Budget not found for this user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/{id}/ [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles a partial update of an existing budget.
// @Summary     Update budget
// @Description Update the supplied fields of an existing budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Fields to update"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Budget not found or invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/{id}/ [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.BudgetUpdate{
		Category: req.Category,
		Money:    req.Money,
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		update.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		update.EndDate = &endDate
	}

	budget, err := h.budgetService.UpdateBudget(userID, budgetID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete budget
// @Description Permanently delete a budget by ID
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     400 {object} ErrorResponse "Budget not found for this user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/{id}/ [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// RecommendBudgets handles allocating a target total across categories.
// @Summary     Recommend budgets
// @Description Allocate a target total across categories proportionally to historical budget amounts
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecommendBudgetRequest true "Target total and optional scope (user/global)"
// @Success     200 {object} map[string]map[string]float64 "Recommended amount per category"
// @Failure     400 {object} ErrorResponse "Missing budget amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/recommend/ [post]
func (h *BudgetHandler) RecommendBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecommendBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.Budget == nil {
		respondWithError(c, apperrors.ErrMissingBudgetAmount)
		return
	}

	scope := services.RecommendScopeUser
	if req.Scope != "" {
		scope = services.RecommendScope(req.Scope)
	}

	budgetData, err := h.budgetService.RecommendBudgets(userID, *req.Budget, scope)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_data": budgetData})
}
