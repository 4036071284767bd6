package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/budgetms/budgetvote/internal/adapter/postgres/budgetitem"
	"github.com/budgetms/budgetvote/internal/domain"
	"github.com/budgetms/budgetvote/internal/service/budget"
)

// budgetService defines the minimal interface needed by BudgetHandler.
type budgetService interface {
	CreateItem(ctx context.Context, input budget.ItemInput) (*domain.BudgetItem, error)
	GetItem(ctx context.Context, id int64) (*domain.BudgetItem, error)
	UpdateItem(ctx context.Context, id int64, input budget.ItemInput) (*domain.BudgetItem, error)
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context, filter budgetitem.Filter) ([]*domain.BudgetItem, int, error)
	Statistics(ctx context.Context) (domain.BudgetStatistics, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

// BudgetHandler serves budget item REST endpoints.
type BudgetHandler struct {
	svc budgetService
	log *slog.Logger
}

// NewBudgetHandler creates a BudgetHandler.
func NewBudgetHandler(svc budgetService, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{svc: svc, log: logger.With("handler", "budget")}
}

type itemRequest struct {
	Category       string  `json:"category"`
	Item           string  `json:"item"`
	Description    *string `json:"description,omitempty"`
	Department     *string `json:"department,omitempty"`
	Division       *string `json:"division,omitempty"`
	Amount         float64 `json:"amount"`
	ApprovedAmount float64 `json:"approvedAmount"`
	Notes          *string `json:"notes,omitempty"`
	Benefits       *string `json:"benefits,omitempty"`
	Worthiness     *string `json:"worthiness,omitempty"`
	Status         string  `json:"status,omitempty"`
}

type itemResponse struct {
	ID             int64     `json:"id"`
	Category       string    `json:"category"`
	Item           string    `json:"item"`
	Description    *string   `json:"description,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Division       *string   `json:"division,omitempty"`
	Amount         float64   `json:"amount"`
	ApprovedAmount float64   `json:"approvedAmount"`
	Notes          *string   `json:"notes,omitempty"`
	Benefits       *string   `json:"benefits,omitempty"`
	Worthiness     *string   `json:"worthiness,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type itemListResponse struct {
	Items []itemResponse `json:"items"`
	Total int            `json:"total"`
}

type statisticsResponse struct {
	TotalProposed      float64 `json:"totalProposed"`
	TotalApproved      float64 `json:"totalApproved"`
	TotalItems         int     `json:"totalItems"`
	ApprovedItems      int     `json:"approvedItems"`
	ProposedItems      int     `json:"proposedItems"`
	RejectedItems      int     `json:"rejectedItems"`
	ApprovalPercentage float64 `json:"approvalPercentage"`
}

type departmentResponse struct {
	Department    string  `json:"department"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalApproved float64 `json:"totalApproved"`
	ItemCount     int     `json:"itemCount"`
}

type categoryResponse struct {
	Category      string  `json:"category"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalApproved float64 `json:"totalApproved"`
	ItemCount     int     `json:"itemCount"`
}

type dashboardResponse struct {
	Statistics  statisticsResponse   `json:"statistics"`
	Departments []departmentResponse `json:"departments"`
	Categories  []categoryResponse   `json:"categories"`
	Items       []itemResponse       `json:"items"`
}

// CreateItem handles POST /api/budget/items.
func (h *BudgetHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.CreateItem(r.Context(), toItemInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// GetItem handles GET /api/budget/items/{id}.
func (h *BudgetHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// UpdateItem handles PUT /api/budget/items/{id}.
func (h *BudgetHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), id, toItemInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItem handles DELETE /api/budget/items/{id}.
func (h *BudgetHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListItems handles GET /api/budget/items.
// Query: search, category, department, status, sortBy, sortOrder, limit, offset.
func (h *BudgetHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := budgetitem.Filter{
		SortBy:    strings.ToLower(q.Get("sortBy")),
		SortOrder: strings.ToUpper(q.Get("sortOrder")),
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("category"); v != "" {
		filter.Category = &v
	}
	if v := q.Get("department"); v != "" {
		filter.Department = &v
	}
	if v := q.Get("status"); v != "" {
		status := domain.BudgetStatus(v)
		filter.Status = &status
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	items, total, err := h.svc.ListItems(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := itemListResponse{
		Items: make([]itemResponse, 0, len(items)),
		Total: total,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Statistics handles GET /api/budget/statistics.
func (h *BudgetHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatisticsResponse(stats))
}

// Dashboard handles GET /api/budget/dashboard.
func (h *BudgetHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := dashboardResponse{
		Statistics:  toStatisticsResponse(dash.Statistics),
		Departments: make([]departmentResponse, 0, len(dash.Departments)),
		Categories:  make([]categoryResponse, 0, len(dash.Categories)),
		Items:       make([]itemResponse, 0, len(dash.Items)),
	}
	for _, d := range dash.Departments {
		resp.Departments = append(resp.Departments, departmentResponse(d))
	}
	for _, c := range dash.Categories {
		resp.Categories = append(resp.Categories, categoryResponse(c))
	}
	for _, item := range dash.Items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *BudgetHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "storage timeout")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func toItemInput(req itemRequest) budget.ItemInput {
	return budget.ItemInput{
		Category:       req.Category,
		Item:           req.Item,
		Description:    req.Description,
		Department:     req.Department,
		Division:       req.Division,
		Amount:         req.Amount,
		ApprovedAmount: req.ApprovedAmount,
		Notes:          req.Notes,
		Benefits:       req.Benefits,
		Worthiness:     req.Worthiness,
		Status:         domain.BudgetStatus(req.Status),
	}
}

func toItemResponse(item *domain.BudgetItem) itemResponse {
	return itemResponse{
		ID:             item.ID,
		Category:       item.Category,
		Item:           item.Item,
		Description:    item.Description,
		Department:     item.Department,
		Division:       item.Division,
		Amount:         item.Amount,
		ApprovedAmount: item.ApprovedAmount,
		Notes:          item.Notes,
		Benefits:       item.Benefits,
		Worthiness:     item.Worthiness,
		Status:         item.Status.String(),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func toStatisticsResponse(stats domain.BudgetStatistics) statisticsResponse {
	return statisticsResponse{
		TotalProposed:      stats.TotalProposed,
		TotalApproved:      stats.TotalApproved,
		TotalItems:         stats.TotalItems,
		ApprovedItems:      stats.ApprovedItems,
		ProposedItems:      stats.ProposedItems,
		RejectedItems:      stats.RejectedItems,
		ApprovalPercentage: stats.ApprovalPercentage(),
	}
}
