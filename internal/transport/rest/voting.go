package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/budgetms/budgetvote/internal/domain"
	"github.com/budgetms/budgetvote/internal/service/voting"
)

// votingService defines the minimal interface needed by VotingHandler.
type votingService interface {
	CreateSession(ctx context.Context, input voting.CreateSessionInput) (*domain.VotingSession, error)
	GetSession(ctx context.Context, token string) (*domain.VotingSession, error)
	SubmitVote(ctx context.Context, input voting.SubmitVoteInput) (*voting.SubmitResult, error)
	CloseSession(ctx context.Context, token string) error
	GetResults(ctx context.Context, token string) (*domain.VotingResults, error)
}

// VotingHandler serves voting session REST endpoints.
type VotingHandler struct {
	svc votingService
	log *slog.Logger
}

// NewVotingHandler creates a VotingHandler.
func NewVotingHandler(svc votingService, logger *slog.Logger) *VotingHandler {
	return &VotingHandler{svc: svc, log: logger.With("handler", "voting")}
}

type createSessionRequest struct {
	BudgetItemID int64    `json:"budgetItemId"`
	Title        string   `json:"title"`
	Description  *string  `json:"description,omitempty"`
	Amount       float64  `json:"amount"`
	Voters       []string `json:"voters"`
}

type submitVoteRequest struct {
	VoterName       string   `json:"voterName"`
	VoterEmail      *string  `json:"voterEmail,omitempty"`
	Choice          string   `json:"choice"`
	SuggestedAmount *float64 `json:"suggestedAmount,omitempty"`
	Comment         *string  `json:"comment,omitempty"`
}

type sessionResponse struct {
	ID           int64     `json:"id"`
	Token        string    `json:"token"`
	BudgetItemID int64     `json:"budgetItemId"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	Voters       []string  `json:"voters"`
	CreatedAt    time.Time `json:"createdAt"`
}

type voteResponse struct {
	VoterName       string    `json:"voterName"`
	Choice          string    `json:"choice"`
	SuggestedAmount *float64  `json:"suggestedAmount,omitempty"`
	Comment         *string   `json:"comment,omitempty"`
	VotedAt         time.Time `json:"votedAt"`
}

type submitVoteResponse struct {
	Result string       `json:"result"` // "inserted" or "updated"
	Vote   voteResponse `json:"vote"`
}

type resultsResponse struct {
	Token                  string         `json:"token"`
	Title                  string         `json:"title"`
	Amount                 float64        `json:"amount"`
	Status                 string         `json:"status"`
	TotalVoters            int            `json:"totalVoters"`
	TotalVotes             int            `json:"totalVotes"`
	ApprovedCount          int            `json:"approvedCount"`
	RejectedCount          int            `json:"rejectedCount"`
	PartialCount           int            `json:"partialCount"`
	AverageSuggestedAmount float64        `json:"averageSuggestedAmount"`
	Votes                  []voteResponse `json:"votes"`
}

// CreateSession handles POST /api/voting/sessions.
func (h *VotingHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.CreateSession(r.Context(), voting.CreateSessionInput{
		BudgetItemID: req.BudgetItemID,
		Title:        req.Title,
		Description:  req.Description,
		Amount:       req.Amount,
		Voters:       req.Voters,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// GetSession handles GET /api/voting/sessions/{token}.
func (h *VotingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetSession(r.Context(), r.PathValue("token"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// SubmitVote handles POST /api/voting/sessions/{token}/votes.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req submitVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SubmitVote(r.Context(), voting.SubmitVoteInput{
		Token:           r.PathValue("token"),
		VoterName:       req.VoterName,
		VoterEmail:      req.VoterEmail,
		Choice:          domain.VoteChoice(req.Choice),
		SuggestedAmount: req.SuggestedAmount,
		Comment:         req.Comment,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status := http.StatusCreated
	outcome := "inserted"
	if !result.Inserted {
		status = http.StatusOK
		outcome = "updated"
	}

	writeJSON(w, status, submitVoteResponse{
		Result: outcome,
		Vote:   toVoteResponse(result.Vote),
	})
}

// CloseSession handles POST /api/voting/sessions/{token}/close.
func (h *VotingHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CloseSession(r.Context(), r.PathValue("token")); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// GetResults handles GET /api/voting/sessions/{token}/results.
func (h *VotingHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.GetResults(r.Context(), r.PathValue("token"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := resultsResponse{
		Token:                  results.Session.Token,
		Title:                  results.Session.Title,
		Amount:                 results.Session.Amount,
		Status:                 results.Session.Status().String(),
		TotalVoters:            len(results.Session.Voters),
		TotalVotes:             results.TotalVotes,
		ApprovedCount:          results.ApprovedCount,
		RejectedCount:          results.RejectedCount,
		PartialCount:           results.PartialCount,
		AverageSuggestedAmount: results.AverageSuggestedAmount,
		Votes:                  make([]voteResponse, 0, len(results.Votes)),
	}
	for _, v := range results.Votes {
		resp.Votes = append(resp.Votes, toVoteResponse(v))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *VotingHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrNotEligible):
		writeError(w, http.StatusForbidden, "voter is not on the eligibility list")
	case errors.Is(err, domain.ErrSessionClosed):
		writeError(w, http.StatusConflict, "voting session is closed")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "storage timeout")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toSessionResponse(s *domain.VotingSession) sessionResponse {
	return sessionResponse{
		ID:           s.ID,
		Token:        s.Token,
		BudgetItemID: s.BudgetItemID,
		Title:        s.Title,
		Description:  s.Description,
		Amount:       s.Amount,
		Status:       s.Status().String(),
		Voters:       s.Voters,
		CreatedAt:    s.CreatedAt,
	}
}

func toVoteResponse(v *domain.Vote) voteResponse {
	return voteResponse{
		VoterName:       v.VoterName,
		Choice:          v.Choice.String(),
		SuggestedAmount: v.SuggestedAmount,
		Comment:         v.Comment,
		VotedAt:         v.VotedAt,
	}
}
