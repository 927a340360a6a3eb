package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/request"
	"task-manager-service/internal/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name, description string) (*domain.Team, error)
	UpdateTeam(ctx context.Context, teamID, name, description string) (*domain.Team, error)
	GetAllTeams(ctx context.Context) ([]domain.TeamWithMembers, error)
	GetTeamMembers(ctx context.Context, teamID string) ([]domain.UserRef, error)
	AddMembers(ctx context.Context, teamID string, userIDs []string) error
	RemoveMembers(ctx context.Context, teamID string, userIDs []string) error
}

type TeamHandler struct {
	service   TeamService
	validator *validator.Validate
}

func NewTeamHandler(service TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator,
	}
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Create a team (admin only)
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTeamRequest true "Team creation request"
// @Success 201 {object} response.TeamResponse "Team created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin access required"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	team, err := h.service.CreateTeam(r.Context(), req.Name, req.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	}

	respondJSON(w, http.StatusCreated, resp)
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Update a team's name and description (admin only)
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team id"
// @Param request body request.UpdateTeamRequest true "Team update request"
// @Success 200 {object} response.TeamResponse "Team updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")

	var req request.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	team, err := h.service.UpdateTeam(r.Context(), teamID, req.Name, req.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListTeams godoc
// @Summary List all teams
// @Description Get all teams with their member summaries (admin only)
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.AllTeamsResponse "Teams retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.GetAllTeams(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	teamDTOs := make([]dto.TeamDTO, len(teams))
	for i := range teams {
		teamDTOs[i] = mapper.MapDomainTeamWithMembersToDTO(&teams[i])
	}

	resp := response.AllTeamsResponse{
		Teams: teamDTOs,
		Count: len(teamDTOs),
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListTeamMembers godoc
// @Summary List team members
// @Description Get the users belonging to a team (admin only)
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team id"
// @Success 200 {object} response.TeamMembersResponse "Members retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{teamId}/members [get]
func (h *TeamHandler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")

	members, err := h.service.GetTeamMembers(r.Context(), teamID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	memberDTOs := make([]dto.UserRefDTO, len(members))
	for i, m := range members {
		memberDTOs[i] = mapper.MapDomainUserRefToDTO(m)
	}

	resp := response.TeamMembersResponse{
		Members: memberDTOs,
		Count:   len(memberDTOs),
	}

	respondJSON(w, http.StatusOK, resp)
}

// AddMembers godoc
// @Summary Add users to a team
// @Description Add the given users to a team (admin only). Existing members are skipped.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team id"
// @Param request body request.TeamMembersRequest true "User ids to add"
// @Success 204 "Members added"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{teamId}/members [post]
func (h *TeamHandler) AddMembers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")

	var req request.TeamMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.service.AddMembers(r.Context(), teamID, req.UserIDs); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveMembers godoc
// @Summary Remove users from a team
// @Description Remove the given users from a team (admin only). Fails listing the missing ids when any requested user does not exist; nothing is removed in that case.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team id"
// @Param request body request.TeamMembersRequest true "User ids to remove"
// @Success 204 "Members removed"
// @Failure 400 {object} dto.ErrorResponse "Some users do not exist"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{teamId}/members [delete]
func (h *TeamHandler) RemoveMembers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")

	var req request.TeamMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.service.RemoveMembers(r.Context(), teamID, req.UserIDs); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
