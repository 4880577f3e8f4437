package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitsphere/backend/internal/middleware"
	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/service"
	"github.com/splitsphere/backend/internal/util"
)

// GroupHandler handles group management requests.
type GroupHandler struct {
	groups *service.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groups *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

// CreateGroupRequest is the request body for group creation.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// GroupResponse is the JSON shape of a group.
type GroupResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatorID string   `json:"creatorId"`
	Members   []string `json:"members"`
	Closed    bool     `json:"closed"`
	CreatedAt int64    `json:"createdAt"`
}

func toGroupResponse(g *models.Group) GroupResponse {
	return GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatorID: g.CreatorID,
		Members:   g.Members,
		Closed:    g.Closed,
		CreatedAt: g.CreatedAt,
	}
}

// Create handles POST /api/groups.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, util.ErrInvalidInput)
		return
	}

	group, err := h.groups.CreateGroup(r.Context(), req.Name, middleware.GetUserID(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, toGroupResponse(group))
}

// Join handles POST /api/groups/{groupID}/join.
func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	group, err := h.groups.JoinGroup(r.Context(), groupID, middleware.GetUserID(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toGroupResponse(group))
}

// Close handles POST /api/groups/{groupID}/close.
func (h *GroupHandler) Close(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	group, err := h.groups.CloseGroup(r.Context(), groupID, middleware.GetUserID(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toGroupResponse(group))
}

// Get handles GET /api/groups/{groupID}.
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	group, err := h.groups.GetGroup(r.Context(), groupID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toGroupResponse(group))
}

// List handles GET /api/groups, listing the caller's groups.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.ListUserGroups(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}

	responses := make([]GroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = toGroupResponse(g)
	}
	respondWithJSON(w, http.StatusOK, responses)
}
