package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"cleaning-ops-backend/internal/auth"
	apperrors "cleaning-ops-backend/internal/errors"
	"cleaning-ops-backend/internal/logger"
	"cleaning-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// DefaultRedirect is where clients go after a transition unless they asked for a local path
const DefaultRedirect = "/cleanings"

// TransitionRequest is the optional body of claim/start/complete/decline
type TransitionRequest struct {
	ReturnTo string `json:"return_to,omitempty" example:"/cleanings/mine"`
}

// TransitionResponse reports the outcome of an assignment operation
type TransitionResponse struct {
	Outcome    apperrors.Outcome         `json:"outcome" example:"success"`
	Message    string                    `json:"message" example:"Cleaning claimed"`
	RedirectTo string                    `json:"redirect_to" example:"/cleanings"`
	Cleaning   *service.CleaningResponse `json:"cleaning,omitempty"`
}

// CleaningHandler handles HTTP requests for cleaning lists and the claim lifecycle
type CleaningHandler struct {
	eligibility service.EligibilityServiceInterface
	assignments service.AssignmentServiceInterface
	scopes      service.ScopeResolver
}

// NewCleaningHandler creates a new cleaning handler
func NewCleaningHandler(eligibility service.EligibilityServiceInterface, assignments service.AssignmentServiceInterface, scopes service.ScopeResolver) *CleaningHandler {
	return &CleaningHandler{
		eligibility: eligibility,
		assignments: assignments,
		scopes:      scopes,
	}
}

// ListAvailable handles GET /cleanings/available
// @Summary List claimable cleanings
// @Description Open, unassigned, pending cleanings inside the claim window that the caller reaches through a team or a direct grant
// @Tags cleanings
// @Produce json
// @Param from query string false "Earliest scheduled date (YYYY-MM-DD)"
// @Param to query string false "Latest scheduled date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} service.CleaningListResponse "Claimable cleanings"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /cleanings/available [get]
func (h *CleaningHandler) ListAvailable(c *gin.Context) {
	h.list(c, service.ListKindAvailable)
}

// ListMine handles GET /cleanings/mine
// @Summary List the caller's cleanings
// @Description Cleanings assigned to any of the caller's identities, pending and in progress by default
// @Tags cleanings
// @Produce json
// @Param from query string false "Earliest scheduled date (YYYY-MM-DD)"
// @Param to query string false "Latest scheduled date (YYYY-MM-DD)"
// @Param status query []string false "Statuses to include" collectionFormat(multi)
// @Param include_completed query bool false "Include completed cleanings"
// @Param history query bool false "Newest first, completed included"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} service.CleaningListResponse "Assigned cleanings"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /cleanings/mine [get]
func (h *CleaningHandler) ListMine(c *gin.Context) {
	h.list(c, service.ListKindAssigned)
}

// ListLost handles GET /cleanings/lost
// @Summary List lost cleanings
// @Description Open cleanings whose date fell before the claim window, newest first
// @Tags cleanings
// @Produce json
// @Param from query string false "Earliest scheduled date (YYYY-MM-DD)"
// @Param to query string false "Latest scheduled date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} service.CleaningListResponse "Lost cleanings"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /cleanings/lost [get]
func (h *CleaningHandler) ListLost(c *gin.Context) {
	h.list(c, service.ListKindLost)
}

func (h *CleaningHandler) list(c *gin.Context, kind service.ListKind) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.ListCleaningsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.Kind = kind

	resp, err := h.eligibility.ListEligibleCleanings(c.Request.Context(), userID, &req)
	if err != nil {
		if apperrors.OutcomeOf(err) == apperrors.OutcomeNoMembership {
			c.JSON(http.StatusOK, service.CleaningListResponse{
				Kind:         kind,
				Cleanings:    []service.CleaningResponse{},
				Window:       h.eligibility.CurrentWindow(),
				NoMembership: true,
			})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to list cleanings")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list cleanings"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Counts handles GET /cleanings/counts
// @Summary Cleaning view counts
// @Description Badge counts for the available, assigned, upcoming and lost views
// @Tags cleanings
// @Produce json
// @Success 200 {object} service.CountsResponse "Counts"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /cleanings/counts [get]
func (h *CleaningHandler) Counts(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	counts, err := h.eligibility.CountsFor(c.Request.Context(), userID)
	if err != nil {
		if apperrors.OutcomeOf(err) == apperrors.OutcomeNoMembership {
			c.JSON(http.StatusOK, service.CountsResponse{NoMembership: true})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to count cleanings")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to count cleanings"})
		return
	}

	c.JSON(http.StatusOK, counts)
}

// MyScope handles GET /me/scope
// @Summary Caller's team scope
// @Description Memberships, teams and properties the caller works through
// @Tags cleanings
// @Produce json
// @Success 200 {object} service.TeamScope "Team scope"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} TransitionResponse "No team membership"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /me/scope [get]
func (h *CleaningHandler) MyScope(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	scope, err := h.scopes.Resolve(c.Request.Context(), userID)
	if err != nil {
		if apperrors.OutcomeOf(err) == apperrors.OutcomeNoMembership {
			c.JSON(http.StatusForbidden, TransitionResponse{
				Outcome:    apperrors.OutcomeNoMembership,
				Message:    outcomeMessages[apperrors.OutcomeNoMembership],
				RedirectTo: DefaultRedirect,
			})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to resolve team scope")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to resolve team scope"})
		return
	}

	c.JSON(http.StatusOK, scope)
}

// AvailabilityWindow handles GET /availability-window
// @Summary Current claim window
// @Description Today's civil date and the inclusive range of dates that can be claimed
// @Tags cleanings
// @Produce json
// @Success 200 {object} service.WindowResponse "Claim window"
// @Security BearerAuth
// @Router /availability-window [get]
func (h *CleaningHandler) AvailabilityWindow(c *gin.Context) {
	c.JSON(http.StatusOK, h.eligibility.CurrentWindow())
}

// Claim handles POST /cleanings/:id/claim
// @Summary Claim a cleaning
// @Description Assign an open cleaning to the caller. Of several concurrent claims exactly one succeeds.
// @Tags cleanings
// @Accept json
// @Produce json
// @Param id path string true "Cleaning ID (UUID)"
// @Param request body TransitionRequest false "Where to send the client afterwards"
// @Success 200 {object} TransitionResponse "Claimed"
// @Failure 400 {object} TransitionResponse "Invalid cleaning ID"
// @Failure 403 {object} TransitionResponse "No access to the cleaning"
// @Failure 404 {object} TransitionResponse "Cleaning not found"
// @Failure 409 {object} TransitionResponse "Already taken or outside the window"
// @Failure 500 {object} TransitionResponse "Internal server error"
// @Security BearerAuth
// @Router /cleanings/{id}/claim [post]
func (h *CleaningHandler) Claim(c *gin.Context) {
	h.transition(c, service.OperationClaim, h.assignments.Claim)
}

// Start handles POST /cleanings/:id/start
// @Summary Start a cleaning
// @Description Move a cleaning the caller holds from pending to in progress
// @Tags cleanings
// @Accept json
// @Produce json
// @Param id path string true "Cleaning ID (UUID)"
// @Param request body TransitionRequest false "Where to send the client afterwards"
// @Success 200 {object} TransitionResponse "Started"
// @Failure 400 {object} TransitionResponse "Invalid cleaning ID"
// @Failure 404 {object} TransitionResponse "Cleaning not found"
// @Failure 409 {object} TransitionResponse "Not eligible"
// @Failure 500 {object} TransitionResponse "Internal server error"
// @Security BearerAuth
// @Router /cleanings/{id}/start [post]
func (h *CleaningHandler) Start(c *gin.Context) {
	h.transition(c, service.OperationStart, h.assignments.Start)
}

// Complete handles POST /cleanings/:id/complete
// @Summary Complete a cleaning
// @Description Finish a cleaning the caller has started
// @Tags cleanings
// @Accept json
// @Produce json
// @Param id path string true "Cleaning ID (UUID)"
// @Param request body TransitionRequest false "Where to send the client afterwards"
// @Success 200 {object} TransitionResponse "Completed"
// @Failure 400 {object} TransitionResponse "Invalid cleaning ID"
// @Failure 404 {object} TransitionResponse "Cleaning not found"
// @Failure 409 {object} TransitionResponse "Not eligible"
// @Failure 500 {object} TransitionResponse "Internal server error"
// @Security BearerAuth
// @Router /cleanings/{id}/complete [post]
func (h *CleaningHandler) Complete(c *gin.Context) {
	h.transition(c, service.OperationComplete, h.assignments.Complete)
}

// Decline handles POST /cleanings/:id/decline
// @Summary Decline a cleaning
// @Description Hand a claimed, not yet started cleaning back to the open pool and flag it for attention
// @Tags cleanings
// @Accept json
// @Produce json
// @Param id path string true "Cleaning ID (UUID)"
// @Param request body TransitionRequest false "Where to send the client afterwards"
// @Success 200 {object} TransitionResponse "Declined"
// @Failure 400 {object} TransitionResponse "Invalid cleaning ID"
// @Failure 404 {object} TransitionResponse "Cleaning not found"
// @Failure 409 {object} TransitionResponse "Not eligible"
// @Failure 500 {object} TransitionResponse "Internal server error"
// @Security BearerAuth
// @Router /cleanings/{id}/decline [post]
func (h *CleaningHandler) Decline(c *gin.Context) {
	h.transition(c, service.OperationDecline, h.assignments.Decline)
}

type transitionFunc func(ctx context.Context, userID, cleaningID uuid.UUID) (*service.TransitionResult, error)

var successMessages = map[string]string{
	service.OperationClaim:    "Cleaning claimed",
	service.OperationStart:    "Cleaning started",
	service.OperationComplete: "Cleaning completed",
	service.OperationDecline:  "Cleaning declined",
}

var outcomeMessages = map[apperrors.Outcome]string{
	apperrors.OutcomeAlreadyTaken: "Someone else already took this cleaning",
	apperrors.OutcomeOutOfWindow:  "This cleaning is outside the dates you can claim",
	apperrors.OutcomeForbidden:    "You do not have access to this cleaning",
	apperrors.OutcomeNotEligible:  "This cleaning can no longer be changed by you",
	apperrors.OutcomeNoMembership: "Join a team to start claiming cleanings",
	apperrors.OutcomeNotFound:     "Cleaning not found",
	apperrors.OutcomeError:        "Something went wrong, please try again",
}

var outcomeStatus = map[apperrors.Outcome]int{
	apperrors.OutcomeSuccess:      http.StatusOK,
	apperrors.OutcomeAlreadyTaken: http.StatusConflict,
	apperrors.OutcomeOutOfWindow:  http.StatusConflict,
	apperrors.OutcomeNotEligible:  http.StatusConflict,
	apperrors.OutcomeForbidden:    http.StatusForbidden,
	apperrors.OutcomeNoMembership: http.StatusForbidden,
	apperrors.OutcomeNotFound:     http.StatusNotFound,
	apperrors.OutcomeError:        http.StatusInternalServerError,
}

func (h *CleaningHandler) transition(c *gin.Context, operation string, apply transitionFunc) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindJSON(&req); err != nil {
			// an empty or malformed body only loses the redirect hint
			logger.WithContext(c).WithError(err).Debug("ignoring transition body")
			req = TransitionRequest{}
		}
	}
	redirectTo := SafeRedirect(req.ReturnTo)

	cleaningID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, TransitionResponse{
			Outcome:    apperrors.OutcomeNotFound,
			Message:    "invalid cleaning ID",
			RedirectTo: redirectTo,
		})
		return
	}

	result, err := apply(c.Request.Context(), userID, cleaningID)
	outcome := apperrors.OutcomeOf(err)
	resp := TransitionResponse{Outcome: outcome, RedirectTo: redirectTo}

	if err != nil {
		resp.Message = outcomeMessages[outcome]
		if outcome == apperrors.OutcomeError {
			logger.WithContext(c).WithError(err).WithField("operation", operation).Error("cleaning transition failed")
		}
		c.JSON(outcomeStatus[outcome], resp)
		return
	}

	resp.Message = successMessages[operation]
	resp.Cleaning = result.Cleaning
	c.JSON(http.StatusOK, resp)
}

// SafeRedirect accepts only local absolute paths. Anything that could leave
// the site, such as "//host" or "/\host" or a full URL, falls back to the default.
func SafeRedirect(returnTo string) string {
	if returnTo == "" || !strings.HasPrefix(returnTo, "/") {
		return DefaultRedirect
	}
	if strings.HasPrefix(returnTo, "//") || strings.HasPrefix(returnTo, "/\\") {
		return DefaultRedirect
	}
	if strings.ContainsAny(returnTo, "\r\n") {
		return DefaultRedirect
	}
	parsed, err := url.Parse(returnTo)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return DefaultRedirect
	}
	return returnTo
}

func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return uuid.Nil, false
	}
	return userID, true
}
