package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anontherapy/internal/models/request_models"
	"anontherapy/internal/services"
	"anontherapy/pkg/utils"
)

type TherapistController struct {
	therapistService services.TherapistServiceInterface
}

func NewTherapistController(therapistService services.TherapistServiceInterface) *TherapistController {
	return &TherapistController{
		therapistService: therapistService,
	}
}

// Register godoc
// @Summary Register a therapist
// @Tags Therapists
// @Accept json
// @Produce json
// @Param request body request_models.RegisterTherapistRequest true "Therapist payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /therapists/register [post]
func (t *TherapistController) Register(c *gin.Context) {
	var req request_models.RegisterTherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	therapist, err := t.therapistService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, gin.H{"id": therapist.ID, "email": therapist.Email}, "Therapist registered successfully")
}

// Login godoc
// @Summary Authenticate a therapist
// @Tags Therapists
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /therapists/login [post]
func (t *TherapistController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := t.therapistService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// Availability godoc
// @Summary Count therapists able to take a booking
// @Tags Therapists
// @Produce json
// @Param plan query string true "Plan name"
// @Param therapyType query string true "Therapy type"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /therapists/availability [get]
func (t *TherapistController) Availability(c *gin.Context) {
	plan := c.Query("plan")
	therapyType := c.Query("therapyType")
	if plan == "" || therapyType == "" {
		utils.RespondError(c, http.StatusBadRequest, "plan and therapyType are required")
		return
	}

	availability, err := t.therapistService.CheckAvailability(c.Request.Context(), plan, therapyType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, availability, "Availability retrieved")
}

// ListSessions godoc
// @Summary List the therapist's sessions
// @Tags Therapists
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /therapists/sessions [get]
func (t *TherapistController) ListSessions(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessions, err := t.therapistService.ListSessions(c.Request.Context(), therapistID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessions, "Sessions retrieved successfully")
}

// AssignTime godoc
// @Summary Set the clock time for a session
// @Tags Therapists
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.AssignTimeRequest true "Time payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /therapists/sessions/{id}/time [put]
func (t *TherapistController) AssignTime(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.AssignTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := t.therapistService.AssignTimeToSession(c.Request.Context(), therapistID, sessionID, req.ScheduledTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Session time assigned")
}

// UpdateSessionStatus godoc
// @Summary Mark a session completed, canceled or no-show
// @Tags Therapists
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.SessionStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /therapists/sessions/{id}/status [put]
func (t *TherapistController) UpdateSessionStatus(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.SessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := t.therapistService.UpdateSessionStatus(c.Request.Context(), therapistID, sessionID, req.Status, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Session status updated")
}

// Reschedule godoc
// @Summary Move a session to a new date
// @Tags Therapists
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.RescheduleSessionRequest true "Reschedule payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /therapists/sessions/{id}/reschedule [put]
func (t *TherapistController) Reschedule(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.RescheduleSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := t.therapistService.RescheduleSession(c.Request.Context(), therapistID, sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Session rescheduled")
}
