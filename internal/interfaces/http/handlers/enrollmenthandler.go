package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gurukul/internal/application/checkout/usecases"
	"gurukul/internal/domain/enrollment"
	"gurukul/internal/shared/constants"
	"gurukul/internal/shared/logger"
	"gurukul/internal/shared/utils"
)

// EnrollmentHandler serves entitlement reads, access evaluation and the
// administrative grant and revoke surface.
type EnrollmentHandler struct {
	listEntitlementsUC listEntitlementsUseCase
	evaluateAccessUC   evaluateAccessUseCase
	grantUC            grantEntitlementUseCase
	revokeUC           revokeEntitlementUseCase
	logger             logger.Interface
}

func NewEnrollmentHandler(
	listEntitlementsUC listEntitlementsUseCase,
	evaluateAccessUC evaluateAccessUseCase,
	grantUC grantEntitlementUseCase,
	revokeUC revokeEntitlementUseCase,
	logger logger.Interface,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		listEntitlementsUC: listEntitlementsUC,
		evaluateAccessUC:   evaluateAccessUC,
		grantUC:            grantUC,
		revokeUC:           revokeUC,
		logger:             logger,
	}
}

type AdminEntitlementRequest struct {
	UserID     string `json:"userId" binding:"required"`
	CourseID   string `json:"courseId" binding:"required"`
	CourseType string `json:"courseType" binding:"required,coursetype"`
}

// ListEntitlements lists a user's entitlement records, expired ones included
func (h *EnrollmentHandler) ListEntitlements(c *gin.Context) {
	userID := c.Param("id")
	if !h.canActFor(c, userID) {
		utils.ErrorResponse(c, http.StatusForbidden, "cannot access another user's entitlements")
		return
	}

	result, err := h.listEntitlementsUC.Execute(c.Request.Context(), usecases.ListEntitlementsQuery{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// EvaluateAccess evaluates a user's current access to one course
func (h *EnrollmentHandler) EvaluateAccess(c *gin.Context) {
	userID := c.Param("id")
	if !h.canActFor(c, userID) {
		utils.ErrorResponse(c, http.StatusForbidden, "cannot access another user's entitlements")
		return
	}

	result, err := h.evaluateAccessUC.Execute(c.Request.Context(), usecases.EvaluateAccessQuery{
		UserID:   userID,
		CourseID: c.Param("courseId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GrantEntitlement grants course access manually (admin only)
func (h *EnrollmentHandler) GrantEntitlement(c *gin.Context) {
	var req AdminEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	grantedBy := c.GetString(constants.ContextKeyUserID)

	result, err := h.grantUC.Execute(c.Request.Context(), usecases.GrantEntitlementCommand{
		UserID:           req.UserID,
		CourseID:         req.CourseID,
		CourseType:       req.CourseType,
		PaymentReference: enrollment.AdminReference(grantedBy),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("admin grant",
		"granted_by", grantedBy,
		"user_id", req.UserID,
		"course_id", req.CourseID)

	utils.CreatedResponse(c, result, "entitlement granted")
}

// RevokeEntitlement removes a user's entitlements for one course (admin only)
func (h *EnrollmentHandler) RevokeEntitlement(c *gin.Context) {
	var req AdminEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	err := h.revokeUC.Execute(c.Request.Context(), usecases.RevokeEntitlementCommand{
		UserID:     req.UserID,
		CourseID:   req.CourseID,
		CourseType: req.CourseType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("admin revoke",
		"revoked_by", c.GetString(constants.ContextKeyUserID),
		"user_id", req.UserID,
		"course_id", req.CourseID)

	utils.NoContentResponse(c)
}

// canActFor allows a user to read their own data and admins to read anyone's
func (h *EnrollmentHandler) canActFor(c *gin.Context, userID string) bool {
	if c.GetString(constants.ContextKeyUserRole) == constants.RoleAdmin {
		return true
	}
	return c.GetString(constants.ContextKeyUserID) == userID
}
