package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gurukul/internal/application/checkout/usecases"
	"gurukul/internal/shared/constants"
	"gurukul/internal/shared/logger"
	"gurukul/internal/shared/utils"
)

// CheckoutHandler serves the payment flow: order creation against the
// gateway and verification of the gateway's payment confirmation.
type CheckoutHandler struct {
	createOrderUC   createOrderUseCase
	verifyPaymentUC verifyPaymentUseCase
	logger          logger.Interface
}

func NewCheckoutHandler(
	createOrderUC createOrderUseCase,
	verifyPaymentUC verifyPaymentUseCase,
	logger logger.Interface,
) *CheckoutHandler {
	return &CheckoutHandler{
		createOrderUC:   createOrderUC,
		verifyPaymentUC: verifyPaymentUC,
		logger:          logger,
	}
}

type CreateOrderRequest struct {
	CourseID   string `json:"courseId" binding:"required"`
	CourseType string `json:"courseType" binding:"required,coursetype"`
}

// VerifyPaymentRequest carries the gateway's checkout confirmation. Field
// names follow the gateway's client SDK verbatim.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	CourseID          string `json:"courseId" binding:"required"`
	UserID            string `json:"userId" binding:"required"`
	CourseType        string `json:"courseType" binding:"required,coursetype"`
}

type VerifyPaymentResponse struct {
	Status   string `json:"status"`
	CourseID string `json:"courseId"`
}

// CreateOrder creates a payment-gateway order priced from the catalog
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		CourseID:   req.CourseID,
		CourseType: req.CourseType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order created", result)
}

// VerifyPayment validates a payment confirmation and grants the entitlement
func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	// The confirmation must belong to the caller; a mismatching userId would
	// let one account redirect a paid entitlement to another.
	if subject := c.GetString(constants.ContextKeyUserID); subject != req.UserID {
		h.logger.Warnw("payment confirmation user mismatch",
			"token_subject", subject,
			"body_user_id", req.UserID,
			"payment_id", req.RazorpayPaymentID)
		utils.ErrorResponse(c, http.StatusForbidden, "payment confirmation does not match the authenticated user")
		return
	}

	result, err := h.verifyPaymentUC.Execute(c.Request.Context(), usecases.VerifyPaymentCommand{
		OrderID:    req.RazorpayOrderID,
		PaymentID:  req.RazorpayPaymentID,
		Signature:  req.RazorpaySignature,
		CourseID:   req.CourseID,
		UserID:     req.UserID,
		CourseType: req.CourseType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment verified", VerifyPaymentResponse{
		Status:   "success",
		CourseID: result.CourseID,
	})
}
