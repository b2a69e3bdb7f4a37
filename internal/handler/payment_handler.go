package handler

import (
	"net/http"

	"business_manager/internal/i18n"
	"business_manager/internal/model"
	"business_manager/internal/response"
	"business_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment and installment requests
type PaymentHandler struct {
	service service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	userID, _, ok := authUser(c)
	if !ok {
		return
	}
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	payment, err := h.service.Create(c.Request.Context(), customerID, userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, i18n.T(lang(c), i18n.MsgPaymentCreated), payment)
}

func (h *PaymentHandler) ListByCustomer(c *gin.Context) {
	userID, role, ok := authUser(c)
	if !ok {
		return
	}
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	payments, err := h.service.ListByCustomer(c.Request.Context(), customerID, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OKWithExtra(c, http.StatusOK, i18n.T(lang(c), i18n.MsgPaymentsFound), payments, gin.H{"total": len(payments)})
}

func (h *PaymentHandler) RecordInstallment(c *gin.Context) {
	userID, _, ok := authUser(c)
	if !ok {
		return
	}
	paymentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.InstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	installment, payment, err := h.service.RecordInstallment(c.Request.Context(), paymentID, userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, i18n.T(lang(c), i18n.MsgInstallmentAdded), gin.H{
		"installment": installment,
		"payment":     payment,
	})
}

func (h *PaymentHandler) ListInstallments(c *gin.Context) {
	userID, role, ok := authUser(c)
	if !ok {
		return
	}
	paymentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	installments, err := h.service.ListInstallments(c.Request.Context(), paymentID, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OKWithExtra(c, http.StatusOK, i18n.T(lang(c), i18n.MsgInstallments), installments, gin.H{"total": len(installments)})
}

// RegisterPaymentRoutes registers payment routes behind sessionMW
func (h *PaymentHandler) RegisterPaymentRoutes(rg *gin.RouterGroup, sessionMW gin.HandlerFunc) {
	rg.GET("/customers/:id/payments", sessionMW, h.ListByCustomer)
	rg.POST("/customers/:id/payments", sessionMW, h.Create)

	paymentGroup := rg.Group("/payments", sessionMW)
	{
		paymentGroup.GET("/:id/installments", h.ListInstallments)
		paymentGroup.POST("/:id/installments", h.RecordInstallment)
	}
}
