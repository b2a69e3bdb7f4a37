package handler

import (
	"net/http"

	"business_manager/internal/i18n"
	"business_manager/internal/model"
	"business_manager/internal/response"
	"business_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer requests
type CustomerHandler struct {
	service service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// List returns the caller's customers; an empty list is still a 200
func (h *CustomerHandler) List(c *gin.Context) {
	userID, _, ok := authUser(c)
	if !ok {
		return
	}

	customers, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OKWithExtra(c, http.StatusOK, i18n.T(lang(c), i18n.MsgCustomersFound), customers, gin.H{"total": len(customers)})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	userID, _, ok := authUser(c)
	if !ok {
		return
	}

	var req model.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	customer, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, i18n.T(lang(c), i18n.MsgCustomerCreated), customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	userID, role, ok := authUser(c)
	if !ok {
		return
	}
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.Get(c.Request.Context(), customerID, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, i18n.T(lang(c), i18n.MsgCustomerFound), customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	userID, _, ok := authUser(c)
	if !ok {
		return
	}
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	customer, err := h.service.Update(c.Request.Context(), customerID, userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, i18n.T(lang(c), i18n.MsgCustomerUpdated), customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	userID, role, ok := authUser(c)
	if !ok {
		return
	}
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.Delete(c.Request.Context(), customerID, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, i18n.T(lang(c), i18n.MsgCustomerDeleted), customer)
}

// RegisterCustomerRoutes registers customer routes behind sessionMW
func (h *CustomerHandler) RegisterCustomerRoutes(rg *gin.RouterGroup, sessionMW gin.HandlerFunc) {
	customerGroup := rg.Group("/customers", sessionMW)
	{
		customerGroup.GET("", h.List)
		customerGroup.POST("", h.Create)
		customerGroup.GET("/:id", h.Get)
		customerGroup.PUT("/:id", h.Update)
		customerGroup.DELETE("/:id", h.Delete)
	}
}
