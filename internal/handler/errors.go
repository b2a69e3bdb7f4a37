package handler

import (
	"errors"
	"net/http"
	"strconv"

	"business_manager/internal/i18n"
	"business_manager/internal/logging"
	"business_manager/internal/middleware"
	"business_manager/internal/response"
	"business_manager/internal/service"

	"github.com/gin-gonic/gin"
)

func lang(c *gin.Context) string {
	return i18n.FromContext(c.Request.Context())
}

// writeError maps service errors onto localized envelopes. Anything it does
// not recognise is logged and reported as a generic 500.
func writeError(c *gin.Context, err error) {
	l := lang(c)

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		fields := make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			if verr.Reason != "" {
				fields[f] = i18n.T(l, verr.Reason)
			} else {
				fields[f] = i18n.Required(l, f)
			}
		}
		msg := i18n.T(l, i18n.MsgRequiredFields)
		switch {
		case verr.Reason != "":
			msg = i18n.T(l, verr.Reason)
		case len(verr.Fields) == 1:
			msg = i18n.Required(l, verr.Fields[0])
		}
		response.FailWithExtra(c, http.StatusBadRequest, msg, gin.H{"errors": fields})
		return
	}

	switch {
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusBadRequest, i18n.T(l, i18n.MsgUserExists))
	case errors.Is(err, service.ErrUserNotFound):
		response.Fail(c, http.StatusBadRequest, i18n.T(l, i18n.MsgUserNotFound))
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusBadRequest, i18n.T(l, i18n.MsgInvalidPassword))
	case errors.Is(err, service.ErrOverpayment):
		response.Fail(c, http.StatusBadRequest, i18n.T(l, i18n.MsgOverpayment))
	case errors.Is(err, service.ErrTooManyAttempts):
		response.Fail(c, http.StatusTooManyRequests, i18n.T(l, i18n.MsgTooManyAttempts))
	case errors.Is(err, service.ErrCustomerNotFound):
		response.Fail(c, http.StatusNotFound, i18n.T(l, i18n.MsgCustomerNotFound))
	case errors.Is(err, service.ErrPaymentNotFound):
		response.Fail(c, http.StatusNotFound, i18n.T(l, i18n.MsgPaymentNotFound))
	case errors.Is(err, service.ErrUnauthorized):
		response.Fail(c, http.StatusUnauthorized, i18n.T(l, i18n.MsgUnauthorized))
	case errors.Is(err, service.ErrForbidden):
		response.Fail(c, http.StatusForbidden, i18n.T(l, i18n.MsgForbidden))
	default:
		logging.FromContext(c.Request.Context()).Error("request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		response.Fail(c, http.StatusInternalServerError, i18n.T(l, i18n.MsgInternalError))
	}
}

// badRequest answers a body that could not be decoded
func badRequest(c *gin.Context, err error) {
	logging.FromContext(c.Request.Context()).Debug("invalid request body", "error", err)
	response.Fail(c, http.StatusBadRequest, i18n.T(lang(c), i18n.MsgInvalidRequest))
}

// pathID parses a positive integer path parameter, answering 400 when it is not one
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, i18n.T(lang(c), i18n.MsgInvalidID))
		return 0, false
	}
	return id, true
}

// authUser returns the caller set by middleware.RequireSession
func authUser(c *gin.Context) (id int, role string, ok bool) {
	userVal, exists := c.Get(middleware.AuthUserKey)
	id, ok = userVal.(int)
	if !exists || !ok {
		response.Fail(c, http.StatusUnauthorized, i18n.T(lang(c), i18n.MsgUnauthorized))
		return 0, "", false
	}
	role = c.GetString(middleware.AuthRoleKey)
	return id, role, true
}
