package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"upi_escrow/internal/adapter/http/dto/request"
	"upi_escrow/internal/adapter/http/dto/response"
	"upi_escrow/internal/adapter/http/middleware"
	"upi_escrow/internal/domain/entities"
	"upi_escrow/internal/usecase"
	"upi_escrow/pkg"

	"github.com/gin-gonic/gin"
)

// EscrowPaymentHandler exposes the escrow ledger over HTTP.

type EscrowPaymentHandler struct {
	usecase usecase.IEscrowLedgerUseCase
}

func NewEscrowPaymentHandler(uc usecase.IEscrowLedgerUseCase) *EscrowPaymentHandler {
	return &EscrowPaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Open an escrow payment
// @Description  Records a PENDING payment from user to merchant. The bearer token must prove the user's identity. An existing id is overwritten.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payment  body      request.CreatePaymentRequest  true  "Payment"
// @Success      200      {object}  response.PaymentMutationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *EscrowPaymentHandler) CreatePayment(c *gin.Context) {
	requestID := middleware.RequestIDFrom(c)
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[escrow][handler] create invalid payload request_id=%s err=%v", requestID, err)
		respondError(c, invalidRequest())
		return
	}
	id, err := req.ResolveID()
	if err != nil {
		respondError(c, mapEscrowError(err))
		return
	}
	user, err := req.ResolveUser()
	if err != nil {
		respondError(c, mapEscrowError(err))
		return
	}
	merchant, err := req.ResolveMerchant()
	if err != nil {
		respondError(c, mapEscrowError(err))
		return
	}
	amount, err := req.ResolveAmount()
	if err != nil {
		respondError(c, mapEscrowError(err))
		return
	}
	log.Printf("[escrow][handler] create start request_id=%s payment_id=%d", requestID, id)

	created, err := h.usecase.CreatePayment(c.Request.Context(), bearerProof(c), id, user, merchant, amount)
	if err != nil {
		log.Printf("[escrow][handler] create failed request_id=%s payment_id=%d err=%v", requestID, id, err)
		respondError(c, mapEscrowError(err))
		return
	}
	log.Printf("[escrow][handler] create success request_id=%s payment_id=%d status=%s", requestID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.SucceededWith(created))
}

// ConfirmPayment godoc
// @Summary      Confirm an escrow payment
// @Description  The payment's merchant marks it COMPLETE. The bearer token must prove the merchant's identity.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                         true  "Payment id"
// @Param        body  body      request.ConfirmPaymentRequest  true  "Merchant"
// @Success      200   {object}  response.PaymentMutationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /payments/{id}/confirm [post]
func (h *EscrowPaymentHandler) ConfirmPayment(c *gin.Context) {
	requestID := middleware.RequestIDFrom(c)
	id, err := request.ParsePaymentID(c.Param("id"))
	if err != nil {
		log.Printf("[escrow][handler] confirm invalid id request_id=%s id=%q", requestID, c.Param("id"))
		respondError(c, mapEscrowError(err))
		return
	}
	var req request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[escrow][handler] confirm invalid payload request_id=%s payment_id=%d err=%v", requestID, id, err)
		respondError(c, invalidRequest())
		return
	}
	merchant, err := req.ResolveMerchant()
	if err != nil {
		respondError(c, mapEscrowError(err))
		return
	}
	log.Printf("[escrow][handler] confirm start request_id=%s payment_id=%d", requestID, id)

	confirmed, err := h.usecase.ConfirmPayment(c.Request.Context(), bearerProof(c), id, merchant)
	if err != nil {
		log.Printf("[escrow][handler] confirm failed request_id=%s payment_id=%d err=%v", requestID, id, err)
		respondError(c, mapEscrowError(err))
		return
	}
	log.Printf("[escrow][handler] confirm success request_id=%s payment_id=%d status=%s", requestID, id, confirmed.Status)

	c.JSON(http.StatusOK, response.SucceededWith(confirmed))
}

// CancelPayment godoc
// @Summary      Cancel an escrow payment
// @Description  The payment's user marks it CANCELED. The bearer token must prove the user's identity.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                        true  "Payment id"
// @Param        body  body      request.CancelPaymentRequest  true  "User"
// @Success      200   {object}  response.PaymentMutationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /payments/{id}/cancel [post]
func (h *EscrowPaymentHandler) CancelPayment(c *gin.Context) {
	requestID := middleware.RequestIDFrom(c)
	id, err := request.ParsePaymentID(c.Param("id"))
	if err != nil {
		log.Printf("[escrow][handler] cancel invalid id request_id=%s id=%q", requestID, c.Param("id"))
		respondError(c, mapEscrowError(err))
		return
	}
	var req request.CancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[escrow][handler] cancel invalid payload request_id=%s payment_id=%d err=%v", requestID, id, err)
		respondError(c, invalidRequest())
		return
	}
	user, err := req.ResolveUser()
	if err != nil {
		respondError(c, mapEscrowError(err))
		return
	}
	log.Printf("[escrow][handler] cancel start request_id=%s payment_id=%d", requestID, id)

	canceled, err := h.usecase.CancelPayment(c.Request.Context(), bearerProof(c), id, user)
	if err != nil {
		log.Printf("[escrow][handler] cancel failed request_id=%s payment_id=%d err=%v", requestID, id, err)
		respondError(c, mapEscrowError(err))
		return
	}
	log.Printf("[escrow][handler] cancel success request_id=%s payment_id=%d status=%s", requestID, id, canceled.Status)

	c.JSON(http.StatusOK, response.SucceededWith(canceled))
}

// GetPayment godoc
// @Summary      Get an escrow payment
// @Description  Reads the stored record. No authorization is required.
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *EscrowPaymentHandler) GetPayment(c *gin.Context) {
	requestID := middleware.RequestIDFrom(c)
	id, err := request.ParsePaymentID(c.Param("id"))
	if err != nil {
		log.Printf("[escrow][handler] get invalid id request_id=%s id=%q", requestID, c.Param("id"))
		respondError(c, mapEscrowError(err))
		return
	}

	p, err := h.usecase.GetPayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[escrow][handler] get failed request_id=%s payment_id=%d err=%v", requestID, id, err)
		respondError(c, mapEscrowError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// bearerProof returns the token from "Authorization: Bearer <token>", or an
// empty proof when the header is absent or uses another scheme.
func bearerProof(c *gin.Context) entities.AuthorizationProof {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return entities.AuthorizationProof(strings.TrimSpace(token))
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

func mapEscrowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidPaymentID),
		errors.Is(err, request.ErrInvalidPaymentAmount),
		errors.Is(err, request.ErrMissingPrincipal),
		errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidPrincipal):
		return invalidRequest()
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentState):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATE", "Payment is no longer pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
