package routes

import (
	"upi_escrow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addEscrowRoutes(rg *gin.RouterGroup, paymentHandler *handlers.EscrowPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.POST("/:id/confirm", paymentHandler.ConfirmPayment)
		payments.POST("/:id/cancel", paymentHandler.CancelPayment)
		payments.GET("/:id", paymentHandler.GetPayment)
	}
}
