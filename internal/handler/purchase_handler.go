package handler

import (
	"net/http"

	"techstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// POST /products/purchase のHTTP
type PurchaseHandler struct {
	uc *usecase.PurchaseUsecase
}

// DI
func NewPurchaseHandler(uc *usecase.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

type PurchaseRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`

	CreditCard   string `json:"credit_card"`
	CreditExpire string `json:"credit_expire"`
	CreditCVV    string `json:"credit_cvv"`

	Cart string `json:"cart"`

	InvoiceAmt   *decimal.Decimal `json:"invoice_amt,omitempty"`
	InvoiceTax   *decimal.Decimal `json:"invoice_tax,omitempty"`
	InvoiceTotal *decimal.Decimal `json:"invoice_total,omitempty"`
}

type PurchaseResponse struct {
	Message    string                       `json:"message"`
	PurchaseID int64                        `json:"purchase_id"`
	Items      []usecase.PurchaseItemOutput `json:"items"`
}

func (h *PurchaseHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/products/purchase", h.purchase)
}

func (h *PurchaseHandler) purchase(c echo.Context) error {
	//未ログインはbodyを見る前に401
	customerID, ok := getCustomerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Purchase(c.Request().Context(), customerID, usecase.PurchaseInput{
		Street:       req.Street,
		City:         req.City,
		Province:     req.Province,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		CreditCard:   req.CreditCard,
		CreditExpire: req.CreditExpire,
		CreditCVV:    req.CreditCVV,
		Cart:         req.Cart,
		InvoiceAmt:   req.InvoiceAmt,
		InvoiceTax:   req.InvoiceTax,
		InvoiceTotal: req.InvoiceTotal,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, PurchaseResponse{
		Message:    "purchase completed",
		PurchaseID: out.PurchaseID,
		Items:      out.Items,
	})
}
