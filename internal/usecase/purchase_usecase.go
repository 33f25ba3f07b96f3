package usecase

import (
	"context"
	"net/http"
	"strings"

	"techstore/internal/cart"
	"techstore/internal/domain/model"
	repo "techstore/internal/repository"

	"github.com/shopspring/decimal"
)

// PurchaseUsecase は POST /products/purchase の業務ロジック。
// 検証は全部書き込みの前に終わらせ、書き込みは1トランザクションで行う。
type PurchaseUsecase struct {
	productRepo repo.ProductRepository
	tx          repo.TransactionManager
}

func NewPurchaseUsecase(productRepo repo.ProductRepository, tx repo.TransactionManager) *PurchaseUsecase {
	return &PurchaseUsecase{productRepo: productRepo, tx: tx}
}

type PurchaseInput struct {
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string

	CreditCard   string
	CreditExpire string
	CreditCVV    string

	//CartToken（カンマ区切りの商品ID列）
	Cart string

	//クライアント計算の金額。無ければサーバ側で計算する。
	InvoiceAmt   *decimal.Decimal
	InvoiceTax   *decimal.Decimal
	InvoiceTotal *decimal.Decimal
}

type PurchaseItemOutput struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	Quantity  int64           `json:"quantity"`
}

type PurchaseOutput struct {
	PurchaseID int64                `json:"purchase_id"`
	Items      []PurchaseItemOutput `json:"items"`
}

// Purchase はカートを検証して購入ヘッダと明細を作る。
// 数量はCartToken内の出現回数が正（クライアントの数量フィールドは受け取らない）。
// カートに存在しない商品が1つでもあれば全体を拒否する。
func (u *PurchaseUsecase) Purchase(ctx context.Context, customerID int64, in PurchaseInput) (PurchaseOutput, error) {
	//入口ガード：セッション由来の会員IDが無ければ何もせず401
	if customerID <= 0 {
		return PurchaseOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := validateShippingAndPayment(in); err != nil {
		return PurchaseOutput{}, err
	}

	token, err := cart.ParseToken(in.Cart)
	if err != nil {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart")
	}
	if token.IsEmpty() {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	//ユニークなID集合をまとめて引いて、数が合わなければ拒否
	uniqueIDs := token.UniqueIDs()
	products, err := u.productRepo.FindByIDs(ctx, uniqueIDs)
	if err != nil {
		return PurchaseOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(products) != len(uniqueIDs) {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "cart contains unknown product")
	}

	lines, err := cart.LinesFromProducts(token, products)
	if err != nil {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "cart contains unknown product")
	}

	amt, tax, total := invoiceTotals(in, lines)

	items := make([]model.PurchaseItem, 0, len(lines))
	outItems := make([]PurchaseItemOutput, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.PurchaseItem{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
		})
		outItems = append(outItems, PurchaseItemOutput{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Cost:      l.Product.Cost,
			Quantity:  l.Quantity,
		})
	}

	var purchaseID int64

	//ヘッダと明細は同じトランザクション。ここから先の失敗は500のみ。
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Purchases().Create(ctx, model.Purchase{
			CustomerID:   customerID,
			Street:       strings.TrimSpace(in.Street),
			City:         strings.TrimSpace(in.City),
			Province:     strings.TrimSpace(in.Province),
			Country:      strings.TrimSpace(in.Country),
			PostalCode:   strings.TrimSpace(in.PostalCode),
			CreditCard:   in.CreditCard,
			CreditExpire: in.CreditExpire,
			CreditCVV:    in.CreditCVV,
			InvoiceAmt:   amt,
			InvoiceTax:   tax,
			InvoiceTotal: total,
		})
		if err != nil {
			return err
		}

		if err := r.PurchaseItems().CreateBulk(ctx, id, items); err != nil {
			return err
		}

		purchaseID = id
		return nil
	})
	if err != nil {
		return PurchaseOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PurchaseOutput{PurchaseID: purchaseID, Items: outItems}, nil
}

func validateShippingAndPayment(in PurchaseInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"street", in.Street},
		{"city", in.City},
		{"province", in.Province},
		{"country", in.Country},
		{"postal_code", in.PostalCode},
		{"credit_card", in.CreditCard},
		{"credit_expire", in.CreditExpire},
		{"credit_cvv", in.CreditCVV},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return NewHTTPError(http.StatusBadRequest, f.name+" is required")
		}
	}
	return nil
}

// クライアントが3つとも送ってきたらそれを保存し、そうでなければ計算する。
func invoiceTotals(in PurchaseInput, lines []cart.Line) (amt, tax, total decimal.Decimal) {
	if in.InvoiceAmt != nil && in.InvoiceTax != nil && in.InvoiceTotal != nil {
		return *in.InvoiceAmt, *in.InvoiceTax, *in.InvoiceTotal
	}
	t := cart.ComputeTotals(lines)
	return t.Subtotal, t.Tax, t.Total
}
