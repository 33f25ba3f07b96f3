package cart

import (
	"context"
	"errors"
	"fmt"

	"techstore/internal/domain/model"
	repo "techstore/internal/repository"

	"golang.org/x/sync/errgroup"
)

var (
	// 取得自体が失敗した（ストレージ/ネットワーク）。
	ErrProductLookup = errors.New("product lookup failed")
	// カートの商品がもう存在しない。購入全体を拒否する。
	ErrUnknownProduct = errors.New("unknown product in cart")
)

// Resolverが必要とする商品取得だけの約束。
type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)
}

// Line は解決済みのカート1行。
type Line struct {
	Product  model.Product `json:"product"`
	Quantity int64         `json:"quantity"`
}

type Resolver struct {
	products ProductFinder
}

// DI
func NewResolver(products ProductFinder) *Resolver {
	return &Resolver{products: products}
}

// Resolve はTokenを数量付きの商品行に解決する。
// ユニークなIDごとに1回ずつ並行で引く。完了順は結果に影響しない
// （IDで突き合わせてから初出順に並べ直す）。
func (r *Resolver) Resolve(ctx context.Context, t Token) ([]Line, error) {
	uniqueIDs := t.UniqueIDs()
	if len(uniqueIDs) == 0 {
		return []Line{}, nil
	}
	counts := t.Counts()

	// スライスはインデックスごとに別のgoroutineが書くので共有状態は持たない
	results := make([]model.Product, len(uniqueIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range uniqueIDs {
		i, id := i, id
		g.Go(func() error {
			p, err := r.products.FindByID(gctx, id)
			if errors.Is(err, repo.ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrUnknownProduct, id)
			}
			if err != nil {
				return fmt.Errorf("%w: %v", ErrProductLookup, err)
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(uniqueIDs))
	for i, id := range uniqueIDs {
		lines = append(lines, Line{Product: results[i], Quantity: counts[id]})
	}
	return lines, nil
}

// LinesFromProducts はまとめて引いた商品列から行を作る。
// 数量はTokenの出現回数、順序は初出順。見つからないIDがあればエラー。
func LinesFromProducts(t Token, products []model.Product) ([]Line, error) {
	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	counts := t.Counts()
	lines := make([]Line, 0, len(counts))
	for _, id := range t.UniqueIDs() {
		p, exists := byID[id]
		if !exists {
			return nil, fmt.Errorf("%w: %d", ErrUnknownProduct, id)
		}
		lines = append(lines, Line{Product: p, Quantity: counts[id]})
	}
	return lines, nil
}
