package main

import (
	"techstore/internal/cart"
	"techstore/internal/config"
	"techstore/internal/domain/model"
	"techstore/internal/handler"
	"techstore/internal/infra/db"
	infraRepo "techstore/internal/infra/repository"
	"techstore/internal/server"
	"techstore/internal/session"
	"techstore/internal/usecase"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Purchase{},
		&model.PurchaseItem{},
	); err != nil {
		panic(err)
	}

	//セッションストア（redis）
	rdb := session.NewRedisClient(cfg.RedisAddr)
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	purchaseUC := usecase.NewPurchaseUsecase(productRepo, txManager)
	authUC := usecase.NewAuthUsecase(customerRepo, sessions, bcrypt.DefaultCost)

	//カート解決（ユニーク商品ごとに並行で引く）
	resolver := cart.NewResolver(productRepo)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	purchaseH := handler.NewPurchaseHandler(purchaseUC)
	userH := handler.NewUserHandler(authUC, cfg)
	cartH := handler.NewCartHandler(resolver, cfg)

	//Server起動
	srv := server.New(cfg, sessions, productH, purchaseH, userH, cartH)
	if err := srv.Start(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
		panic(err)
	}
}
