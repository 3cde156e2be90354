package main

import (
	"github.com/mduy26100/ZTino-Shop-sub000/internal/config"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/handler"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/infra/db"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/infra/payment"
	infraRepo "github.com/mduy26100/ZTino-Shop-sub000/internal/infra/repository"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/server"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .envがあれば読む（無くても動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.GoEnv == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Cart{},
		&model.CartItem{},
		&model.ProductVariant{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderAddress{},
		&model.OrderStatusHistory{},
	); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	// Repository（GORM実装）生成
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// 決済側への通知（ログ実装）
	paymentProcessor := payment.NewLoggingProcessor(logger)

	// Usecase生成。遷移表はロール別に注入する
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, variantRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	statusUC := usecase.NewOrderStatusUsecase(txManager, model.CustomerTransitions(), paymentProcessor, logger)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, model.ManagerTransitions(), paymentProcessor, logger)

	// Handler生成
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC, statusUC)
	adminOrderH := handler.NewAdminOrderHandler(adminOrderUC)

	// Server起動
	if err := server.Start(cfg, logger, cartH, orderH, adminOrderH); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
