package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "expenseflow-backend/internal/adapter/http"
	"expenseflow-backend/internal/adapter/middleware"
	"expenseflow-backend/internal/adapter/repository/mysql"
	"expenseflow-backend/internal/config"
	"expenseflow-backend/internal/domain/user"
	"expenseflow-backend/internal/infrastructure/cache"
	"expenseflow-backend/internal/infrastructure/currency"
	"expenseflow-backend/internal/infrastructure/db"
	"expenseflow-backend/internal/usecase/auth"
	"expenseflow-backend/internal/usecase/directory"
	"expenseflow-backend/internal/usecase/expense"
	"expenseflow-backend/internal/usecase/policy"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB, 5*time.Second)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	converter := currency.NewClient(
		currency.WithBaseURLs(cfg.CountriesAPIURL, cfg.RatesAPIURL),
		currency.WithCache(rdb, time.Hour),
	)

	uow := mysql.NewGormUoW(gdb)
	jwtExpiry := time.Duration(cfg.JWTExpiryMins) * time.Minute

	authUC := auth.NewUsecase(uow, converter, cfg.JWTSecret, jwtExpiry)
	directoryUC := directory.NewUsecase(uow)
	policyUC := policy.NewUsecase(uow)
	expenseUC := expense.NewUsecase(uow, converter)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	adminH := httpadp.NewAdminHandler(directoryUC, policyUC)
	expenseH := httpadp.NewExpenseHandler(expenseUC)
	approvalH := httpadp.NewApprovalHandler(expenseUC)
	receiptH := httpadp.NewReceiptHandler()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	authMW := middleware.JWTAuth(cfg.JWTSecret)
	idempMW := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	adminOnly := middleware.RequireRoles(string(user.RoleAdmin))
	approverOnly := middleware.RequireRoles(string(user.RoleManager), string(user.RoleAdmin))

	// routes
	e.GET("/health", h.Health)

	e.POST("/auth/signup", authH.Signup)
	e.POST("/auth/login", authH.Login)
	e.GET("/auth/me", authH.Me, authMW)

	admin := e.Group("/admin", authMW, adminOnly)
	admin.POST("/users", adminH.CreateUser, idempMW)
	admin.GET("/users", adminH.ListUsers)
	admin.POST("/rules", adminH.CreateRule, idempMW)
	admin.GET("/rules", adminH.ListRules)

	e.POST("/expenses", expenseH.Submit, authMW, idempMW)
	e.GET("/expenses/my", expenseH.Mine, authMW)
	e.GET("/expenses/:expense_id/steps", expenseH.Steps, authMW)

	e.GET("/approvals/pending", approvalH.Pending, authMW, approverOnly)
	e.POST("/approvals/:expense_id/act", approvalH.Act, authMW, approverOnly, idempMW)

	e.POST("/receipts/parse", receiptH.Parse, authMW)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
