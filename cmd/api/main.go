package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wagebook/wagebook-backend-go/internal/config"
	appHTTP "github.com/wagebook/wagebook-backend-go/internal/handler/http"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
	"github.com/wagebook/wagebook-backend-go/internal/repository/postgresql"
	attendanceService "github.com/wagebook/wagebook-backend-go/internal/service/attendance"
	ledgerService "github.com/wagebook/wagebook-backend-go/internal/service/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/service/master"
	paymentService "github.com/wagebook/wagebook-backend-go/internal/service/payment"
	workerService "github.com/wagebook/wagebook-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgresql.Bootstrap(ctx, db); err != nil {
		fmt.Println("Error applying schema:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)
	subcategoryRepo := postgresql.NewSubcategoryRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)

	ledgerSvc := ledgerService.NewLedgerService(ledgerRepo)
	workerSvc := workerService.NewWorkerService(workerRepo, auditRepo, ledgerSvc)
	masterSvc := master.NewMasterService(categoryRepo, subcategoryRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		workerRepo,
		categoryRepo,
		subcategoryRepo,
		auditRepo,
		ledgerSvc,
	)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, workerRepo, auditRepo, ledgerSvc)

	if err := masterSvc.SeedDefaults(ctx); err != nil {
		fmt.Println("Error seeding default categories:", err)
		return
	}

	workerHandler := appHTTP.NewWorkerHandler(workerSvc, ledgerSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	reportHandler := appHTTP.NewReportHandler(ledgerSvc)

	router := appHTTP.NewRouter(
		cfg,
		workerHandler,
		masterHandler,
		attendanceHandler,
		paymentHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
