package main

import (
	"fmt"
	"net/http"

	"github.com/paylite/payslip-backend-go/internal/config"
	appHTTP "github.com/paylite/payslip-backend-go/internal/handler/http"
	"github.com/paylite/payslip-backend-go/internal/pkg/database"
	"github.com/paylite/payslip-backend-go/internal/repository/postgresql"
	employeeService "github.com/paylite/payslip-backend-go/internal/service/employee"
	payslipService "github.com/paylite/payslip-backend-go/internal/service/payslip"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payslipSvc := payslipService.NewPayslipService(payslipRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)

	router := appHTTP.NewRouter(cfg, employeeHandler, payslipHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
