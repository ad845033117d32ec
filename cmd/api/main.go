package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/balapan-hq/payroll-backend-go/internal/config"
	appHTTP "github.com/balapan-hq/payroll-backend-go/internal/handler/http"
	"github.com/balapan-hq/payroll-backend-go/internal/pkg/calendar"
	"github.com/balapan-hq/payroll-backend-go/internal/pkg/cron"
	"github.com/balapan-hq/payroll-backend-go/internal/pkg/database"
	"github.com/balapan-hq/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/balapan-hq/payroll-backend-go/internal/service/attendance"
	payrollService "github.com/balapan-hq/payroll-backend-go/internal/service/payroll"
	"github.com/go-chi/jwtauth/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	workingCalendar := calendar.New(holidayRepo)

	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		scheduleRepo,
		workingCalendar,
		cfg.Payroll,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		scheduleRepo,
		cfg.Payroll,
	)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		tokenAuth,
		payrollHandler,
		attendanceHandler,
		cfg.App.Env,
	)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc, payrollRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		scheduler.Stop()
		db.Close()
		os.Exit(0)
	}()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
