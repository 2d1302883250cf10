package main

import (
	"fmt"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/worklog-hq/attendance-backend-go/internal/handler/http"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/cron"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/worklog-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklog-hq/attendance-backend-go/internal/service/attendance"
	authService "github.com/worklog-hq/attendance-backend-go/internal/service/auth"
	employeeService "github.com/worklog-hq/attendance-backend-go/internal/service/employee"
	scheduleService "github.com/worklog-hq/attendance-backend-go/internal/service/schedule"
	vacationService "github.com/worklog-hq/attendance-backend-go/internal/service/vacation"
	workplaceService "github.com/worklog-hq/attendance-backend-go/internal/service/workplace"
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
	workplaceRepo := postgresql.NewWorkplaceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, employeeRepo, jwtService, jwtRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, scheduleRepo, workplaceRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	workplaceSvc := workplaceService.NewWorkplaceService(workplaceRepo)
	vacationSvc := vacationService.NewVacationService(vacationRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Workplace:  appHTTP.NewWorkplaceHandler(workplaceSvc),
		Vacation:   appHTTP.NewVacationHandler(vacationSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
	}

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
