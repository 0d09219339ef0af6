package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/careerbridge/recruit-backend-go/internal/config"
	"github.com/careerbridge/recruit-backend-go/internal/domain/calendar"
	appHTTP "github.com/careerbridge/recruit-backend-go/internal/handler/http"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/cron"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/database"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/jwt"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/retry"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/sse"
	"github.com/careerbridge/recruit-backend-go/internal/repository/postgresql"
	"github.com/careerbridge/recruit-backend-go/internal/repository/rediscache"
	applicationService "github.com/careerbridge/recruit-backend-go/internal/service/application"
	calendarService "github.com/careerbridge/recruit-backend-go/internal/service/calendar"
	interviewService "github.com/careerbridge/recruit-backend-go/internal/service/interview"
	notificationService "github.com/careerbridge/recruit-backend-go/internal/service/notification"
	schedulingService "github.com/careerbridge/recruit-backend-go/internal/service/scheduling"
	"github.com/redis/go-redis/v9"
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

	if err := postgresql.RunMigrations(context.Background(), db); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	appRepo := postgresql.NewApplicationRepository(db)
	interviewRepo := postgresql.NewInterviewRepository(db)
	eventRepo := postgresql.NewCalendarEventRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	// Schedule cache is optional; without Redis every schedule read hits
	// the database.
	var scheduleCache calendar.ScheduleCache
	if addr := cfg.RedisAddr(); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		scheduleCache = rediscache.NewScheduleCache(redisClient)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notificationSvc.Stop()

	appSvc := applicationService.NewApplicationService(appRepo, notificationSvc)
	interviewSvc := interviewService.NewInterviewService(interviewRepo, appRepo)
	calendarSvc := calendarService.NewCalendarService(eventRepo, interviewRepo, scheduleCache)
	coordinator := schedulingService.NewCoordinator(
		interviewSvc,
		interviewRepo,
		appRepo,
		calendarSvc,
		notificationSvc,
		db,
		retry.CalendarSyncRetrier(),
	)

	scheduler := cron.NewScheduler()
	calendarJobs := cron.NewCalendarJobs(coordinator, calendarSvc, cfg.Jobs.SyncBatchSize)
	calendarJobs.RegisterJobs(scheduler, cfg.Jobs.CalendarSyncInterval, cfg.Jobs.EventSweepInterval)
	scheduler.Start()
	defer scheduler.Stop()

	applicationHandler := appHTTP.NewApplicationHandler(appSvc)
	interviewHandler := appHTTP.NewInterviewHandler(coordinator, interviewSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(calendarSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		applicationHandler,
		interviewHandler,
		scheduleHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Shutdown(context.Background()); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
