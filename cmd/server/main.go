package main

import (
	"context"
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"medtrack_backend/internal/app/di"
	"medtrack_backend/internal/app/router"
	authadapters "medtrack_backend/internal/feature/auth/adapters"
	authhandler "medtrack_backend/internal/feature/auth/transport/handler"
	authusecase "medtrack_backend/internal/feature/auth/usecase"
	donationadapters "medtrack_backend/internal/feature/donations/adapters"
	donationhandler "medtrack_backend/internal/feature/donations/transport/handler"
	donationusecase "medtrack_backend/internal/feature/donations/usecase"
	medicineadapters "medtrack_backend/internal/feature/medicines/adapters"
	medicinehandler "medtrack_backend/internal/feature/medicines/transport/handler"
	medicineusecase "medtrack_backend/internal/feature/medicines/usecase"
	ngoadapters "medtrack_backend/internal/feature/ngos/adapters"
	ngohandler "medtrack_backend/internal/feature/ngos/transport/handler"
	ngousecase "medtrack_backend/internal/feature/ngos/usecase"
	statisticshandler "medtrack_backend/internal/feature/statistics/transport/handler"
	statisticsusecase "medtrack_backend/internal/feature/statistics/usecase"
	"medtrack_backend/internal/platform/cache"
	"medtrack_backend/internal/platform/db"
	platformredis "medtrack_backend/internal/platform/redis"
	"medtrack_backend/internal/shared/ratelimiter"
)

func main() {
	gormDB := db.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions fall back to the database, NGO cache disabled.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(gormDB)
	sessionRepo := di.NewSessionRepository(rdb, gormDB)
	medicineRepo := medicineadapters.NewMedicineRepository(gormDB)
	donationRepo := donationadapters.NewDonationRepository(gormDB)
	ngoRepo := ngoadapters.NewNGORepository(gormDB)

	if err := ngoRepo.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("failed to seed NGO partners: %v", err)
	}

	// Wrap the NGO list in a Redis cache; with rdb == nil the decorator is a
	// pass-through.
	cachedNGORepo := cache.NewCachingNGORepository(rdb, 5*time.Minute, ngoRepo, "ngos")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo)
	medicineUC := medicineusecase.NewMedicineUsecase(medicineRepo)
	donationUC := donationusecase.NewDonationUsecase(donationRepo)
	ngoUC := ngousecase.NewNGOUsecase(cachedNGORepo)
	statisticsUC := statisticsusecase.NewStatisticsUsecase(medicineRepo, donationRepo)

	// Login throttle: per client IP
	loginLimiter := ratelimiter.NewRateLimiter(10, time.Minute)

	// Handler
	handlers := router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC, loginLimiter),
		Medicines:  medicinehandler.NewMedicineHandler(medicineUC),
		Donations:  donationhandler.NewDonationHandler(donationUC),
		NGOs:       ngohandler.NewNGOHandler(ngoUC),
		Statistics: statisticshandler.NewStatisticsHandler(statisticsUC),
	}

	r := router.NewRouter(handlers, authUC)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
