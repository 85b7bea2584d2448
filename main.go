package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/restaurant-reservation/config"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/router"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/storage"
	"github.com/yeremiapane/restaurant-reservation/store"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	// Override secret dari init utils; .env baru terbaca setelah package
	// utils selesai init.
	utils.JWTSecret = []byte(cfg.JWTSecret)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Persistence collaborator (pengganti localStorage)
	persistence, err := storage.Open(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open storage: %v", err)
	}

	st := store.New(persistence, store.RealClock{})
	if err := st.Load(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to load store: %v", err)
	}
	seedUsers(st)

	// Sweep penyelesaian otomatis reservasi seated
	notifier := services.NewStoreNotifier(st)
	monitor := services.NewAutoCompleteMonitor(st, notifier)
	monitor.Interval = cfg.SweepInterval
	if cfg.AutoComplete {
		monitor.Start()
		defer monitor.Stop()
	}

	r := router.SetupRouter(st, monitor)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// seedUsers mengisi user demo saat store masih kosong, satu per role.
func seedUsers(st *store.Store) {
	if len(st.Users()) > 0 {
		return
	}

	defaults := []struct {
		Username   string
		Password   string
		Name       string
		Email      string
		Role       string
		Department string
	}{
		{"Admin123", "Admin@123", "System Administrator", "admin@restaurant.com", models.RoleAdmin, "Management"},
		{"Waiter123", "Waiter@123", "John Smith", "john.smith@restaurant.com", models.RoleWaiter, "Front of House"},
		{"Cashier123", "Cashier@123", "Sarah Johnson", "sarah.johnson@restaurant.com", models.RoleCashier, "Front of House"},
		{"Kitchen123", "Kitchen@123", "Mike Rodriguez", "mike.rodriguez@restaurant.com", models.RoleKitchen, "Kitchen"},
		{"Delivery123", "Delivery@123", "David Wilson", "david.wilson@restaurant.com", models.RoleDelivery, "Delivery"},
		{"Customer123", "Customer@123", "Emma Davis", "emma.davis@email.com", models.RoleCustomer, "Customer"},
	}

	for _, d := range defaults {
		hashed, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to hash seed password: %v", err)
		}
		if _, err := st.CreateUser(store.UserInput{
			Username:   d.Username,
			Password:   string(hashed),
			Name:       d.Name,
			Email:      d.Email,
			Role:       d.Role,
			Department: d.Department,
		}); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed user %s: %v", d.Username, err)
		}
	}
	utils.InfoLogger.Printf("Seeded %d default users", len(defaults))
}
