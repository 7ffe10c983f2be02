package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fleetrental/internal/database"
	"fleetrental/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fleet.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.Trailer{},
		&domain.Rental{},
		&domain.RentalTrailer{},
		&domain.RentalHistory{},
		&domain.TrailerLog{},
		&domain.ServiceHistory{},
		&domain.WarehouseItem{},
		&domain.WarehouseLog{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children before parents to keep FKs happy)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM warehouse_logs")
	db.Exec("DELETE FROM warehouse_items")
	db.Exec("DELETE FROM service_histories")
	db.Exec("DELETE FROM trailer_logs")
	db.Exec("DELETE FROM rental_histories")
	db.Exec("DELETE FROM rental_trailers")
	db.Exec("DELETE FROM rentals")
	db.Exec("DELETE FROM trailers")
	db.Exec("DELETE FROM companies")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin / admin123")

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		Username:     "manager",
		PasswordHash: string(managerHash),
		Role:         domain.RoleManager,
	}
	db.Create(&manager)
	log.Println("Manager created: manager / manager123")

	// ================== TRAILERS ==================
	log.Println("Creating trailers...")

	trailers := make([]domain.Trailer, 0, 6)
	for i := 1; i <= 6; i++ {
		status := domain.TrailerActive
		if i == 6 {
			status = domain.TrailerInactive
		}
		t := domain.Trailer{
			Name:               fmt.Sprintf("T-%d00", i),
			IPAddress:          fmt.Sprintf("10.0.0.%d", i),
			SerialNumber:       fmt.Sprintf("SN-2024-%04d", i),
			RegistrationNumber: fmt.Sprintf("WX %d%d%d%d", i, i+1, i+2, i+3),
			OperatorPhone:      fmt.Sprintf("+48 600 100 %03d", i),
			Status:             status,
		}
		db.Create(&t)
		trailers = append(trailers, t)
	}

	// ================== COMPANIES & RENTALS ==================
	log.Println("Creating companies and rentals...")

	companies := []domain.Company{
		{Name: "Nordic Haulage", Email: "dispatch@nordichaulage.example", Phone: "+48 22 100 20 30"},
		{Name: "Vistula Logistics", Email: "office@vistulalog.example", Phone: "+48 22 200 30 40"},
	}
	for i := range companies {
		db.Create(&companies[i])
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	rentals := []domain.Rental{
		{
			Name:         "Spring haul",
			CompanyID:    companies[0].ID,
			StartDate:    monthStart,
			EndDate:      monthStart.AddDate(0, 0, 13),
			MonthlyPrice: 3000,
		},
		{
			Name:         "Harbor shuttle",
			CompanyID:    companies[1].ID,
			StartDate:    monthStart.AddDate(0, 0, 20),
			EndDate:      monthStart.AddDate(0, 1, 4),
			MonthlyPrice: 4500,
		},
	}
	for i := range rentals {
		rentals[i].DeriveCost()
		db.Create(&rentals[i])
	}

	for i, r := range rentals {
		link := domain.RentalTrailer{RentalID: r.ID, TrailerID: trailers[i].ID}
		db.Create(&link)
		db.Create(&domain.RentalHistory{
			RentalID:    r.ID,
			Description: fmt.Sprintf("Trailer %s was added to the rental.", trailers[i].Name),
			UserID:      &admin.ID,
		})
	}

	// ================== WAREHOUSE ==================
	log.Println("Creating warehouse items...")

	items := []domain.WarehouseItem{
		{Name: "Brake pads", Quantity: 24, DateState: monthStart},
		{Name: "Axle grease 5L", Quantity: 3, DateState: monthStart},
		{Name: "Marker lights", Quantity: 40, DateState: monthStart},
	}
	for i := range items {
		db.Create(&items[i])
		db.Create(&domain.WarehouseLog{
			ItemID:        items[i].ID,
			UserID:        &admin.ID,
			QuantityTaken: items[i].Quantity,
			Message:       fmt.Sprintf("admin added %d pcs of item '%s'.", items[i].Quantity, items[i].Name),
		})
	}

	log.Println("Seed completed.")
}
