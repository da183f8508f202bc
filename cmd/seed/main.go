package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"andaman/internal/database"
	"andaman/internal/domain"
	"andaman/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "andaman.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM vendor_profiles")
	db.Exec("DELETE FROM islands")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	vendors := repository.NewVendorRepository(db)
	islandsRepo := repository.NewIslandRepository(db)
	servicesRepo := repository.NewServiceRepository(db)
	bookings := repository.NewBookingRepository(db)
	reviews := repository.NewReviewRepository(db)

	// ================== ISLANDS ==================
	log.Println("Creating islands...")
	islandNames := map[string]string{
		"Havelock (Swaraj Dweep)": "havelock",
		"Neil (Shaheed Dweep)":    "neil",
		"Port Blair":              "port-blair",
		"Baratang":                "baratang",
		"Ross Island":             "ross-island",
	}
	islands := make([]domain.Island, 0, len(islandNames))
	for name, slug := range islandNames {
		i := domain.Island{Name: name, Slug: slug}
		if err := islandsRepo.Create(ctx, &i); err != nil {
			log.Fatal("island create failed:", err)
		}
		islands = append(islands, i)
	}

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@andaman.travel",
		PasswordHash: string(adminHash),
		RoleID:       domain.RoleAdmin,
		Name:         "Platform Admin",
	}
	mustCreate(users.Create(ctx, &admin))
	log.Println("Admin created: admin@andaman.travel / admin123")

	travelers := []domain.User{}
	for i, email := range []string{"ravi@gmail.com", "meera@yahoo.in", "john@outlook.com"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("traveler123"), bcrypt.DefaultCost)
		t := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			RoleID:       domain.RoleTraveler,
			Name:         fmt.Sprintf("Traveler %d", i+1),
			Phone:        fmt.Sprintf("+91 98765 432%02d", i+10),
		}
		mustCreate(users.Create(ctx, &t))
		travelers = append(travelers, t)
	}

	// Vendors: one per business type, the transport one left unverified so
	// the pending-verification dashboard has a live account to test with.
	type vendorSeed struct {
		email, business, typ string
		verified             int
	}
	seeds := []vendorSeed{
		{"dive@havelock.in", "Havelock Dive School", "activity", 1},
		{"scooters@neil.in", "Neil Island Scooters", "rental", 1},
		{"cabs@portblair.in", "Port Blair Cabs", "transport/car", 0},
		{"resort@havelock.in", "Blue Lagoon Resort", "hotel", 1},
	}
	vendorUsers := []domain.User{}
	for i, vs := range seeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("vendor123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        vs.email,
			PasswordHash: string(hash),
			RoleID:       domain.RoleVendor,
			Name:         fmt.Sprintf("Vendor %d", i+1),
			Phone:        fmt.Sprintf("+91 94762 110%02d", i+20),
		}
		mustCreate(users.Create(ctx, &u))
		vendorUsers = append(vendorUsers, u)

		mustCreate(vendors.Create(ctx, &domain.VendorProfile{
			UserID:       u.ID,
			BusinessName: vs.business,
			Type:         vs.typ,
			Verified:     vs.verified,
			Email:        vs.email,
			Phone:        u.Phone,
			Address:      "Beach Road No 5",
		}))
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	availability, _ := json.Marshal(domain.ServiceAvailability{
		Days:  []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Notes: "Closed during cyclone warnings",
	})

	diveShop := vendorUsers[0]
	scooters := vendorUsers[1]

	seededServices := []domain.VendorService{
		{
			ProviderUserID: diveShop.ID,
			IslandID:       islands[0].ID,
			Type:           "activity",
			Name:           "Discover Scuba Dive",
			Description:    "Beginner friendly shore dive at Nemo Reef",
			Price:          3500,
			Status:         domain.ServiceActive,
			Duration:       3,
			DurationUnit:   "hours",
			Availability:   string(availability),
			EquipmentProvided: []string{
				"Wetsuit", "Regulator", "Dive computer",
			},
		},
		{
			ProviderUserID: diveShop.ID,
			IslandID:       islands[0].ID,
			Type:           "activity",
			Name:           "Night Kayaking",
			Price:          2200,
			Status:         domain.ServiceActive,
			Duration:       2,
			DurationUnit:   "hours",
		},
		{
			ProviderUserID:    scooters.ID,
			IslandID:          islands[1].ID,
			Type:              "rental",
			Name:              "Activa Scooter",
			Description:       "Fuel included for the first 10 km",
			Price:             450,
			Status:            domain.ServiceActive,
			RentalUnit:        "per day",
			QuantityAvailable: 12,
			GeneralAmenities:  []string{"Helmet included", "Phone holder"},
		},
	}
	for i := range seededServices {
		mustCreate(servicesRepo.Create(ctx, &seededServices[i]))
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	statuses := []domain.BookingStatus{
		domain.BookingPending,
		domain.BookingConfirmed,
		domain.BookingCompleted,
		domain.BookingCancelled,
	}
	for i := 0; i < 12; i++ {
		svc := seededServices[rand.Intn(len(seededServices))]
		traveler := travelers[rand.Intn(len(travelers))]
		guests := 1 + rand.Intn(4)
		mustCreate(bookings.Create(ctx, &domain.VendorBooking{
			ServiceID:    svc.ID,
			VendorUserID: svc.ProviderUserID,
			TravelerID:   traveler.ID,
			Date:         time.Now().AddDate(0, 0, rand.Intn(30)-10).Truncate(24 * time.Hour),
			Guests:       guests,
			TotalAmount:  svc.Price * float64(guests),
			Status:       statuses[rand.Intn(len(statuses))],
		}))
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	comments := []string{
		"Amazing experience, instructor was very patient",
		"Would book again",
		"Good value for money",
		"Pickup was on time",
		"Scooter was in great shape",
	}
	for i := 0; i < 5; i++ {
		svc := seededServices[rand.Intn(len(seededServices))]
		traveler := travelers[rand.Intn(len(travelers))]
		mustCreate(reviews.Create(ctx, &domain.VendorReview{
			ServiceID:    svc.ID,
			VendorUserID: svc.ProviderUserID,
			TravelerID:   traveler.ID,
			Rating:       3 + rand.Intn(3),
			Comment:      comments[i%len(comments)],
		}))
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@andaman.travel / admin123")
	log.Println("Travelers: ravi@gmail.com ... / traveler123")
	log.Println("Vendors: dive@havelock.in (verified), cabs@portblair.in (pending) / vendor123")
}

func mustCreate(err error) {
	if err != nil {
		log.Fatal("seed insert failed:", err)
	}
}
