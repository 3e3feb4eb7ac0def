package main

import (
	"context"
	"log"

	"doctorsportal/config"
	"doctorsportal/database"
	catalogRepo "doctorsportal/database/repository/catalog"
	"doctorsportal/models"
)

// Seeds the treatment catalog with the clinic's bookable services. Safe to
// re-run; options are upserted by name.
func main() {
	config.LoadConfig()

	ctx := context.Background()
	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(ctx, client); err != nil {
			log.Printf("failed to disconnect: %v", err)
		}
	}()

	db := client.Database(config.AppConfig.DatabaseName)
	catalog := catalogRepo.NewMongoCatalogRepo(db)

	daySlots := []string{
		"08.00 AM - 08.30 AM",
		"08.30 AM - 09.00 AM",
		"09.00 AM - 09.30 AM",
		"09.30 AM - 10.00 AM",
		"10.00 AM - 10.30 AM",
		"10.30 AM - 11.00 AM",
		"11.00 AM - 11.30 AM",
		"11.30 AM - 12.00 PM",
		"01.00 PM - 01.30 PM",
		"01.30 PM - 02.00 PM",
		"02.00 PM - 02.30 PM",
		"02.30 PM - 03.00 PM",
		"03.00 PM - 03.30 PM",
		"03.30 PM - 04.00 PM",
		"04.00 PM - 04.30 PM",
	}

	options := []models.AppointmentOption{
		{Name: "Teeth Orthodontics", Slots: daySlots, Price: 100},
		{Name: "Cosmetic Dentistry", Slots: daySlots, Price: 300},
		{Name: "Teeth Cleaning", Slots: daySlots, Price: 80},
		{Name: "Cavity Protection", Slots: daySlots, Price: 60},
		{Name: "Pediatric Dental", Slots: daySlots, Price: 120},
		{Name: "Oral Surgery", Slots: daySlots, Price: 500},
	}

	for _, opt := range options {
		if err := catalog.Upsert(opt); err != nil {
			log.Fatalf("failed to seed option %q: %v", opt.Name, err)
		}
		log.Printf("seeded %q (%d slots)", opt.Name, len(opt.Slots))
	}

	log.Printf("catalog seeding complete: %d options", len(options))
}
