package vehicles

import (
	"log"

	"github.com/sudeys05/police-system/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&PoliceVehicle{}); err != nil {
		log.Fatal("Failed to auto-migrate vehicle tables: ", err)
	}
}
