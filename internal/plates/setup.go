package plates

import (
	"log"

	"github.com/sudeys05/police-system/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&LicensePlate{}); err != nil {
		log.Fatal("Failed to auto-migrate license plate tables: ", err)
	}
}
