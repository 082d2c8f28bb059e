package evidence

import (
	"log"

	"github.com/sudeys05/police-system/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Evidence{}); err != nil {
		log.Fatal("Failed to auto-migrate evidence tables: ", err)
	}
}
