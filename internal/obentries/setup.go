package obentries

import (
	"log"

	"github.com/sudeys05/police-system/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&OBEntry{}); err != nil {
		log.Fatal("Failed to auto-migrate OB entry tables: ", err)
	}
}
