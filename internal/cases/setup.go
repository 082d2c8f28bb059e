package cases

import (
	"log"

	"github.com/sudeys05/police-system/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Case{}); err != nil {
		log.Fatal("Failed to auto-migrate case tables: ", err)
	}
}
