package geofiles

import (
	"log"

	"github.com/sudeys05/police-system/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Geofile{}); err != nil {
		log.Fatal("Failed to auto-migrate geofile tables: ", err)
	}
}
