package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fauzanakmal/travel_agency/models"
	"gorm.io/gorm"
)

const bookingCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueBookingCode keeps drawing random codes until one is free.
func GenerateUniqueBookingCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, bookingCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := "TRV-" + string(b)

		var booking models.Booking
		err := tx.Where("code = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}

// FallbackBookingCode is used when the unique generator cannot be consulted.
// Timestamp codes can collide under load; the unique path is preferred.
func FallbackBookingCode(now time.Time) string {
	return fmt.Sprintf("TRV-%s", now.Format("20060102150405"))
}
