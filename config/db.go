package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hostel_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase inserts demo hostels and rooms when the tables are empty so a
// fresh install has something to browse.
func SeedDatabase() {
	var hostelCount int64
	DB.Model(&models.Hostel{}).Count(&hostelCount)
	if hostelCount > 0 {
		log.Println("Hostels already seeded")
		return
	}

	hostels := []models.Hostel{
		{
			Name:          "Casa do Sol",
			City:          "Lisbon",
			Address:       "Rua das Flores 12",
			Description:   "Sunny rooftop hostel near the old town",
			Sustainable:   true,
			Accessible:    false,
			AverageRating: 4.6,
			Photos:        []byte(`["casa-do-sol-1.jpg","casa-do-sol-2.jpg"]`),
			Amenities:     []byte(`["wifi","kitchen","rooftop"]`),
		},
		{
			Name:          "Harbor Lights",
			City:          "Porto",
			Address:       "Cais da Ribeira 4",
			Description:   "Riverside bunks with harbor views",
			Sustainable:   false,
			Accessible:    true,
			AverageRating: 4.2,
			Photos:        []byte(`["harbor-lights-1.jpg"]`),
			Amenities:     []byte(`["wifi","lockers","bar"]`),
		},
	}
	if err := DB.Create(&hostels).Error; err != nil {
		log.Printf("warning: failed to seed hostels: %v", err)
		return
	}

	rooms := []models.Room{
		{
			HostelID:    hostels[0].ID,
			Type:        "Shared Dorm",
			BedType:     "Bunk",
			Capacity:    6,
			Description: "6-bed mixed dorm",
			NightlyRate: decimal.NewFromFloat(25.00),
			CleaningFee: decimal.NewFromFloat(10.00),
		},
		{
			HostelID:    hostels[0].ID,
			Type:        "Private Double",
			BedType:     "Double",
			Capacity:    2,
			Description: "Private room with ensuite",
			NightlyRate: decimal.NewFromFloat(100.00),
			CleaningFee: decimal.NewFromFloat(25.00),
		},
		{
			HostelID:    hostels[1].ID,
			Type:        "Shared Dorm",
			BedType:     "Bunk",
			Capacity:    4,
			Description: "4-bed female dorm",
			NightlyRate: decimal.NewFromFloat(30.00),
			CleaningFee: decimal.NewFromFloat(12.00),
		},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}

	log.Println("Hostels and rooms seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Hostel{},
		&models.Room{},
		&models.Reservation{},
		&models.Payment{},
		&models.Review{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
