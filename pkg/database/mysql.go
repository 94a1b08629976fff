package database

import (
	"crypto/tls"
	"fmt"
	"log"
	"os"
	"time"

	"go-pos-api/internal/config"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// tlsProfile is the name the skip-verify TLS config is registered under.
// Azure MySQL terminates TLS with a certificate the default trust store
// may not know, so hostname/chain verification is disabled.
const tlsProfile = "azure"

// Connect opens the MySQL connection pool described by cfg.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBTLS {
		if err := mysqldriver.RegisterTLSConfig(tlsProfile, &tls.Config{
			InsecureSkipVerify: true,
		}); err != nil {
			return nil, fmt.Errorf("register tls config: %w", err)
		}
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(mysql.Open(DSN(cfg)), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Connection pooling setup
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db, nil
}

// DSN assembles the go-sql-driver DSN for cfg.
func DSN(cfg *config.Config) string {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)
	if cfg.DBTLS {
		dsn += "&tls=" + tlsProfile
	}
	return dsn
}
