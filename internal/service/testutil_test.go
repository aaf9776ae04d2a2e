package service

import (
	"testing"

	"go-autoshop/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testOwner = "owner@example.com"

// newTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps every query on the same in-memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.InventoryItem{},
		&model.SaleTransaction{},
		&model.SaleItem{},
		&model.Quote{},
		&model.QuoteItem{},
		&model.Appointment{},
		&model.Customer{},
	))
	return db
}

// seedOwner inserts the shop owner row that carries the invoice counter.
func seedOwner(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	owner := &model.User{
		Email:             testOwner,
		ShopName:          "Test Tire Shop",
		LastInvoiceNumber: model.InvoiceNumberBase,
		IsActive:          true,
	}
	require.NoError(t, owner.SetPassword("secret123"))
	require.NoError(t, db.Create(owner).Error)
	return owner
}
