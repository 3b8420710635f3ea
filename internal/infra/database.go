package infra

import (
	"fmt"

	"huertohogar/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the embedded SQLite store, checks the recorded schema
// version against the expected one, and runs AutoMigrate for the four tables.
//
// Migration policy is destructive: when the recorded version differs from the
// expected version, every table is dropped and recreated. Losing all data on
// a version bump is the documented, intentional behavior, not a bug.
func NewDatabase(path string, schemaVersion int) (*gorm.DB, error) {
	// _foreign_keys goes in the DSN: the pragma is per-connection, so it must
	// apply to every connection the pool hands out, not just the first.
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Single local writer over an embedded file: one connection is plenty and
	// sidesteps SQLITE_BUSY under concurrent statements.
	sqlDB.SetMaxOpenConns(1)

	var current int
	if err := db.Raw("PRAGMA user_version").Scan(&current).Error; err != nil {
		return nil, fmt.Errorf("read schema version: %w", err)
	}

	if current != 0 && current != schemaVersion {
		log.Warn().
			Int("stored", current).
			Int("expected", schemaVersion).
			Msg("schema version mismatch, dropping all tables")
		if err := db.Migrator().DropTable(
			&model.DetallePedido{},
			&model.Pedido{},
			&model.Usuario{},
			&model.Producto{},
		); err != nil {
			return nil, fmt.Errorf("destructive reset: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&model.Producto{},
		&model.Usuario{},
		&model.Pedido{},
		&model.DetallePedido{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)).Error; err != nil {
		return nil, fmt.Errorf("stamp schema version: %w", err)
	}

	return db, nil
}
