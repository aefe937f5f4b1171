package config

import (
	"Henteklar/repositories"
	"Henteklar/repositories/firestore"
	"Henteklar/repositories/impl"

	"go.uber.org/zap"
)

// Stores is one set of repositories over the configured driver.
type Stores struct {
	Accounts repositories.AccountRepository
	Children repositories.ChildRepository
	Logs     repositories.CheckinLogRepository
	History  repositories.HistoryRepository
	Calendar repositories.CalendarRepository
	Settings repositories.SettingsRepository
}

// OpenStores opens PostgreSQL when STORE_DRIVER=postgres and otherwise uses
// the Firestore client of fb.
func OpenStores(cfg *Config, fb *Firebase, logger *zap.Logger) (*Stores, error) {
	if cfg.StoreDriver == DriverPostgres {
		db, err := InitDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Accounts: impl.NewAccountRepository(db),
			Children: impl.NewChildRepository(db),
			Logs:     impl.NewCheckinLogRepository(db),
			History:  impl.NewHistoryRepository(db),
			Calendar: impl.NewCalendarRepository(db),
			Settings: impl.NewSettingsRepository(db),
		}, nil
	}

	logger.Info("using Firestore store", zap.String("project", cfg.FirebaseProjectID))
	return &Stores{
		Accounts: firestore.NewAccountRepository(fb.Firestore),
		Children: firestore.NewChildRepository(fb.Firestore),
		Logs:     firestore.NewCheckinLogRepository(fb.Firestore),
		History:  firestore.NewHistoryRepository(fb.Firestore),
		Calendar: firestore.NewCalendarRepository(fb.Firestore),
		Settings: firestore.NewSettingsRepository(fb.Firestore),
	}, nil
}
