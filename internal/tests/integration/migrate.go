package integration

import (
	"net/url"
	"taskara-review-service/internal/infrastructure/logger"
	"taskara-review-service/internal/infrastructure/migrator"
)

func ApplyMigrations(dsn string) error {
	log := logger.New("test")
	if parsed, err := url.Parse(dsn); err == nil {
		q := parsed.Query()
		if q.Get("sslmode") == "" {
			q.Set("sslmode", "disable")
			parsed.RawQuery = q.Encode()
			dsn = parsed.String()
		}
	}

	m, err := migrator.NewPostgresMigrator(dsn, log)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
