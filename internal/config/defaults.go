package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultPort is used when neither PORT nor -port/-a is given.
	DefaultPort = 5000

	// DefaultDSN is the SQLite file created next to the working directory.
	DefaultDSN = "todo-app.db"

	// DefaultTokenIssuer is the "iss" claim used when none is configured.
	DefaultTokenIssuer = "go-todo-server"

	// DefaultPublicDir is the static asset directory.
	DefaultPublicDir = "public"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: 24 * time.Hour,
			BcryptCost:    bcrypt.DefaultCost,
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB: DB{
				DSN:             DefaultDSN,
				ConnectAttempts: 5,
			},
		},
		Server: Server{
			Port:           DefaultPort,
			PublicDir:      DefaultPublicDir,
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   1 << 20,
		},
	}
}
