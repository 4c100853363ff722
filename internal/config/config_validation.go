package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The server cannot work without a database, an object store and a listen
// address, so those are required. The password hash key is required because
// registration and login are meaningless without it.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.S3.Endpoint == "" || cfg.Storage.S3.AccessKey == "" || cfg.Storage.S3.SecretKey == "" {
		return ErrInvalidObjectStoreConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.PasswordHashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
