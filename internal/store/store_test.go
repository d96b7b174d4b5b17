package store

import "github.com/ledgerline/finhealth/internal/config"

func configWithDriver(driver string) config.StoreConfig {
	return config.StoreConfig{Driver: driver}
}
