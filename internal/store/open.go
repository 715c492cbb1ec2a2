package store

// Open selects the storage backend for this run: the OS keyring when it is
// usable, else the sqlite file under the config directory. The choice is made
// once here so callers never branch on platform.
func Open(configDir string) (Store, error) {
	if KeyringAvailable() {
		return NewKeyringStore(), nil
	}
	return NewSQLiteStore(configDir)
}
