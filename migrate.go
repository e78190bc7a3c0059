package jobly

func runMigrations(exec Executor) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS jobly_tokens (
			id TEXT PRIMARY KEY,
			token TEXT NOT NULL,
			created_at INTEGER
		)`,
	}

	for _, q := range queries {
		if err := exec.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
