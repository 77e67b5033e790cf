package store

import "fmt"

// Import copies the high score and session history of a JSON stats file into
// the database. Sessions already present are skipped and the higher of the
// two high scores is kept. It returns the number of sessions imported.
func (s *SQLite) Import(f *File) (int, error) {
	current, err := s.LoadHighScore()
	if err != nil {
		return 0, err
	}
	legacy, _ := f.LoadHighScore()
	if legacy > current {
		if err := s.SaveHighScore(legacy); err != nil {
			return 0, err
		}
	}

	count := 0
	for _, sum := range f.Sessions() {
		res, err := s.db.Exec(
			`INSERT OR IGNORE INTO game_sessions (id, start_ms, end_ms, score, length, cause) VALUES (?, ?, ?, ?, ?, ?)`,
			sum.ID, sum.StartedAt.UnixMilli(), sum.EndedAt.UnixMilli(), sum.Score, sum.Length, sum.Cause)
		if err != nil {
			return count, fmt.Errorf("import session %s: %w", sum.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			count++
		}
	}
	return count, nil
}
