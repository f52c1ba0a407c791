package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type lessonRepo struct {
	db *sqlx.DB
}

func (r *lessonRepo) SaveLesson(ctx context.Context, rec LessonRecord) error {
	if rec.ID == "" {
		return errors.New("save lesson: empty id")
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	// ON CONFLICT ... DO UPDATE is understood by both SQLite and Postgres.
	q := r.db.Rebind(`INSERT INTO lessons (id, english, correct_answer, payload, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			english = excluded.english,
			correct_answer = excluded.correct_answer,
			payload = excluded.payload`)

	_, err := r.db.ExecContext(ctx, q,
		rec.ID, rec.English, rec.CorrectAnswer, rec.Payload, created.UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("save lesson %s: %w", rec.ID, err)
	}
	return nil
}

func (r *lessonRepo) GetLesson(ctx context.Context, id string) (*LessonRecord, error) {
	q := r.db.Rebind(`SELECT id, english, correct_answer, payload, created_at
		FROM lessons WHERE id = ?`)

	var rec LessonRecord
	if err := r.db.GetContext(ctx, &rec, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson %s: %w", id, err)
	}
	rec.CreatedAt = time.UnixMilli(rec.CreatedAtMs).UTC()
	return &rec, nil
}

func (r *lessonRepo) ListLessons(ctx context.Context, opts QueryOpts) ([]LessonRecord, error) {
	q := `SELECT id, english, correct_answer, payload, created_at
		FROM lessons ORDER BY created_at DESC, id`
	var args []any
	if opts.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	var recs []LessonRecord
	if err := r.db.SelectContext(ctx, &recs, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	for i := range recs {
		recs[i].CreatedAt = time.UnixMilli(recs[i].CreatedAtMs).UTC()
	}
	return recs, nil
}
