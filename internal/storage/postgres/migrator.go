package postgres

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// storefrontMigrationLock — ключ pg_advisory_lock, под которым сервис и утилита
// migrate применяют схему.
const storefrontMigrationLock = int64(0x73686f70)

const schemaVersionsDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    checksum TEXT NOT NULL DEFAULT '',
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

//go:embed sql/migrations/*.sql
var embeddedMigrations embed.FS

var migrationFileName = regexp.MustCompile(`^(\d+)_([a-z0-9_]+)\.(up|down)\.sql$`)

// ErrMigrationDrift — файл уже применённой миграции изменился.
var ErrMigrationDrift = errors.New("applied migration was modified")

// schemaStep — пара up/down-скриптов одной версии схемы.
type schemaStep struct {
	version  int64
	name     string
	up       string
	down     string
	checksum string
}

func (s schemaStep) label() string {
	return fmt.Sprintf("%04d_%s", s.version, s.name)
}

// appliedStep — строка schema_migrations.
type appliedStep struct {
	name     string
	checksum string
}

// Migrator применяет embedded-миграции к базе витрины.
type Migrator struct {
	db     *sql.DB
	source fs.FS
	lock   int64
}

func newMigrator(db *sql.DB, source fs.FS) *Migrator {
	return &Migrator{db: db, source: source, lock: storefrontMigrationLock}
}

// Migrator возвращает мигратор со встроенным набором скриптов.
func (s *Store) Migrator() (*Migrator, error) {
	if s == nil || s.db == nil {
		return nil, errStoreNotInitialized
	}
	return newMigrator(s.db, embeddedMigrations), nil
}

// MigrateUp применяет ожидающие миграции; steps=0 применяет все.
func (s *Store) MigrateUp(ctx context.Context, steps int) error {
	m, err := s.Migrator()
	if err != nil {
		return err
	}
	return m.Up(ctx, steps)
}

// MigrateDown откатывает последние steps миграций, минимум одну.
func (s *Store) MigrateDown(ctx context.Context, steps int) error {
	m, err := s.Migrator()
	if err != nil {
		return err
	}
	return m.Down(ctx, steps)
}

// MigrationStatus возвращает последнюю применённую версию и число применённых миграций.
func (s *Store) MigrationStatus(ctx context.Context) (int64, int, error) {
	m, err := s.Migrator()
	if err != nil {
		return 0, 0, err
	}
	return m.Status(ctx)
}

// PendingMigrations перечисляет ещё не применённые миграции в порядке версий.
func (s *Store) PendingMigrations(ctx context.Context) ([]string, error) {
	m, err := s.Migrator()
	if err != nil {
		return nil, err
	}
	return m.Pending(ctx)
}

// Up применяет ожидающие миграции по возрастанию версий. Перед этим сверяет
// контрольные суммы уже применённых скриптов.
func (m *Migrator) Up(ctx context.Context, steps int) error {
	return m.locked(ctx, func(conn *sql.Conn, plan []schemaStep, applied map[int64]appliedStep) error {
		if err := verifyChecksums(plan, applied); err != nil {
			return err
		}
		done := 0
		for _, step := range plan {
			if _, ok := applied[step.version]; ok {
				continue
			}
			if steps > 0 && done >= steps {
				break
			}
			if err := runStep(ctx, conn, step, true); err != nil {
				return err
			}
			done++
		}
		return nil
	})
}

// Down откатывает steps последних применённых миграций (steps<=0 означает одну).
func (m *Migrator) Down(ctx context.Context, steps int) error {
	if steps <= 0 {
		steps = 1
	}
	return m.locked(ctx, func(conn *sql.Conn, plan []schemaStep, applied map[int64]appliedStep) error {
		byVersion := make(map[int64]schemaStep, len(plan))
		for _, step := range plan {
			byVersion[step.version] = step
		}
		for _, version := range latestVersions(applied, steps) {
			step, ok := byVersion[version]
			if !ok {
				return fmt.Errorf("cannot rollback unknown migration version %d (%s)", version, applied[version].name)
			}
			if err := runStep(ctx, conn, step, false); err != nil {
				return err
			}
		}
		return nil
	})
}

// Status возвращает максимальную применённую версию и их количество.
func (m *Migrator) Status(ctx context.Context) (int64, int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := m.db.ExecContext(ctx, schemaVersionsDDL); err != nil {
		return 0, 0, fmt.Errorf("ensure schema_migrations: %w", err)
	}
	var (
		version int64
		count   int
	)
	err := m.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0), COUNT(*) FROM schema_migrations`).
		Scan(&version, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("query schema version: %w", err)
	}
	return version, count, nil
}

// Pending возвращает метки миграций вида 0002_orders, которые ещё не применены.
func (m *Migrator) Pending(ctx context.Context) ([]string, error) {
	plan, err := parseMigrations(m.source)
	if err != nil {
		return nil, err
	}
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire db connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, schemaVersionsDDL); err != nil {
		return nil, fmt.Errorf("ensure schema_migrations: %w", err)
	}
	applied, err := readApplied(ctx, conn)
	if err != nil {
		return nil, err
	}
	return pendingLabels(plan, applied), nil
}

// locked выполняет fn на выделенном соединении под advisory lock.
func (m *Migrator) locked(ctx context.Context, fn func(*sql.Conn, []schemaStep, map[int64]appliedStep) error) error {
	plan, err := parseMigrations(m.source)
	if err != nil {
		return err
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire db connection: %w", err)
	}
	defer conn.Close()

	lockCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := conn.ExecContext(lockCtx, `SELECT pg_advisory_lock($1)`, m.lock); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, m.lock)
	}()

	if _, err := conn.ExecContext(ctx, schemaVersionsDDL); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	applied, err := readApplied(ctx, conn)
	if err != nil {
		return err
	}
	return fn(conn, plan, applied)
}

// runStep выполняет скрипт и правит schema_migrations в одной транзакции.
func runStep(ctx context.Context, conn *sql.Conn, step schemaStep, up bool) (err error) {
	direction := "down"
	if up {
		direction = "up"
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s migration %s: %w", direction, step.label(), err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if up {
		if _, err = tx.ExecContext(ctx, step.up); err != nil {
			return fmt.Errorf("execute up migration %s: %w", step.label(), err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name, checksum, applied_at) VALUES ($1, $2, $3, NOW())`,
			step.version, step.name, step.checksum)
	} else {
		if _, err = tx.ExecContext(ctx, step.down); err != nil {
			return fmt.Errorf("execute down migration %s: %w", step.label(), err)
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = $1`, step.version)
	}
	if err != nil {
		return fmt.Errorf("record %s migration %s: %w", direction, step.label(), err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit %s migration %s: %w", direction, step.label(), err)
	}
	return nil
}

func readApplied(ctx context.Context, conn *sql.Conn) (map[int64]appliedStep, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version, name, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int64]appliedStep)
	for rows.Next() {
		var (
			version int64
			step    appliedStep
		)
		if err := rows.Scan(&version, &step.name, &step.checksum); err != nil {
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		applied[version] = step
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applied migrations: %w", err)
	}
	return applied, nil
}

// verifyChecksums сравнивает суммы применённых скриптов с текущими файлами.
// Пустая сумма в базе пропускается.
func verifyChecksums(plan []schemaStep, applied map[int64]appliedStep) error {
	for _, step := range plan {
		got, ok := applied[step.version]
		if !ok || got.checksum == "" {
			continue
		}
		if got.checksum != step.checksum {
			return fmt.Errorf("%w: %s", ErrMigrationDrift, step.label())
		}
	}
	return nil
}

func latestVersions(applied map[int64]appliedStep, limit int) []int64 {
	versions := make([]int64, 0, len(applied))
	for version := range applied {
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] > versions[j] })
	if limit > 0 && len(versions) > limit {
		versions = versions[:limit]
	}
	return versions
}

func pendingLabels(plan []schemaStep, applied map[int64]appliedStep) []string {
	pending := make([]string, 0)
	for _, step := range plan {
		if _, ok := applied[step.version]; !ok {
			pending = append(pending, step.label())
		}
	}
	return pending
}

// parseMigrations читает пары NNNN_name.up.sql / NNNN_name.down.sql
// из sql/migrations и упорядочивает их по версии.
func parseMigrations(source fs.FS) ([]schemaStep, error) {
	files, err := fs.Glob(source, "sql/migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no migration files found")
	}

	steps := make(map[int64]*schemaStep)
	for _, file := range files {
		base := path.Base(file)
		parts := migrationFileName.FindStringSubmatch(base)
		if parts == nil {
			return nil, fmt.Errorf("invalid migration file name: %s", base)
		}
		version, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", base, err)
		}

		raw, err := fs.ReadFile(source, file)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", base, err)
		}
		body := strings.TrimSpace(string(raw))
		if body == "" {
			return nil, fmt.Errorf("migration file is empty: %s", base)
		}

		step, ok := steps[version]
		if !ok {
			step = &schemaStep{version: version, name: parts[2]}
			steps[version] = step
		}
		if step.name != parts[2] {
			return nil, fmt.Errorf("migration %d has conflicting names %q and %q", version, step.name, parts[2])
		}

		target := &step.up
		if parts[3] == "down" {
			target = &step.down
		}
		if *target != "" {
			return nil, fmt.Errorf("duplicate %s migration for version %d", parts[3], version)
		}
		*target = body
	}

	plan := make([]schemaStep, 0, len(steps))
	for _, step := range steps {
		if step.up == "" || step.down == "" {
			return nil, fmt.Errorf("migration %s must have both up and down files", step.label())
		}
		sum := sha256.Sum256([]byte(step.up))
		step.checksum = hex.EncodeToString(sum[:])
		plan = append(plan, *step)
	}
	sort.Slice(plan, func(i, j int) bool { return plan[i].version < plan[j].version })
	return plan, nil
}
