package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/platform/sqlitemigrate"
	"github.com/KirkDiggler/dungeon-engine/internal/repositories/gateway/migrations"
	"go.uber.org/zap"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// SQLiteConfig holds configuration for the SQLite gateway
type SQLiteConfig struct {
	Path         string
	TimeProvider TimeProvider
	Logger       *zap.Logger
}

// SQLiteGateway persists game state in a single SQLite file
type SQLiteGateway struct {
	db           *sql.DB
	timeProvider TimeProvider
	logger       *zap.Logger
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// NewSQLite opens the database at cfg.Path and applies embedded migrations
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteGateway, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("sqlite config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, dnderr.InvalidArgument("sqlite path is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dsn := filepath.Clean(cfg.Path) +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, dnderr.PersistenceFailure(err, "open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, dnderr.PersistenceFailure(err, "ping sqlite db")
	}

	applied, err := sqlitemigrate.Apply(ctx, db, migrations.FS, "")
	if err != nil {
		_ = db.Close()
		return nil, dnderr.Wrap(err, "run migrations")
	}
	for _, name := range applied {
		logger.Info("applied migration", zap.String("migration", name))
	}

	return &SQLiteGateway{
		db:           db,
		timeProvider: timeProviderOrDefault(cfg.TimeProvider),
		logger:       logger,
	}, nil
}

func (g *SQLiteGateway) Close() error {
	if g == nil || g.db == nil {
		return nil
	}
	return g.db.Close()
}

func (g *SQLiteGateway) Load(ctx context.Context, name string) (*character.Character, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data := &CharacterData{
		EquippedSlots: make(map[equipment.Slot]EquipmentData),
		Inventory:     make([]EquipmentData, 0),
	}
	err := g.db.QueryRowContext(ctx, `
SELECT name, emoji, level, experience, current_health, max_health, strength, defense, inventory_capacity
FROM characters WHERE name = ?`, name).Scan(
		&data.Name,
		&data.Emoji,
		&data.Level,
		&data.Experience,
		&data.CurrentHealth,
		&data.MaxHealth,
		&data.Strength,
		&data.Defense,
		&data.InventoryCapacity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, dnderr.PersistenceFailuref(err, "load character %s", name)
	}

	rows, err := g.db.QueryContext(ctx, `
SELECT slot, kind, data FROM character_items
WHERE character_name = ?
ORDER BY position`, name)
	if err != nil {
		return nil, dnderr.PersistenceFailuref(err, "load items for %s", name)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slot sql.NullString
			item EquipmentData
			raw  string
		)
		if err := rows.Scan(&slot, &item.Type, &raw); err != nil {
			return nil, dnderr.PersistenceFailuref(err, "scan item for %s", name)
		}
		item.Equipment = json.RawMessage(raw)
		if slot.Valid {
			data.EquippedSlots[equipment.Slot(slot.String)] = item
		} else {
			data.Inventory = append(data.Inventory, item)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, dnderr.PersistenceFailuref(err, "iterate items for %s", name)
	}

	return fromCharacterData(data)
}

func (g *SQLiteGateway) Save(ctx context.Context, char *character.Character) error {
	if err := validateForSave(char); err != nil {
		return err
	}
	return g.inTx(ctx, "save "+char.Name, func(tx *sql.Tx) error {
		return g.writeCharacter(ctx, tx, char)
	})
}

func (g *SQLiteGateway) Commit(ctx context.Context, char *character.Character, delta *statistics.Delta) error {
	if err := validateCommit(char, delta); err != nil {
		return err
	}
	return g.inTx(ctx, "commit "+char.Name, func(tx *sql.Tx) error {
		if err := g.writeCharacter(ctx, tx, char); err != nil {
			return err
		}
		return incrementStatistics(ctx, tx, delta)
	})
}

func (g *SQLiteGateway) writeCharacter(ctx context.Context, tx *sql.Tx, char *character.Character) error {
	data, err := toCharacterData(char)
	if err != nil {
		return err
	}
	now := toMillis(g.timeProvider.Now())

	if _, err := tx.ExecContext(ctx, `
INSERT INTO characters (
    name, emoji, level, experience, current_health, max_health, strength, defense,
    inventory_capacity, created_at, last_played
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    emoji = excluded.emoji,
    level = excluded.level,
    experience = excluded.experience,
    current_health = excluded.current_health,
    max_health = excluded.max_health,
    strength = excluded.strength,
    defense = excluded.defense,
    inventory_capacity = excluded.inventory_capacity,
    last_played = excluded.last_played`,
		data.Name,
		data.Emoji,
		data.Level,
		data.Experience,
		data.CurrentHealth,
		data.MaxHealth,
		data.Strength,
		data.Defense,
		data.InventoryCapacity,
		now,
		now,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO character_statistics (character_name) VALUES (?)", data.Name,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM character_items WHERE character_name = ?", data.Name); err != nil {
		return err
	}

	position := 0
	insert := func(slot sql.NullString, item equipment.Equipment) error {
		itemData, err := equipmentToData(item)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO character_items (id, character_name, slot, position, kind, data)
VALUES (?, ?, ?, ?, ?, ?)`,
			item.GetID(), data.Name, slot, position, itemData.Type, string(itemData.Equipment))
		switch classifyConstraint(err) {
		case primaryKeyViolation:
			return dnderr.Validationf("item %s already belongs to another character", item.GetID()).
				WithMeta("character_name", data.Name).
				WithMeta("item_id", item.GetID())
		case uniqueViolation:
			return dnderr.Validationf("slot %s of %s already holds an item", slot.String, data.Name).
				WithMeta("character_name", data.Name).
				WithMeta("slot", slot.String)
		}
		if err != nil {
			return err
		}
		position++
		return nil
	}

	for _, slot := range equipment.AllSlots() {
		item := char.Equipment.Get(slot)
		if item == nil {
			continue
		}
		if err := insert(sql.NullString{String: string(slot), Valid: true}, item); err != nil {
			return err
		}
	}
	for _, item := range char.Inventory.Items() {
		if err := insert(sql.NullString{}, item); err != nil {
			return err
		}
	}
	return nil
}

func incrementStatistics(ctx context.Context, tx *sql.Tx, delta *statistics.Delta) error {
	res, err := tx.ExecContext(ctx, `
UPDATE character_statistics SET
    encounters = encounters + ?,
    victories = victories + ?,
    defeats = defeats + ?,
    fled = fled + ?,
    damage_dealt = damage_dealt + ?,
    damage_taken = damage_taken + ?,
    experience_earned = experience_earned + ?
WHERE character_name = ?`,
		delta.Encounters,
		delta.Victories,
		delta.Defeats,
		delta.Fled,
		delta.DamageDealt,
		delta.DamageTaken,
		delta.ExperienceEarned,
		delta.CharacterName,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(delta.CharacterName)
	}
	return nil
}

func (g *SQLiteGateway) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return g.inTx(ctx, "delete "+name, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM character_items WHERE character_name = ?", name); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM character_statistics WHERE character_name = ?", name); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM characters WHERE name = ?", name)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return notFound(name)
		}
		return nil
	})
}

func (g *SQLiteGateway) List(ctx context.Context) ([]*Summary, error) {
	rows, err := g.db.QueryContext(ctx, `
SELECT name, emoji, level, created_at, last_played
FROM characters
ORDER BY last_played DESC, name ASC`)
	if err != nil {
		return nil, dnderr.PersistenceFailure(err, "list characters")
	}
	defer rows.Close()

	out := make([]*Summary, 0)
	for rows.Next() {
		var (
			s                   Summary
			created, lastPlayed int64
		)
		if err := rows.Scan(&s.Name, &s.Emoji, &s.Level, &created, &lastPlayed); err != nil {
			return nil, dnderr.PersistenceFailure(err, "scan character summary")
		}
		s.CreatedAt = fromMillis(created)
		s.LastPlayed = fromMillis(lastPlayed)
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, dnderr.PersistenceFailure(err, "iterate character summaries")
	}
	return out, nil
}

func (g *SQLiteGateway) ListTemplates(ctx context.Context, levels monster.LevelRange) ([]*monster.Template, error) {
	if err := levels.Validate(); err != nil {
		return nil, err
	}

	rows, err := g.db.QueryContext(ctx, `
SELECT name, emoji, description, rarity, min_level, max_level,
       base_health, base_strength, base_defense,
       health_per_level, strength_per_level, defense_per_level,
       base_experience, experience_per_level, drop_chance
FROM monster_templates
WHERE min_level <= ? AND max_level >= ?
ORDER BY name`, levels.Max, levels.Min)
	if err != nil {
		return nil, dnderr.PersistenceFailure(err, "list monster templates")
	}
	defer rows.Close()

	var out []*monster.Template
	for rows.Next() {
		var d TemplateData
		if err := rows.Scan(
			&d.Name, &d.Emoji, &d.Description, &d.Rarity, &d.Levels.Min, &d.Levels.Max,
			&d.BaseHealth, &d.BaseStrength, &d.BaseDefense,
			&d.HealthPerLevel, &d.StrengthPerLevel, &d.DefensePerLevel,
			&d.BaseExperience, &d.ExperiencePerLevel, &d.DropChance,
		); err != nil {
			return nil, dnderr.PersistenceFailure(err, "scan monster template")
		}
		out = append(out, fromTemplateData(&d))
	}
	if err := rows.Err(); err != nil {
		return nil, dnderr.PersistenceFailure(err, "iterate monster templates")
	}
	return out, nil
}

func (g *SQLiteGateway) SeedTemplates(ctx context.Context, templates []*monster.Template) error {
	if err := validateTemplates(templates); err != nil {
		return err
	}
	return g.inTx(ctx, "seed templates", func(tx *sql.Tx) error {
		for _, t := range templates {
			if _, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO monster_templates (
    name, emoji, description, rarity, min_level, max_level,
    base_health, base_strength, base_defense,
    health_per_level, strength_per_level, defense_per_level,
    base_experience, experience_per_level, drop_chance
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.Name, t.Emoji, t.Description, string(t.Rarity), t.Levels.Min, t.Levels.Max,
				t.BaseHealth, t.BaseStrength, t.BaseDefense,
				t.HealthPerLevel, t.StrengthPerLevel, t.DefensePerLevel,
				t.BaseExperience, t.ExperiencePerLevel, t.DropChance,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *SQLiteGateway) RecordStatistics(ctx context.Context, delta *statistics.Delta) error {
	if err := delta.Validate(); err != nil {
		return err
	}
	return g.inTx(ctx, "record statistics for "+delta.CharacterName, func(tx *sql.Tx) error {
		return incrementStatistics(ctx, tx, delta)
	})
}

func (g *SQLiteGateway) Statistics(ctx context.Context, name string) (*statistics.Record, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	rec := &statistics.Record{CharacterName: name}
	var (
		encounters, victories, defeats, fled sql.NullInt64
		dealt, taken, earned                 sql.NullInt64
	)
	err := g.db.QueryRowContext(ctx, `
SELECT s.encounters, s.victories, s.defeats, s.fled, s.damage_dealt, s.damage_taken, s.experience_earned
FROM characters c
LEFT JOIN character_statistics s ON s.character_name = c.name
WHERE c.name = ?`, name).Scan(&encounters, &victories, &defeats, &fled, &dealt, &taken, &earned)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, dnderr.PersistenceFailuref(err, "load statistics for %s", name)
	}

	rec.Encounters = int(encounters.Int64)
	rec.Victories = int(victories.Int64)
	rec.Defeats = int(defeats.Int64)
	rec.Fled = int(fled.Int64)
	rec.DamageDealt = int(dealt.Int64)
	rec.DamageTaken = int(taken.Int64)
	rec.ExperienceEarned = int(earned.Int64)
	return rec, nil
}

// inTx runs fn in one transaction. Coded errors from fn pass through;
// driver errors become persistence failures.
func (g *SQLiteGateway) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return dnderr.PersistenceFailuref(err, "begin %s", op)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		var coded *dnderr.Error
		if errors.As(err, &coded) {
			return err
		}
		g.logger.Error("sqlite transaction failed", zap.String("op", op), zap.Error(err))
		return dnderr.PersistenceFailuref(err, "%s", op)
	}

	if err := tx.Commit(); err != nil {
		return dnderr.PersistenceFailuref(err, "commit %s", op)
	}
	return nil
}

type constraintViolation int

const (
	noViolation constraintViolation = iota
	primaryKeyViolation
	uniqueViolation
)

// classifyConstraint tells a primary key clash from other UNIQUE clashes
func classifyConstraint(err error) constraintViolation {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return noViolation
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return primaryKeyViolation
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return uniqueViolation
	}
	return noViolation
}
