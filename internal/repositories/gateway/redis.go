package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	charactersIndexKey = "characters"
	templatesIndexKey  = "monster_templates"
)

// statistics hash fields, always written in this order
const (
	statEncounters       = "encounters"
	statVictories        = "victories"
	statDefeats          = "defeats"
	statFled             = "fled"
	statDamageDealt      = "damage_dealt"
	statDamageTaken      = "damage_taken"
	statExperienceEarned = "experience_earned"
)

// RedisConfig holds configuration for the Redis gateway
type RedisConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	Logger       *zap.Logger
}

// RedisGateway stores characters as JSON documents and statistics as hashes.
// Multi-key writes go through MULTI/EXEC.
type RedisGateway struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	logger       *zap.Logger
}

// NewRedisGateway creates a Redis-backed gateway
func NewRedisGateway(cfg *RedisConfig) *RedisGateway {
	if cfg == nil {
		panic("RedisConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RedisGateway{
		client:       cfg.Client,
		timeProvider: timeProviderOrDefault(cfg.TimeProvider),
		logger:       logger,
	}
}

// characterKey generates the Redis key for a character
func characterKey(name string) string {
	return fmt.Sprintf("character:%s", name)
}

// statisticsKey generates the Redis key for a character's counters
func statisticsKey(name string) string {
	return fmt.Sprintf("statistics:%s", name)
}

// templateKey generates the Redis key for a monster template
func templateKey(name string) string {
	return fmt.Sprintf("monster_template:%s", name)
}

func (g *RedisGateway) Load(ctx context.Context, name string) (*character.Character, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := g.getCharacterData(ctx, name)
	if err != nil {
		return nil, err
	}
	return fromCharacterData(data)
}

func (g *RedisGateway) getCharacterData(ctx context.Context, name string) (*CharacterData, error) {
	jsonData, err := g.client.Get(ctx, characterKey(name)).Result()
	if err == redis.Nil {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, dnderr.PersistenceFailuref(err, "get character %s", name)
	}

	var data CharacterData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "failed to unmarshal character").
			WithMeta("character_name", name)
	}
	return &data, nil
}

func (g *RedisGateway) Save(ctx context.Context, char *character.Character) error {
	if err := validateForSave(char); err != nil {
		return err
	}

	payload, err := g.marshalForWrite(ctx, char)
	if err != nil {
		return err
	}

	_, err = g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, characterKey(char.Name), string(payload), 0)
		pipe.SAdd(ctx, charactersIndexKey, char.Name)
		return nil
	})
	if err != nil {
		return dnderr.PersistenceFailuref(err, "save character %s", char.Name)
	}
	return nil
}

func (g *RedisGateway) Commit(ctx context.Context, char *character.Character, delta *statistics.Delta) error {
	if err := validateCommit(char, delta); err != nil {
		return err
	}

	payload, err := g.marshalForWrite(ctx, char)
	if err != nil {
		return err
	}

	_, err = g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, characterKey(char.Name), string(payload), 0)
		pipe.SAdd(ctx, charactersIndexKey, char.Name)
		incrementStatisticsPipe(ctx, pipe, delta)
		return nil
	})
	if err != nil {
		return dnderr.PersistenceFailuref(err, "commit character %s", char.Name)
	}
	return nil
}

// marshalForWrite serializes char, keeping the creation time of an existing record
func (g *RedisGateway) marshalForWrite(ctx context.Context, char *character.Character) ([]byte, error) {
	data, err := toCharacterData(char)
	if err != nil {
		return nil, err
	}

	now := g.timeProvider.Now()
	data.CreatedAt = now
	data.LastPlayed = now

	existing, err := g.getCharacterData(ctx, char.Name)
	switch {
	case err == nil:
		data.CreatedAt = existing.CreatedAt
	case dnderr.IsNotFound(err):
	case dnderr.IsValidation(err):
		g.logger.Warn("overwriting unreadable character record", zap.String("character", char.Name))
	default:
		return nil, err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to marshal character")
	}
	return payload, nil
}

func incrementStatisticsPipe(ctx context.Context, pipe redis.Pipeliner, delta *statistics.Delta) {
	key := statisticsKey(delta.CharacterName)
	pipe.HIncrBy(ctx, key, statEncounters, int64(delta.Encounters))
	pipe.HIncrBy(ctx, key, statVictories, int64(delta.Victories))
	pipe.HIncrBy(ctx, key, statDefeats, int64(delta.Defeats))
	pipe.HIncrBy(ctx, key, statFled, int64(delta.Fled))
	pipe.HIncrBy(ctx, key, statDamageDealt, int64(delta.DamageDealt))
	pipe.HIncrBy(ctx, key, statDamageTaken, int64(delta.DamageTaken))
	pipe.HIncrBy(ctx, key, statExperienceEarned, int64(delta.ExperienceEarned))
}

func (g *RedisGateway) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	var removed *redis.IntCmd
	_, err := g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.SRem(ctx, charactersIndexKey, name)
		pipe.Del(ctx, characterKey(name), statisticsKey(name))
		return nil
	})
	if err != nil {
		return dnderr.PersistenceFailuref(err, "delete character %s", name)
	}
	if removed.Val() == 0 {
		return notFound(name)
	}
	return nil
}

func (g *RedisGateway) List(ctx context.Context) ([]*Summary, error) {
	names, err := g.client.SMembers(ctx, charactersIndexKey).Result()
	if err != nil {
		return nil, dnderr.PersistenceFailure(err, "list character names")
	}

	found := make([]*Summary, len(names))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			data, err := g.getCharacterData(egCtx, name)
			if dnderr.IsNotFound(err) {
				g.logger.Warn("character index points at a missing record", zap.String("character", name))
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = &Summary{
				Name:       data.Name,
				Emoji:      data.Emoji,
				Level:      data.Level,
				CreatedAt:  data.CreatedAt,
				LastPlayed: data.LastPlayed,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Summary, 0, len(found))
	for _, s := range found {
		if s != nil {
			out = append(out, s)
		}
	}
	sortSummaries(out)
	return out, nil
}

func (g *RedisGateway) ListTemplates(ctx context.Context, levels monster.LevelRange) ([]*monster.Template, error) {
	if err := levels.Validate(); err != nil {
		return nil, err
	}

	names, err := g.client.SMembers(ctx, templatesIndexKey).Result()
	if err != nil {
		return nil, dnderr.PersistenceFailure(err, "list template names")
	}

	loaded := make([]*monster.Template, len(names))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			jsonData, err := g.client.Get(egCtx, templateKey(name)).Result()
			if err == redis.Nil {
				return nil
			}
			if err != nil {
				return dnderr.PersistenceFailuref(err, "get template %s", name)
			}
			var data TemplateData
			if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
				return dnderr.WrapWithCode(err, dnderr.CodeValidation, "failed to unmarshal template "+name)
			}
			loaded[i] = fromTemplateData(&data)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []*monster.Template
	for _, t := range loaded {
		if t != nil && t.Levels.Overlaps(levels) {
			out = append(out, t)
		}
	}
	sortTemplates(out)
	return out, nil
}

func (g *RedisGateway) SeedTemplates(ctx context.Context, templates []*monster.Template) error {
	if err := validateTemplates(templates); err != nil {
		return err
	}
	if len(templates) == 0 {
		return nil
	}

	payloads := make([][]byte, len(templates))
	for i, t := range templates {
		payload, err := json.Marshal(toTemplateData(t))
		if err != nil {
			return dnderr.Wrapf(err, "failed to marshal template %s", t.Name)
		}
		payloads[i] = payload
	}

	_, err := g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, t := range templates {
			pipe.SetNX(ctx, templateKey(t.Name), string(payloads[i]), 0)
			pipe.SAdd(ctx, templatesIndexKey, t.Name)
		}
		return nil
	})
	if err != nil {
		return dnderr.PersistenceFailure(err, "seed templates")
	}
	return nil
}

func (g *RedisGateway) RecordStatistics(ctx context.Context, delta *statistics.Delta) error {
	if err := delta.Validate(); err != nil {
		return err
	}
	if err := g.requireCharacter(ctx, delta.CharacterName); err != nil {
		return err
	}

	_, err := g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incrementStatisticsPipe(ctx, pipe, delta)
		return nil
	})
	if err != nil {
		return dnderr.PersistenceFailuref(err, "record statistics for %s", delta.CharacterName)
	}
	return nil
}

func (g *RedisGateway) Statistics(ctx context.Context, name string) (*statistics.Record, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := g.requireCharacter(ctx, name); err != nil {
		return nil, err
	}

	fields, err := g.client.HGetAll(ctx, statisticsKey(name)).Result()
	if err != nil {
		return nil, dnderr.PersistenceFailuref(err, "load statistics for %s", name)
	}

	rec := &statistics.Record{CharacterName: name}
	targets := map[string]*int{
		statEncounters:       &rec.Encounters,
		statVictories:        &rec.Victories,
		statDefeats:          &rec.Defeats,
		statFled:             &rec.Fled,
		statDamageDealt:      &rec.DamageDealt,
		statDamageTaken:      &rec.DamageTaken,
		statExperienceEarned: &rec.ExperienceEarned,
	}
	for field, raw := range fields {
		target, ok := targets[field]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "bad statistics field "+field).
				WithMeta("character_name", name)
		}
		*target = v
	}
	return rec, nil
}

func (g *RedisGateway) requireCharacter(ctx context.Context, name string) error {
	exists, err := g.client.Exists(ctx, characterKey(name)).Result()
	if err != nil {
		return dnderr.PersistenceFailuref(err, "check character %s", name)
	}
	if exists == 0 {
		return notFound(name)
	}
	return nil
}

func (g *RedisGateway) Close() error {
	return g.client.Close()
}
