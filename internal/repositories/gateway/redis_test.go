package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/dungeon-engine/internal/domain/character"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-engine/internal/domain/statistics"
	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/testutils"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type RedisGatewayTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	gw     *RedisGateway
	now    time.Time
	ctx    context.Context
}

func (s *RedisGatewayTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	s.client, s.mock = redismock.NewClientMock()
	s.gw = NewRedisGateway(&RedisConfig{
		Client:       s.client,
		TimeProvider: fixedClock{now: s.now},
		Logger:       zaptest.NewLogger(s.T()),
	})
}

func (s *RedisGatewayTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(RedisGatewayTestSuite))
}

func (s *RedisGatewayTestSuite) payload(char *character.Character, created, lastPlayed time.Time) string {
	data, err := toCharacterData(char)
	s.Require().NoError(err)
	data.CreatedAt = created
	data.LastPlayed = lastPlayed
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(raw)
}

func (s *RedisGatewayTestSuite) TestSaveNewCharacter() {
	char := testutils.CreateTestCharacter("Aria")

	s.mock.ExpectGet("character:Aria").RedisNil()
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:Aria", s.payload(char, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "Aria").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.gw.Save(s.ctx, char))
}

func (s *RedisGatewayTestSuite) TestSaveKeepsCreationTime() {
	char := testutils.CreateTestCharacter("Aria")
	created := s.now.Add(-48 * time.Hour)

	s.mock.ExpectGet("character:Aria").SetVal(s.payload(char, created, created))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:Aria", s.payload(char, created, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "Aria").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.gw.Save(s.ctx, char))
}

func (s *RedisGatewayTestSuite) TestSaveFailures() {
	char := testutils.CreateTestCharacter("Aria")

	// Dependency error
	s.mock.ExpectGet("character:Aria").SetErr(errors.New("connection refused"))
	err := s.gw.Save(s.ctx, char)
	s.True(dnderr.IsPersistenceFailure(err))

	// Input validation
	s.True(dnderr.IsInvalidArgument(s.gw.Save(s.ctx, nil)))
	char.Level = 0
	s.True(dnderr.IsValidation(s.gw.Save(s.ctx, char)))
}

func (s *RedisGatewayTestSuite) TestLoad() {
	char := testutils.CreateTestCharacter("Aria")

	// Happy path
	s.mock.ExpectGet("character:Aria").SetVal(s.payload(char, s.now, s.now))
	loaded, err := s.gw.Load(s.ctx, "Aria")
	s.Require().NoError(err)
	s.Equal(char, loaded)

	// Missing
	s.mock.ExpectGet("character:Bryn").RedisNil()
	_, err = s.gw.Load(s.ctx, "Bryn")
	s.True(dnderr.IsNotFound(err))

	// Corrupt record
	s.mock.ExpectGet("character:Cato").SetVal(`{"name":"Cato","level":0}`)
	_, err = s.gw.Load(s.ctx, "Cato")
	s.True(dnderr.IsValidation(err))

	// Dependency error
	s.mock.ExpectGet("character:Aria").SetErr(errors.New("timeout"))
	_, err = s.gw.Load(s.ctx, "Aria")
	s.True(dnderr.IsPersistenceFailure(err))
}

func (s *RedisGatewayTestSuite) TestCommit() {
	char := testutils.CreateTestCharacter("Aria")
	delta := &statistics.Delta{
		CharacterName:    "Aria",
		Encounters:       1,
		Victories:        1,
		DamageDealt:      24,
		DamageTaken:      10,
		ExperienceEarned: 30,
	}

	s.mock.ExpectGet("character:Aria").RedisNil()
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:Aria", s.payload(char, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "Aria").SetVal(1)
	s.mock.ExpectHIncrBy("statistics:Aria", "encounters", 1).SetVal(1)
	s.mock.ExpectHIncrBy("statistics:Aria", "victories", 1).SetVal(1)
	s.mock.ExpectHIncrBy("statistics:Aria", "defeats", 0).SetVal(0)
	s.mock.ExpectHIncrBy("statistics:Aria", "fled", 0).SetVal(0)
	s.mock.ExpectHIncrBy("statistics:Aria", "damage_dealt", 24).SetVal(24)
	s.mock.ExpectHIncrBy("statistics:Aria", "damage_taken", 10).SetVal(10)
	s.mock.ExpectHIncrBy("statistics:Aria", "experience_earned", 30).SetVal(30)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.gw.Commit(s.ctx, char, delta))
}

func (s *RedisGatewayTestSuite) TestDelete() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSRem("characters", "Aria").SetVal(1)
	s.mock.ExpectDel("character:Aria", "statistics:Aria").SetVal(2)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.gw.Delete(s.ctx, "Aria"))
}

func (s *RedisGatewayTestSuite) TestDeleteMissing() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSRem("characters", "Aria").SetVal(0)
	s.mock.ExpectDel("character:Aria", "statistics:Aria").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	s.True(dnderr.IsNotFound(s.gw.Delete(s.ctx, "Aria")))
}

func (s *RedisGatewayTestSuite) TestList() {
	char := testutils.CreateTestCharacter("Aria")
	created := s.now.Add(-time.Hour)

	s.mock.ExpectSMembers("characters").SetVal([]string{"Aria"})
	s.mock.ExpectGet("character:Aria").SetVal(s.payload(char, created, s.now))

	list, err := s.gw.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]*Summary{{
		Name:       "Aria",
		Emoji:      char.Emoji,
		Level:      3,
		CreatedAt:  created,
		LastPlayed: s.now,
	}}, list)
}

func (s *RedisGatewayTestSuite) TestListSkipsStaleIndex() {
	s.mock.ExpectSMembers("characters").SetVal([]string{"Ghost"})
	s.mock.ExpectGet("character:Ghost").RedisNil()

	list, err := s.gw.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *RedisGatewayTestSuite) TestStatistics() {
	s.mock.ExpectExists("character:Aria").SetVal(1)
	s.mock.ExpectHGetAll("statistics:Aria").SetVal(map[string]string{
		"encounters":   "4",
		"victories":    "3",
		"defeats":      "1",
		"damage_dealt": "80",
	})

	stats, err := s.gw.Statistics(s.ctx, "Aria")
	s.Require().NoError(err)
	s.Equal(&statistics.Record{
		CharacterName: "Aria",
		Encounters:    4,
		Victories:     3,
		Defeats:       1,
		DamageDealt:   80,
	}, stats)

	s.mock.ExpectExists("character:Bryn").SetVal(0)
	_, err = s.gw.Statistics(s.ctx, "Bryn")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisGatewayTestSuite) TestRecordStatisticsRequiresCharacter() {
	s.mock.ExpectExists("character:Bryn").SetVal(0)

	err := s.gw.RecordStatistics(s.ctx, &statistics.Delta{CharacterName: "Bryn", Encounters: 1})
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisGatewayTestSuite) TestSeedAndListTemplates() {
	goblin := monster.DefaultTemplates()[0]
	raw, err := json.Marshal(toTemplateData(goblin))
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSetNX("monster_template:Goblin", string(raw), 0).SetVal(true)
	s.mock.ExpectSAdd("monster_templates", "Goblin").SetVal(1)
	s.mock.ExpectTxPipelineExec()
	s.Require().NoError(s.gw.SeedTemplates(s.ctx, []*monster.Template{goblin}))

	s.mock.ExpectSMembers("monster_templates").SetVal([]string{"Goblin"})
	s.mock.ExpectGet("monster_template:Goblin").SetVal(string(raw))
	templates, err := s.gw.ListTemplates(s.ctx, monster.LevelRange{Min: 2, Max: 5})
	s.Require().NoError(err)
	s.Equal([]*monster.Template{goblin}, templates)

	s.mock.ExpectSMembers("monster_templates").SetVal([]string{"Goblin"})
	s.mock.ExpectGet("monster_template:Goblin").SetVal(string(raw))
	templates, err = s.gw.ListTemplates(s.ctx, monster.LevelRange{Min: 5, Max: 9})
	s.Require().NoError(err)
	s.Empty(templates)
}
