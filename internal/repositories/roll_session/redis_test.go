package rollsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
	rollsession "github.com/KirkDiggler/genesys-dice/internal/repositories/roll_session"
	"github.com/KirkDiggler/genesys-dice/internal/testutils"
)

const (
	testEntityID = "char_123"
	testContext  = "scene_1"
	testKey      = "roll_session:char_123:scene_1"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	clock   *testutils.FixedClock
	repo    rollsession.Repository
	cleanup func()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.clock = testutils.NewFixedClock()
	s.ctx = context.Background()

	repo, err := rollsession.NewRedisRepository(&rollsession.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository_InvalidConfig() {
	_, err := rollsession.NewRedisRepository(&rollsession.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Client")
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	record := testutils.CreateTestRollRecord("roll_1")

	created, err := s.repo.Create(s.ctx, rollsession.CreateInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []rollsession.RollRecord{record},
		TTL:      10 * time.Minute,
	})
	s.Require().NoError(err)
	s.Equal(testutils.FixedTime.Add(10*time.Minute), created.Session.ExpiresAt)

	s.True(s.mr.Exists(testKey))
	s.Equal(10*time.Minute, s.mr.TTL(testKey))

	got, err := s.repo.Get(s.ctx, rollsession.GetInput{EntityID: testEntityID, Context: testContext})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 1)
	s.Equal("roll_1", got.Session.Rolls[0].RollID)
	s.Equal(record.Message.Tally, got.Session.Rolls[0].Message.Tally)
}

func (s *RedisRepositoryTestSuite) TestCreate_NegativeTTL() {
	_, err := s.repo.Create(s.ctx, rollsession.CreateInput{
		EntityID: testEntityID,
		Context:  testContext,
		TTL:      -time.Minute,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.False(s.mr.Exists(testKey))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, rollsession.GetInput{EntityID: testEntityID, Context: testContext})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGet_Expired() {
	_, err := s.repo.Create(s.ctx, rollsession.CreateInput{
		EntityID: testEntityID,
		Context:  testContext,
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, rollsession.GetInput{EntityID: testEntityID, Context: testContext})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists(testKey))
}

func (s *RedisRepositoryTestSuite) TestUpdate_AppendsAndKeepsTTL() {
	created, err := s.repo.Create(s.ctx, rollsession.CreateInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []rollsession.RollRecord{testutils.CreateTestRollRecord("roll_1")},
		TTL:      10 * time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(4 * time.Minute)
	session := created.Session
	session.Rolls = append(session.Rolls, testutils.CreateTestRollRecord("roll_2"))
	s.Require().NoError(s.repo.Update(s.ctx, session))

	s.Equal(6*time.Minute, s.mr.TTL(testKey))

	got, err := s.repo.Get(s.ctx, rollsession.GetInput{EntityID: testEntityID, Context: testContext})
	s.Require().NoError(err)
	s.Len(got.Session.Rolls, 2)
}

func (s *RedisRepositoryTestSuite) TestUpdate_Errors() {
	s.True(errors.IsInvalidArgument(s.repo.Update(s.ctx, nil)))
	s.True(errors.IsInvalidArgument(s.repo.Update(s.ctx, &rollsession.RollSession{Context: testContext})))

	expired := &rollsession.RollSession{
		EntityID:  testEntityID,
		Context:   testContext,
		ExpiresAt: testutils.FixedTime.Add(-time.Second),
	}
	s.True(errors.IsFailedPrecondition(s.repo.Update(s.ctx, expired)))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, rollsession.CreateInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls: []rollsession.RollRecord{
			testutils.CreateTestRollRecord("roll_1"),
			testutils.CreateTestRollRecord("roll_2"),
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, rollsession.DeleteInput{EntityID: testEntityID, Context: testContext})
	s.Require().NoError(err)
	s.Equal(int32(2), out.RollsDeleted)
	s.False(s.mr.Exists(testKey))

	out, err = s.repo.Delete(s.ctx, rollsession.DeleteInput{EntityID: testEntityID, Context: testContext})
	s.Require().NoError(err)
	s.Equal(int32(0), out.RollsDeleted)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, rollsession.CreateInput{Context: testContext})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, rollsession.GetInput{EntityID: testEntityID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, rollsession.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
