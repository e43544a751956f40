package wordsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordscramble/internal/dependencies/mocks"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/storage/memory"
	"github.com/mcoot/wordscramble/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeCorpus(contents string) string {
	path := filepath.Join(s.T().TempDir(), "start.txt")
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func (s *ServiceSuite) requireConfigurationError(err error) *ConfigurationError {
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrConfiguration)

	var cfgErr *ConfigurationError
	s.Require().True(errors.As(err, &cfgErr))
	return cfgErr
}

func (s *ServiceSuite) TestLoadFromFileAndPick() {
	path := s.writeCorpus("silksong\nhollow\nknight\n")
	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))
	s.Equal(3, s.service.WordCount())

	s.random.QueueIntn(1, 2, 0)
	for _, want := range []string{"hollow", "knight", "silksong"} {
		root, err := s.service.PickRoot(s.ctx)
		s.Require().NoError(err)
		s.Equal(want, root)
	}
}

func (s *ServiceSuite) TestLoadFromFileDropsBlankAndInvalidEntries() {
	path := s.writeCorpus("  Silksong \r\n\n two words\nhornet\n")
	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))

	s.Equal(2, s.service.WordCount())

	stored, err := s.storage.GetCorpusWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"silksong", "hornet"}, stored)
}

func (s *ServiceSuite) TestLoadFromMissingFile() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.txt"))

	cfgErr := s.requireConfigurationError(err)
	s.ErrorIs(err, os.ErrNotExist)
	s.Contains(cfgErr.Error(), "missing.txt")
}

func (s *ServiceSuite) TestLoadFromEmptyFile() {
	path := s.writeCorpus("\n\n   \n")

	err := s.service.LoadFromFile(s.ctx, path)
	s.requireConfigurationError(err)
	s.ErrorIs(err, model.ErrCorpusEmpty)
	s.Equal(0, s.service.WordCount())
}

func (s *ServiceSuite) TestPickRootBeforeLoading() {
	_, err := s.service.PickRoot(s.ctx)
	s.requireConfigurationError(err)
	s.ErrorIs(err, model.ErrCorpusNotLoaded)
}

func (s *ServiceSuite) TestLoadFromStorage() {
	s.Require().NoError(s.storage.SaveCorpusWords(s.ctx, []string{"silksong", "hornet"}))

	s.Require().NoError(s.service.LoadFromStorage(s.ctx))

	s.random.QueueIntn(1)
	root, err := s.service.PickRoot(s.ctx)
	s.Require().NoError(err)
	s.Equal("hornet", root)
}

func (s *ServiceSuite) TestLoadFromStorageWhenMissing() {
	err := s.service.LoadFromStorage(s.ctx)
	s.requireConfigurationError(err)
	s.ErrorIs(err, model.ErrCorpusNotLoaded)
}

func (s *ServiceSuite) TestLoadWordsRejectsEmptyCorpus() {
	err := s.service.LoadWords([]string{"", " "})
	s.requireConfigurationError(err)
}
