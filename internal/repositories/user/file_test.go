package user

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/explorer/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path string
	repo Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "utilizadores.json")
	s.ctx = context.Background()

	repo, err := NewFile(&FileConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) readFile() map[string]map[string]any {
	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)

	var raw map[string]map[string]any
	s.Require().NoError(json.Unmarshal(data, &raw))
	return raw
}

func (s *FileRepositoryTestSuite) TestMissingFileCreatesDefaultAccount() {
	raw := s.readFile()
	s.Require().Contains(raw, DefaultUsername)
	s.Equal(DefaultPassword, raw[DefaultUsername]["password"])
	s.EqualValues(0, raw[DefaultUsername]["pontuacao_maxima"])
	s.EqualValues(0, raw[DefaultUsername]["jogos_completos"])

	admin, err := s.repo.GetUser(s.ctx, &GetUserInput{Username: DefaultUsername})
	s.Require().NoError(err)
	s.Equal(DefaultPassword, admin.Password)
}

func (s *FileRepositoryTestSuite) TestCreateAndReload() {
	err := s.repo.CreateUser(s.ctx, &CreateUserInput{
		User: &models.User{Username: "joana", Password: "secret", BestScore: 0},
	})
	s.Require().NoError(err)

	err = s.repo.CreateUser(s.ctx, &CreateUserInput{
		User: &models.User{Username: "joana", Password: "other"},
	})
	s.ErrorIs(err, ErrUserAlreadyExists)

	reopened, err := NewFile(&FileConfig{Path: s.path})
	s.Require().NoError(err)

	got, err := reopened.GetUser(s.ctx, &GetUserInput{Username: "joana"})
	s.Require().NoError(err)
	s.Equal("joana", got.Username)
	s.Equal("secret", got.Password)
}

func (s *FileRepositoryTestSuite) TestSaveUserPersists() {
	admin, err := s.repo.GetUser(s.ctx, &GetUserInput{Username: DefaultUsername})
	s.Require().NoError(err)

	admin.BestScore = 4200
	admin.GamesCompleted = 3
	s.Require().NoError(s.repo.SaveUser(s.ctx, &SaveUserInput{User: admin}))

	raw := s.readFile()
	s.EqualValues(4200, raw[DefaultUsername]["pontuacao_maxima"])
	s.EqualValues(3, raw[DefaultUsername]["jogos_completos"])
}

func (s *FileRepositoryTestSuite) TestSaveUnknownUser() {
	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		User: &models.User{Username: "ghost"},
	})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *FileRepositoryTestSuite) TestGetUnknownUser() {
	_, err := s.repo.GetUser(s.ctx, &GetUserInput{Username: "ghost"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *FileRepositoryTestSuite) TestKeepsNonASCIIReadable() {
	err := s.repo.CreateUser(s.ctx, &CreateUserInput{
		User: &models.User{Username: "joão", Password: "pão<&>"},
	})
	s.Require().NoError(err)

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Contains(string(data), `"joão"`)
	s.Contains(string(data), `"pão<&>"`)
}

func (s *FileRepositoryTestSuite) TestMalformedFile() {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{not json"},
		{name: "null record", content: `{"admin": null}`},
		{name: "null record among valid ones", content: `{"rita": {"password": "pass1"}, "admin": null}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().NoError(os.WriteFile(s.path, []byte(tc.content), 0o644))
			_, err := NewFile(&FileConfig{Path: s.path})
			s.Error(err)
		})
	}
}

func (s *FileRepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.CreateUser(s.ctx, nil))
	s.Error(s.repo.CreateUser(s.ctx, &CreateUserInput{User: &models.User{}}))
	_, err := s.repo.GetUser(s.ctx, &GetUserInput{})
	s.Error(err)
}
