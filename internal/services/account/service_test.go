package account

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/explorer/internal/models"
	userRepo "github.com/KirkDiggler/explorer/internal/repositories/user"
	userMocks "github.com/KirkDiggler/explorer/internal/repositories/user/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *userMocks.MockRepository
	service      Service
	ctx          context.Context

	testUser *models.User
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{UserRepo: s.mockUserRepo})
	s.Require().NoError(err)
	s.service = svc

	s.testUser = &models.User{
		Username:       "maria",
		Password:       "secret",
		BestScore:      2500,
		GamesCompleted: 4,
	}
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AccountServiceTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilUserRepo, err)
}

func (s *AccountServiceTestSuite) TestLoginSuccess() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{Username: "maria"}).
		Return(s.testUser, nil)

	output, err := s.service.Login(s.ctx, &LoginInput{Username: "  maria ", Password: "secret "})
	s.Require().NoError(err)
	s.Equal(s.testUser, output.User)
}

func (s *AccountServiceTestSuite) TestLoginMissingFields() {
	_, err := s.service.Login(s.ctx, &LoginInput{Username: "maria", Password: "   "})
	s.Equal(ErrMissingFields, err)

	_, err = s.service.Login(s.ctx, &LoginInput{Password: "secret"})
	s.Equal(ErrMissingFields, err)

	_, err = s.service.Login(s.ctx, nil)
	s.Equal(ErrMissingFields, err)
}

func (s *AccountServiceTestSuite) TestLoginUnknownUser() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{Username: "ghost"}).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.service.Login(s.ctx, &LoginInput{Username: "ghost", Password: "secret"})
	s.Equal(ErrUserNotFound, err)
}

func (s *AccountServiceTestSuite) TestLoginWrongPassword() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(s.testUser, nil)

	_, err := s.service.Login(s.ctx, &LoginInput{Username: "maria", Password: "guess"})
	s.Equal(ErrWrongPassword, err)
}

func (s *AccountServiceTestSuite) TestLoginRepositoryError() {
	repoErr := errors.New("disk on fire")
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(nil, repoErr)

	_, err := s.service.Login(s.ctx, &LoginInput{Username: "maria", Password: "secret"})
	s.Require().Error(err)
	s.ErrorIs(err, repoErr)
}

func (s *AccountServiceTestSuite) TestLoginWithHashedPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	s.Require().NoError(err)
	hashed := &models.User{Username: "maria", Password: string(hash)}

	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(hashed, nil).
		Times(2)

	_, err = s.service.Login(s.ctx, &LoginInput{Username: "maria", Password: "secret"})
	s.NoError(err)

	_, err = s.service.Login(s.ctx, &LoginInput{Username: "maria", Password: "wrong"})
	s.Equal(ErrWrongPassword, err)
}

func (s *AccountServiceTestSuite) TestLoginWithPlaintextThatLooksHashed() {
	stored := &models.User{Username: "maria", Password: "$2secret"}

	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(stored, nil).
		Times(2)

	output, err := s.service.Login(s.ctx, &LoginInput{Username: "maria", Password: "$2secret"})
	s.Require().NoError(err)
	s.Equal("maria", output.User.Username)

	_, err = s.service.Login(s.ctx, &LoginInput{Username: "maria", Password: "$2secre"})
	s.Equal(ErrWrongPassword, err)
}

func (s *AccountServiceTestSuite) TestRegisterSuccess() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{Username: "joao"}).
		Return(nil, userRepo.ErrUserNotFound)
	s.mockUserRepo.EXPECT().
		CreateUser(s.ctx, &userRepo.CreateUserInput{
			User: &models.User{Username: "joao", Password: "pass1"},
		}).
		Return(nil)

	output, err := s.service.Register(s.ctx, &RegisterInput{
		Username:        " joao ",
		Password:        "pass1",
		ConfirmPassword: "pass1",
	})
	s.Require().NoError(err)
	s.Equal("joao", output.User.Username)
	s.Equal(0, output.User.BestScore)
	s.Equal(0, output.User.GamesCompleted)
}

func (s *AccountServiceTestSuite) TestRegisterValidation() {
	testCases := []struct {
		name  string
		input *RegisterInput
		want  error
	}{
		{"missing confirm", &RegisterInput{Username: "joao", Password: "pass1"}, ErrMissingFields},
		{"blank username", &RegisterInput{Username: "  ", Password: "pass1", ConfirmPassword: "pass1"}, ErrMissingFields},
		{"short username", &RegisterInput{Username: "jo", Password: "pass1", ConfirmPassword: "pass1"}, ErrUsernameTooShort},
		{"short password", &RegisterInput{Username: "joao", Password: "abc", ConfirmPassword: "abc"}, ErrPasswordTooShort},
		{"mismatch", &RegisterInput{Username: "joao", Password: "pass1", ConfirmPassword: "pass2"}, ErrPasswordMismatch},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.Register(s.ctx, tc.input)
			s.Equal(tc.want, err)
		})
	}
}

func (s *AccountServiceTestSuite) TestRegisterUsernameTaken() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{Username: "maria"}).
		Return(s.testUser, nil)

	_, err := s.service.Register(s.ctx, &RegisterInput{
		Username:        "maria",
		Password:        "pass1",
		ConfirmPassword: "pass1",
	})
	s.Equal(ErrUsernameTaken, err)
}

func (s *AccountServiceTestSuite) TestRegisterRaceOnCreate() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)
	s.mockUserRepo.EXPECT().
		CreateUser(s.ctx, gomock.Any()).
		Return(userRepo.ErrUserAlreadyExists)

	_, err := s.service.Register(s.ctx, &RegisterInput{
		Username:        "joao",
		Password:        "pass1",
		ConfirmPassword: "pass1",
	})
	s.Equal(ErrUsernameTaken, err)
}

func (s *AccountServiceTestSuite) TestRegisterHashesPassword() {
	svc, err := New(&Config{UserRepo: s.mockUserRepo, HashPasswords: true})
	s.Require().NoError(err)

	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)
	s.mockUserRepo.EXPECT().
		CreateUser(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.CreateUserInput) error {
			s.NotEqual("pass1", input.User.Password)
			s.NoError(bcrypt.CompareHashAndPassword([]byte(input.User.Password), []byte("pass1")))
			return nil
		})

	_, err = svc.Register(s.ctx, &RegisterInput{
		Username:        "joao",
		Password:        "pass1",
		ConfirmPassword: "pass1",
	})
	s.NoError(err)
}

func (s *AccountServiceTestSuite) TestGetStats() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{Username: "maria"}).
		Return(s.testUser, nil)

	output, err := s.service.GetStats(s.ctx, &GetStatsInput{Username: "maria"})
	s.Require().NoError(err)
	s.Equal(2500, output.BestScore)
	s.Equal(4, output.GamesCompleted)
}

func (s *AccountServiceTestSuite) TestGetStatsUnknownUser() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.service.GetStats(s.ctx, &GetStatsInput{Username: "ghost"})
	s.Equal(ErrUserNotFound, err)
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
